package core

import "image/color"

// Cue 音效代號
type Cue string

const (
	CueHit     Cue = "hit"
	CueBounce  Cue = "bounce"
	CueRestart Cue = "restart"
)

// Key 邏輯按鍵，實際對應哪個實體按鍵由 backend 決定
type Key int

const (
	KeyUp Key = iota
	KeyDown
)

// Label 已經排好版的文字，W/H 為遊戲區域座標中的大小
type Label struct {
	Text  string
	Color color.RGBA
	W, H  int
}

// CenteredAt 讓 Label 以 p 為中心，回傳擺放位置
func (l Label) CenteredAt(p Point) Rect {
	return Rect{X: p.X - l.W/2, Y: p.Y - l.H/2, W: l.W, H: l.H}
}

func (l Label) MidLeftAt(p Point) Rect {
	return Rect{X: p.X, Y: p.Y - l.H/2, W: l.W, H: l.H}
}

func (l Label) MidRightAt(p Point) Rect {
	return Rect{X: p.X - l.W, Y: p.Y - l.H/2, W: l.W, H: l.H}
}

type Renderer interface {
	Clear(c color.RGBA)
	FillRect(r Rect, c color.RGBA)
	FillCircle(center Point, radius int, c color.RGBA)
	Line(from, to Point, c color.RGBA)
	Text(s string, c color.RGBA) Label
	Blit(l Label, at Point)
	Present()
}

// Audio 播放失敗不影響遊戲，所以沒有回傳值
type Audio interface {
	Play(cue Cue)
}

type Input interface {
	Held(k Key) bool
	Quit() bool
}

// Clock Ticks 為單調遞增的毫秒數，Tick 負責把迴圈限制在 fps 以內
type Clock interface {
	Ticks() int64
	Tick(fps int)
}

// Silent 沒有音效裝置時使用
type Silent struct{}

func (Silent) Play(Cue) {}

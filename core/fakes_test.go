package core

import (
	"image/color"
	"math/rand"
)

type blit struct {
	Text  string
	Color color.RGBA
	At    Point
}

type recordRenderer struct {
	clears   int
	rects    []Rect
	circles  []Point
	lines    [][2]Point
	blits    []blit
	presents int
}

func (r *recordRenderer) Clear(color.RGBA) { r.clears++ }

func (r *recordRenderer) FillRect(rect Rect, _ color.RGBA) { r.rects = append(r.rects, rect) }

func (r *recordRenderer) FillCircle(center Point, _ int, _ color.RGBA) {
	r.circles = append(r.circles, center)
}

func (r *recordRenderer) Line(from, to Point, _ color.RGBA) {
	r.lines = append(r.lines, [2]Point{from, to})
}

func (r *recordRenderer) Text(s string, c color.RGBA) Label {
	return Label{Text: s, Color: c, W: 16 * len(s), H: 32}
}

func (r *recordRenderer) Blit(l Label, at Point) {
	r.blits = append(r.blits, blit{Text: l.Text, Color: l.Color, At: at})
}

func (r *recordRenderer) Present() { r.presents++ }

func (r *recordRenderer) reset() { *r = recordRenderer{} }

type recordAudio struct {
	cues []Cue
}

func (a *recordAudio) Play(cue Cue) { a.cues = append(a.cues, cue) }

func (a *recordAudio) count(cue Cue) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type fakeInput struct {
	held   map[Key]bool
	quitAt int
	polls  int
}

func (in *fakeInput) Held(k Key) bool { return in.held[k] }

// Quit 第 quitAt 次詢問時回傳 true，0 代表永不離開
func (in *fakeInput) Quit() bool {
	in.polls++
	return in.quitAt > 0 && in.polls >= in.quitAt
}

type manualClock struct {
	now   int64
	ticks int
	step  int64
}

func (c *manualClock) Ticks() int64 { return c.now }

func (c *manualClock) Tick(int) {
	c.ticks++
	c.now += c.step
}

type testEnv struct {
	*Env
	renderer *recordRenderer
	audio    *recordAudio
	input    *fakeInput
	clock    *manualClock
}

func newTestEnv() testEnv {
	te := testEnv{
		renderer: &recordRenderer{},
		audio:    &recordAudio{},
		input:    &fakeInput{held: map[Key]bool{}},
		clock:    &manualClock{},
	}
	te.Env = &Env{
		Width:    ArenaWidth,
		Height:   ArenaHeight,
		Renderer: te.renderer,
		Audio:    te.audio,
		Input:    te.input,
		Clock:    te.clock,
		Rand:     rand.New(rand.NewSource(1)),
	}
	return te
}

func activeBall(te testEnv, paddles []*Block, x, y, vx, vy int) *Ball {
	b := NewBall(te.Env, BallStartSpeed, paddles)
	b.Active = true
	b.Rect.X, b.Rect.Y = x, y
	b.Velocity = [2]int{vx, vy}
	return b
}

package terminal

import (
	"PingPong/core"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const DividerSymbol = 0x2590

// Screen 把 960x540 的遊戲座標縮放到終端機的格子上
type Screen struct {
	screen     tcell.Screen
	cols, rows int
	bg         tcell.Color
}

// Open 初始化終端機畫面，失敗時不能開始遊戲
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreen(s), nil
}

func NewScreen(s tcell.Screen) *Screen {
	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	s.SetStyle(defaultStyle)
	s.HideCursor()

	sc := &Screen{screen: s, bg: tcell.ColorBlack}
	sc.cols, sc.rows = s.Size()
	return sc
}

func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

func (s *Screen) Close() {
	s.screen.Fini()
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellWidth 一格代表的遊戲座標寬度
func (s *Screen) cellWidth() int {
	return ceilDiv(core.ArenaWidth, max(s.cols, 1))
}

func (s *Screen) cellHeight() int {
	return ceilDiv(core.ArenaHeight, max(s.rows, 1))
}

func (s *Screen) toCell(p core.Point) (int, int) {
	return floorDiv(p.X*s.cols, core.ArenaWidth), floorDiv(p.Y*s.rows, core.ArenaHeight)
}

func (s *Screen) toCellCeil(p core.Point) (int, int) {
	return ceilDiv(p.X*s.cols, core.ArenaWidth), ceilDiv(p.Y*s.rows, core.ArenaHeight)
}

func (s *Screen) Clear(c color.RGBA) {
	s.cols, s.rows = s.screen.Size()
	s.bg = toColor(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

func (s *Screen) FillRect(r core.Rect, c color.RGBA) {
	x0, y0 := s.toCell(core.Point{X: r.Left(), Y: r.Top()})
	x1, y1 := s.toCellCeil(core.Point{X: r.Right(), Y: r.Bottom()})
	// 太小的物件至少佔一格
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	Print(s.screen, y0, x0, x1-x0, y1-y0, PaddleSymbol, toColor(c), s.bg)
}

func (s *Screen) FillCircle(center core.Point, radius int, c color.RGBA) {
	cw, ch := s.cellWidth(), s.cellHeight()
	x0, y0 := s.toCell(core.Point{X: center.X - radius, Y: center.Y - radius})
	x1, y1 := s.toCellCeil(core.Point{X: center.X + radius, Y: center.Y + radius})
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(s.bg)

	drawn := false
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			// 以格子中心判斷是否在圓內
			dx := col*cw + cw/2 - center.X
			dy := row*ch + ch/2 - center.Y
			if dx*dx+dy*dy <= radius*radius {
				s.screen.SetContent(col, row, PaddleSymbol, nil, style)
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := s.toCell(center)
		s.screen.SetContent(col, row, BallSymbol, nil, style)
	}
}

func (s *Screen) Line(from, to core.Point, c color.RGBA) {
	x0, y0 := s.toCell(from)
	x1, y1 := s.toCell(to)
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(s.bg)

	symbol := '·'
	switch {
	case x0 == x1:
		symbol = DividerSymbol
	case y0 == y1:
		symbol = '─'
	}

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		s.screen.SetContent(x0, y0, symbol, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Text 每個字元佔一格
func (s *Screen) Text(str string, c color.RGBA) core.Label {
	n := len([]rune(str))
	return core.Label{Text: str, Color: c, W: n * s.cellWidth(), H: s.cellHeight()}
}

func (s *Screen) Blit(l core.Label, at core.Point) {
	col, row := s.toCell(at)
	style := tcell.StyleDefault.Foreground(toColor(l.Color)).Background(s.bg)
	for i, ch := range []rune(l.Text) {
		s.screen.SetContent(col+i, row, ch, nil, style)
	}
}

func (s *Screen) Present() {
	s.screen.Show()
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune, fg, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

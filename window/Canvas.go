package window

import (
	"PingPong/core"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// basicfont 是 7x13 點陣字，放大後當作分數與倒數的字型
const TextScale = 3
const glyphWidth = 7
const glyphHeight = 13
const glyphAscent = 11

const dividerWidth = 1

type opKind int

const (
	opClear opKind = iota
	opRect
	opCircle
	opLine
	opText
)

type op struct {
	kind   opKind
	rect   core.Rect
	from   core.Point
	to     core.Point
	radius int
	text   string
	color  color.RGBA
}

// Canvas ebiten 只能在 Draw 裡畫圖，所以每一幀先記錄下來，Present 後才換成要顯示的畫面
type Canvas struct {
	frame []op
	shown []op
}

func (c *Canvas) Clear(clr color.RGBA) {
	c.frame = append(c.frame[:0], op{kind: opClear, color: clr})
}

func (c *Canvas) FillRect(r core.Rect, clr color.RGBA) {
	c.frame = append(c.frame, op{kind: opRect, rect: r, color: clr})
}

func (c *Canvas) FillCircle(center core.Point, radius int, clr color.RGBA) {
	c.frame = append(c.frame, op{kind: opCircle, from: center, radius: radius, color: clr})
}

func (c *Canvas) Line(from, to core.Point, clr color.RGBA) {
	c.frame = append(c.frame, op{kind: opLine, from: from, to: to, color: clr})
}

func (c *Canvas) Text(s string, clr color.RGBA) core.Label {
	n := len([]rune(s))
	return core.Label{Text: s, Color: clr, W: n * glyphWidth * TextScale, H: glyphHeight * TextScale}
}

func (c *Canvas) Blit(l core.Label, at core.Point) {
	c.frame = append(c.frame, op{kind: opText, from: at, text: l.Text, color: l.Color})
}

func (c *Canvas) Present() {
	c.shown, c.frame = c.frame, c.shown[:0]
}

func (c *Canvas) draw(screen *ebiten.Image) {
	for _, o := range c.shown {
		switch o.kind {
		case opClear:
			screen.Fill(o.color)
		case opRect:
			vector.DrawFilledRect(screen, float32(o.rect.X), float32(o.rect.Y), float32(o.rect.W), float32(o.rect.H), o.color, false)
		case opCircle:
			vector.DrawFilledCircle(screen, float32(o.from.X), float32(o.from.Y), float32(o.radius), o.color, true)
		case opLine:
			vector.StrokeLine(screen, float32(o.from.X), float32(o.from.Y), float32(o.to.X), float32(o.to.Y), dividerWidth, o.color, true)
		case opText:
			opts := &ebiten.DrawImageOptions{}
			opts.GeoM.Scale(TextScale, TextScale)
			opts.GeoM.Translate(float64(o.from.X), float64(o.from.Y+glyphAscent*TextScale))
			opts.ColorScale.ScaleWithColor(o.color)
			text.DrawWithOptions(screen, o.text, basicfont.Face7x13, opts)
		}
	}
}

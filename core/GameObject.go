package core

import "image/color"

type Point struct {
	X, Y int
}

// Rect 遊戲區域座標中的矩形，X,Y 為左上角
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r *Rect) SetTop(top int) {
	r.Y = top
}

func (r *Rect) SetBottom(bottom int) {
	r.Y = bottom - r.H
}

func (r *Rect) SetCenter(p Point) {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H/2
}

// Overlaps 邊緣剛好相接不算碰撞
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Block 所有遊戲物件共用的矩形與填色
type Block struct {
	Rect Rect
	Fill color.RGBA
}

func (b *Block) Draw(r Renderer) {
	r.FillRect(b.Rect, b.Fill)
}

package core

import (
	"image/color"
	"strconv"
)

// Countdown 倒數時顯示的數字與顏色
type Countdown struct {
	Number int
	Color  color.RGBA
}

// CountdownAt 1900~2100 與啟動時間 2000 重疊，啟動那一幀仍然顯示 1
func CountdownAt(elapsed int64) Countdown {
	c := Countdown{Number: 3, Color: CountdownThreeColor}
	if 1000 < elapsed && elapsed <= 1900 {
		c = Countdown{Number: 2, Color: CountdownTwoColor}
	}
	if 1900 < elapsed && elapsed <= 2100 {
		c = Countdown{Number: 1, Color: CountdownOneColor}
	}
	return c
}

type Ball struct {
	Block
	Speed     [2]int // 每軸速度大小
	Velocity  [2]int // 每軸方向 +1/-1
	Active    bool
	ScoreTime int64

	paddles   []*Block
	env       *Env
	countdown *Countdown
}

func NewBall(env *Env, speed int, paddles []*Block) *Ball {
	b := &Ball{
		Block:    Block{Rect: NewRect(0, 0, BallSize, BallSize), Fill: BackgroundColor},
		Speed:    [2]int{speed, speed},
		Velocity: [2]int{1, 1},
		paddles:  paddles,
		env:      env,
	}
	b.Rect.SetCenter(Point{X: env.Width / 2, Y: env.Height / 2})
	return b
}

func (b *Ball) Update() {
	b.countdown = nil
	if b.Active {
		b.Rect.X += b.Speed[0] * b.Velocity[0]
		b.Rect.Y += b.Speed[1] * b.Velocity[1]
		b.collision()
	} else {
		b.restartCounter()
	}
}

// collision 撞牆時不修正位置，下一幀再反彈回來
func (b *Ball) collision() {
	//檢查有沒有撞到上下牆壁
	if b.Rect.Top() <= 0 || b.Rect.Bottom() >= b.env.Height {
		b.env.Audio.Play(CueBounce)
		b.Velocity[1] *= -1
	}

	//檢查是否有碰到球拍
	paddle := b.collidePaddle()
	if paddle == nil {
		return
	}
	b.env.Audio.Play(CueHit)

	//只有撞到球拍側邊才水平反彈
	if abs(b.Rect.Right()-paddle.Left()) < PaddleTolerance {
		b.Velocity[0] *= -1
	}
	if abs(b.Rect.Left()-paddle.Right()) < PaddleTolerance {
		b.Velocity[0] *= -1
	}
	//撞到球拍上緣且正在往下
	if abs(b.Rect.Bottom()-paddle.Top()) < PaddleTolerance && b.Velocity[1] > 0 {
		b.Velocity[1] *= -1
	}
	//撞到球拍下緣且正在往上
	if abs(b.Rect.Top()-paddle.Bottom()) < PaddleTolerance && b.Velocity[1] < 0 {
		b.Velocity[1] *= -1
	}
}

// collidePaddle 同時碰到兩個球拍時只取順序上的第一個
func (b *Ball) collidePaddle() *Rect {
	for _, p := range b.paddles {
		if b.Rect.Overlaps(p.Rect) {
			return &p.Rect
		}
	}
	return nil
}

func (b *Ball) Reset() {
	b.Active = false
	b.Velocity[0] = b.randomSign()
	b.Velocity[1] = b.randomSign()
	b.ScoreTime = b.env.Clock.Ticks()
	b.Rect.SetCenter(Point{X: b.env.Width / 2, Y: b.env.Height / 2})
	b.env.Audio.Play(CueRestart)
}

func (b *Ball) randomSign() int {
	if b.env.Rand.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (b *Ball) restartCounter() {
	elapsed := b.env.Clock.Ticks() - b.ScoreTime
	c := CountdownAt(elapsed)
	if elapsed >= CountdownMillis {
		b.Active = true
	}
	b.countdown = &c
}

// Countdown 回傳這一幀顯示的倒數，球在移動時為 nil
func (b *Ball) Countdown() *Countdown {
	return b.countdown
}

func (b *Ball) Draw(r Renderer) {
	b.Block.Draw(r)
	r.FillCircle(b.Rect.Center(), BallRadius, PrimaryColor)

	if b.countdown == nil {
		return
	}
	label := r.Text(strconv.Itoa(b.countdown.Number), b.countdown.Color)
	box := label.CenteredAt(Point{X: b.env.Width / 2, Y: b.env.Height/2 + 50})
	r.FillRect(box, BackgroundColor)
	r.Blit(label, Point{X: box.X, Y: box.Y})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

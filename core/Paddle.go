package core

// Paddle 玩家控制的球拍，Movement 每一幀由按鍵狀態重新設定
type Paddle struct {
	Block
	Speed    int
	Movement int

	arenaHeight int
}

func NewPaddle(rect Rect, speed, arenaHeight int) *Paddle {
	return &Paddle{
		Block:       Block{Rect: rect, Fill: PrimaryColor},
		Speed:       speed,
		arenaHeight: arenaHeight,
	}
}

func (p *Paddle) SetMovement(delta int) {
	p.Movement = delta
}

func (p *Paddle) MoveUp() {
	p.Movement = -p.Speed
}

func (p *Paddle) MoveDown() {
	p.Movement = p.Speed
}

func (p *Paddle) Update() {
	p.Rect.Y += p.Movement
	screenConstrain(&p.Rect, p.arenaHeight)
}

// Opponent 電腦控制的球拍，往下追球用 Speed，往上修正固定用 CounterSpeed
type Opponent struct {
	Block
	Speed        int
	CounterSpeed int

	arenaHeight int
}

func NewOpponent(rect Rect, speed, arenaHeight int) *Opponent {
	return &Opponent{
		Block:        Block{Rect: rect, Fill: PrimaryColor},
		Speed:        speed,
		CounterSpeed: OpponentCounterSpeed,
		arenaHeight:  arenaHeight,
	}
}

// Update 兩個判斷依序執行，往下追過頭時同一幀會再往上修正
func (o *Opponent) Update(ball *Ball) {
	target := ball.Rect.Top()
	if o.Rect.Top() < target {
		o.Rect.Y += o.Speed
	}
	if o.Rect.Top() > target {
		o.Rect.Y -= o.CounterSpeed
	}
	screenConstrain(&o.Rect, o.arenaHeight)
}

// screenConstrain 先處理上緣再處理下緣，比場地高的球拍會貼齊下緣
func screenConstrain(r *Rect, arenaHeight int) {
	if r.Top() <= 0 {
		r.SetTop(0)
	}
	if r.Bottom() >= arenaHeight {
		r.SetBottom(arenaHeight)
	}
}

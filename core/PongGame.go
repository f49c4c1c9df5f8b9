package core

import (
	"PingPong/logger"
	"fmt"
	"math/rand"
	"time"
)

// Env 啟動時建立一次，所有遊戲物件共用
type Env struct {
	Width, Height int

	Renderer Renderer
	Audio    Audio
	Input    Input
	Clock    Clock
	Rand     *rand.Rand
}

type Game struct {
	Player   *Paddle
	Opponent *Opponent
	Ball     *Ball
	Manager  *GameManager

	FPS     int
	Backend string

	env *Env
}

func NewGame(env *Env) *Game {
	if env.Audio == nil {
		env.Audio = Silent{}
	}
	if env.Rand == nil {
		env.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{FPS: TargetFPS, env: env}
	g.initGameState()
	return g
}

func (g *Game) initGameState() {
	w, h := g.env.Width, g.env.Height

	g.Player = NewPaddle(NewRect(w-20, h/2, PaddleWidth, PaddleHeight), PlayerSpeed, h)
	g.Opponent = NewOpponent(NewRect(10, h/2, PaddleWidth, PaddleHeight), OpponentSpeed, h)

	paddles := []*Block{&g.Player.Block, &g.Opponent.Block}
	g.Ball = NewBall(g.env, BallStartSpeed, paddles)

	g.Manager = NewGameManager(g.env, g.Ball, g.Player, g.Opponent)
}

// Run 每一幀結束後用 Clock.Tick 控制速度，收到離開訊號才結束
func (g *Game) Run() {
	g.Begin()
	for g.Step() {
		g.env.Clock.Tick(g.FPS)
	}
	g.End()
}

// Begin/End 只記錄 log，由外部驅動 Step 的 backend 自己呼叫
func (g *Game) Begin() {
	logger.Log.Info(fmt.Sprintf(logger.GameStartMsg, g.Backend, g.FPS))
}

func (g *Game) End() {
	logger.Log.Info(fmt.Sprintf(logger.GameQuitMsg, g.Manager.PlayerScore, g.Manager.OpponentScore))
}

// Step 執行一幀但不等待，回傳 false 代表要離開遊戲
func (g *Game) Step() bool {
	if g.env.Input.Quit() {
		return false
	}

	g.drawView()
	g.userOperationHandle()
	g.Manager.RunGame()
	g.levelIncrease()

	g.env.Renderer.Present()
	return true
}

func (g *Game) drawView() {
	r := g.env.Renderer
	r.Clear(BackgroundColor)
	//中線
	r.Line(Point{X: g.env.Width / 2, Y: 0}, Point{X: g.env.Width / 2, Y: g.env.Height}, PrimaryColor)
}

// userOperationHandle 兩個方向都按著時以後判斷的往上為準
func (g *Game) userOperationHandle() {
	g.Player.SetMovement(0)

	if g.env.Input.Held(KeyDown) {
		g.Player.MoveDown()
	}
	if g.env.Input.Held(KeyUp) {
		g.Player.MoveUp()
	}
}

func (g *Game) levelIncrease() {
	now := g.env.Clock.Ticks()
	if now-g.Manager.Timer < RampIntervalMillis {
		return
	}
	if g.Ball.Speed[0] > RampMaxSpeed {
		return
	}

	g.Ball.Speed[0] += 1
	g.Ball.Speed[1] += 1
	g.Player.Speed += 1
	g.Manager.Timer = now

	logger.Log.Debug(fmt.Sprintf(logger.LevelIncreaseMsg, g.Ball.Speed[0], g.Ball.Speed[1], g.Player.Speed))
}

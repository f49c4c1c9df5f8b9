package core

import (
	"PingPong/logger"
	"fmt"
	"strconv"
)

// GameManager 唯一會修改分數的地方
type GameManager struct {
	PlayerScore   int
	OpponentScore int
	Timer         int64 // 上一次提升難度的時間

	ball     *Ball
	player   *Paddle
	opponent *Opponent
	env      *Env
}

func NewGameManager(env *Env, ball *Ball, player *Paddle, opponent *Opponent) *GameManager {
	return &GameManager{
		ball:     ball,
		player:   player,
		opponent: opponent,
		env:      env,
	}
}

func (gm *GameManager) RunGame() {
	gm.ball.Update()
	gm.player.Update()
	gm.opponent.Update(gm.ball)

	gm.ball.Draw(gm.env.Renderer)
	gm.player.Draw(gm.env.Renderer)
	gm.opponent.Draw(gm.env.Renderer)

	gm.CheckScoring()
	gm.drawScore()
}

// CheckScoring 球從右邊出界是電腦得分，從左邊出界是玩家得分
func (gm *GameManager) CheckScoring() {
	if gm.ball.Rect.Right() >= gm.env.Width {
		gm.OpponentScore += 1
		gm.ball.Reset()
		logger.Log.Info(fmt.Sprintf(logger.OpponentScoredMsg, gm.PlayerScore, gm.OpponentScore))
	}
	if gm.ball.Rect.Right() <= 0 {
		gm.PlayerScore += 1
		gm.ball.Reset()
		logger.Log.Info(fmt.Sprintf(logger.PlayerScoredMsg, gm.PlayerScore, gm.OpponentScore))
	}
}

func (gm *GameManager) drawScore() {
	r := gm.env.Renderer
	midX, midY := gm.env.Width/2, gm.env.Height/2

	playerScore := r.Text(strconv.Itoa(gm.PlayerScore), ScoreColor)
	opponentScore := r.Text(strconv.Itoa(gm.OpponentScore), ScoreColor)

	playerRect := playerScore.MidLeftAt(Point{X: midX + 40, Y: midY})
	opponentRect := opponentScore.MidRightAt(Point{X: midX - 40, Y: midY})

	r.Blit(playerScore, Point{X: playerRect.X, Y: playerRect.Y})
	r.Blit(opponentScore, Point{X: opponentRect.X, Y: opponentRect.Y})
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddleUpdateStaysInsideArena(t *testing.T) {
	tests := []struct {
		name     string
		y        int
		movement int
		wantY    int
	}{
		{"idle", 200, 0, 200},
		{"down", 200, 7, 207},
		{"up", 200, -7, 193},
		{"past top", 3, -7, 0},
		{"exactly top", 7, -7, 0},
		{"past bottom", 437, 7, ArenaHeight - PaddleHeight},
		{"far below", 900, 50, ArenaHeight - PaddleHeight},
		{"far above", -300, -50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(NewRect(940, tt.y, PaddleWidth, PaddleHeight), PlayerSpeed, ArenaHeight)
			p.SetMovement(tt.movement)
			p.Update()

			assert.Equal(t, tt.wantY, p.Rect.Y)
			assert.GreaterOrEqual(t, p.Rect.Top(), 0)
			assert.LessOrEqual(t, p.Rect.Bottom(), ArenaHeight)
		})
	}
}

func TestPaddleClampInvariantSweep(t *testing.T) {
	p := NewPaddle(NewRect(940, 0, PaddleWidth, PaddleHeight), PlayerSpeed, ArenaHeight)
	for y := -200; y <= ArenaHeight+200; y += 13 {
		for _, m := range []int{-20, -7, 0, 7, 20} {
			p.Rect.Y = y
			p.SetMovement(m)
			p.Update()
			if p.Rect.Top() < 0 || p.Rect.Bottom() > ArenaHeight {
				t.Fatalf("paddle escaped arena: y=%d movement=%d rect=%+v", y, m, p.Rect)
			}
		}
	}
}

func TestPaddleTallerThanArenaEndsOnBottomEdge(t *testing.T) {
	p := NewPaddle(NewRect(940, 10, PaddleWidth, ArenaHeight+60), PlayerSpeed, ArenaHeight)
	p.Update()

	// 先貼齊上緣，再被下緣規則覆蓋
	assert.Equal(t, ArenaHeight, p.Rect.Bottom())
	assert.Equal(t, -60, p.Rect.Top())
}

func TestPaddleMoveUpDown(t *testing.T) {
	p := NewPaddle(NewRect(940, 270, PaddleWidth, PaddleHeight), PlayerSpeed, ArenaHeight)

	p.MoveDown()
	assert.Equal(t, PlayerSpeed, p.Movement)

	p.MoveUp()
	assert.Equal(t, -PlayerSpeed, p.Movement)
}

func TestOpponentTracksBall(t *testing.T) {
	te := newTestEnv()

	tests := []struct {
		name  string
		top   int
		ballY int
		wantY int
	}{
		{"ball below moves down by speed", 100, 200, 106},
		{"ball above moves up by counter speed", 200, 100, 192},
		{"aligned stays", 150, 150, 150},
		// 往下超過球之後同一幀又往上修正
		{"overshoot corrected in same frame", 100, 103, 98},
		{"clamped at top", 4, -40, 0},
		{"clamped at bottom", 438, 530, ArenaHeight - PaddleHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(te.Env, BallStartSpeed, nil)
			ball.Rect.Y = tt.ballY
			o := NewOpponent(NewRect(10, tt.top, PaddleWidth, PaddleHeight), OpponentSpeed, ArenaHeight)

			o.Update(ball)

			assert.Equal(t, tt.wantY, o.Rect.Y)
		})
	}
}

func TestOpponentCounterSpeedIgnoresTrackingSpeed(t *testing.T) {
	te := newTestEnv()
	ball := NewBall(te.Env, BallStartSpeed, nil)
	ball.Rect.Y = 0

	o := NewOpponent(NewRect(10, 300, PaddleWidth, PaddleHeight), 2, ArenaHeight)
	o.Update(ball)

	assert.Equal(t, 300-OpponentCounterSpeed, o.Rect.Y)
}

package pong_test

import (
	"fmt"
	"testing"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhysics(seed uint64) *pong.Physics {
	court := pong.DefaultCourt()
	return pong.NewPhysics(court, pong.NewDice(seed, court.MaxSpeed))
}

func TestCourtGeometry(t *testing.T) {
	c := pong.DefaultCourt()

	assert.Equal(t, 42, c.CenterX())
	assert.Equal(t, 24, c.CenterY())
	assert.Equal(t, 40, c.PaddleDist())
	assert.Equal(t, 1, c.BallMinX())
	assert.Equal(t, 82, c.BallMaxX())
	assert.Equal(t, 1, c.BallMinY())
	assert.Equal(t, 46, c.BallMaxY())
	assert.Equal(t, 4, c.Surface(pong.Player1))
	assert.Equal(t, 80, c.Surface(pong.Player2))
	assert.Equal(t, 0, c.PaddleLeft(pong.Player1))
	assert.Equal(t, 82, c.PaddleLeft(pong.Player2))
	assert.Equal(t, 40, c.PaddleTravel())
}

func TestClampPaddle(t *testing.T) {
	c := pong.DefaultCourt()

	assert.Equal(t, 0, c.ClampPaddle(-5))
	assert.Equal(t, 17, c.ClampPaddle(17))
	assert.Equal(t, 40, c.ClampPaddle(40))
	assert.Equal(t, 40, c.ClampPaddle(200))
}

func TestAdvanceMovesByVelocity(t *testing.T) {
	p := newPhysics(1)
	ball := pong.Ball{X: 40, Y: 20, DX: 2, DY: -1}

	bounced := p.Advance(&ball)

	assert.False(t, bounced)
	assert.Equal(t, 42, ball.X)
	assert.Equal(t, 19, ball.Y)
	assert.Equal(t, 2.0, ball.DX)
	assert.Equal(t, -1.0, ball.DY)
}

func TestAdvanceTruncatesFractionalVelocity(t *testing.T) {
	p := newPhysics(1)
	ball := pong.Ball{X: 40, Y: 20, DX: -2, DY: 1.5}

	p.Advance(&ball)

	assert.Equal(t, 38, ball.X)
	assert.Equal(t, 21, ball.Y)
}

func TestAdvanceAccelerationBonus(t *testing.T) {
	tests := []struct {
		accel        int
		dx, dy       float64
		wantX, wantY int
	}{
		{accel: 4, dx: 2, dy: 1, wantX: 42, wantY: 21},
		{accel: 5, dx: 2, dy: 1, wantX: 43, wantY: 22},
		{accel: 10, dx: -2, dy: -1, wantX: 36, wantY: 17},
		{accel: 5, dx: 2, dy: 0, wantX: 43, wantY: 21},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("accel=%d,dx=%v,dy=%v", tt.accel, tt.dx, tt.dy), func(t *testing.T) {
			p := newPhysics(1)
			ball := pong.Ball{X: 40, Y: 20, DX: tt.dx, DY: tt.dy, Accel: tt.accel}

			p.Advance(&ball)

			assert.Equal(t, tt.wantX, ball.X)
			assert.Equal(t, tt.wantY, ball.Y)
		})
	}
}

func TestAdvanceStalledBallGetsRandomStep(t *testing.T) {
	p := newPhysics(7)
	ball := pong.Ball{X: 40, Y: 20, DX: 0.5, DY: 0}

	require.True(t, p.Stalled(ball))
	p.Advance(&ball)

	step := ball.X - 40
	assert.NotZero(t, step)
	assert.LessOrEqual(t, step, 3)
	assert.GreaterOrEqual(t, step, -3)
	assert.Equal(t, 0.5, ball.DX, "velocity is left alone")
}

func TestAdvanceClampsSideLinesByVelocitySign(t *testing.T) {
	p := newPhysics(1)

	left := pong.Ball{X: 2, Y: 20, DX: -3, DY: 0.2}
	p.Advance(&left)
	assert.Equal(t, 1, left.X)

	right := pong.Ball{X: 81, Y: 20, DX: 3, DY: 0.2}
	p.Advance(&right)
	assert.Equal(t, 82, right.X)

	// The clamp follows DX, not the line that was crossed.
	wrapped := pong.Ball{X: 90, Y: 20, DX: -1, DY: 0.2}
	p.Advance(&wrapped)
	assert.Equal(t, 1, wrapped.X)
}

func TestWallBounceAlternatesSign(t *testing.T) {
	p := newPhysics(1)
	ball := pong.Ball{X: 40, Y: 2, DX: 1, DY: -2}

	require.True(t, p.Advance(&ball))
	assert.Equal(t, 1, ball.Y)
	assert.Equal(t, 2.0, ball.DY)

	require.False(t, p.Advance(&ball))
	assert.Equal(t, 3, ball.Y)
	assert.Equal(t, 2.0, ball.DY)

	ball.Y = 45
	require.True(t, p.Advance(&ball))
	assert.Equal(t, 46, ball.Y)
	assert.Equal(t, -2.0, ball.DY)

	require.False(t, p.Advance(&ball))
	assert.Equal(t, 44, ball.Y)
	assert.Equal(t, -2.0, ball.DY)
}

func TestAdvanceKeepsBallOnCourt(t *testing.T) {
	c := pong.DefaultCourt()
	p := newPhysics(42)
	dice := pong.NewDice(99, 6)

	ball := pong.Ball{X: c.CenterX(), Y: c.CenterY(), DX: 3, DY: 2}
	for i := 0; i < 5000; i++ {
		if i%50 == 0 {
			ball.DX = float64(dice.Vector())
			ball.DY = float64(dice.Vector()) * 1.5
			ball.Accel = i / 100
		}
		p.Advance(&ball)

		require.GreaterOrEqual(t, ball.X, c.BallMinX(), "tick %d", i)
		require.LessOrEqual(t, ball.X, c.BallMaxX(), "tick %d", i)
		require.GreaterOrEqual(t, ball.Y, c.BallMinY(), "tick %d", i)
		require.LessOrEqual(t, ball.Y, c.BallMaxY(), "tick %d", i)

		if ball.X == c.BallMinX() || ball.X == c.BallMaxX() {
			ball.X = c.CenterX()
			ball.DX = -ball.DX
		}
	}
}

func TestCheckContact(t *testing.T) {
	paddles := [2]pong.Paddle{{Top: 36}, {Top: 10}}

	tests := []struct {
		name string
		ball pong.Ball
		want pong.Contact
	}{
		{"player 1 hit", pong.Ball{X: 1, Y: 40, DX: -2, DY: 1}, pong.PaddleHit(pong.Player1)},
		{"player 1 top edge", pong.Ball{X: 4, Y: 36, DX: -1}, pong.PaddleHit(pong.Player1)},
		{"player 1 inclusive bottom edge", pong.Ball{X: 4, Y: 44, DX: -1}, pong.PaddleHit(pong.Player1)},
		{"player 1 just below", pong.Ball{X: 4, Y: 45, DX: -1}, pong.Contact{}},
		{"player 1 moving away", pong.Ball{X: 3, Y: 40, DX: 1}, pong.Contact{}},
		{"player 1 not reached", pong.Ball{X: 5, Y: 40, DX: -1}, pong.Contact{}},
		{"player 2 hit", pong.Ball{X: 80, Y: 14, DX: 2}, pong.PaddleHit(pong.Player2)},
		{"player 2 moving away", pong.Ball{X: 81, Y: 14, DX: -2}, pong.Contact{}},
		{"goal on the left", pong.Ball{X: 1, Y: 10, DX: -2}, pong.Goal(pong.Player2)},
		{"goal on the right", pong.Ball{X: 82, Y: 40, DX: 2}, pong.Goal(pong.Player1)},
		{"open court", pong.Ball{X: 42, Y: 24, DX: 2}, pong.Contact{}},
	}

	p := newPhysics(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.CheckContact(tt.ball, paddles))
		})
	}
}

func TestPaddleHitTakesPrecedenceOverGoal(t *testing.T) {
	p := newPhysics(1)
	c := p.Court
	ball := pong.Ball{X: c.BallMinX(), Y: 40, DX: -2, DY: 1}
	paddles := [2]pong.Paddle{{Top: 36, PrevTop: 36}, {Top: 0}}

	contact := p.CheckContact(ball, paddles)
	require.Equal(t, pong.PaddleHit(pong.Player1), contact)

	p.Bounce(&ball, paddles[pong.Player1].Dir())
	assert.Equal(t, 2.0, ball.DX)
	assert.Equal(t, 1.0, ball.DY)
	assert.Equal(t, 1, ball.Accel)
}

func TestBounceAppliesSpin(t *testing.T) {
	p := newPhysics(1)
	ball := pong.Ball{DX: 3, DY: 2, Accel: 4}

	p.Bounce(&ball, pong.PaddleUp)

	assert.Equal(t, -3.0, ball.DX)
	assert.Equal(t, 3.0, ball.DY)
	assert.Equal(t, 5, ball.Accel)
}

func TestServe(t *testing.T) {
	p := newPhysics(3)
	ball := pong.Ball{X: 7, Y: 44, DX: -9, DY: 4, Accel: 17}

	p.Serve(&ball, 0)

	assert.Equal(t, 42, ball.X)
	assert.Equal(t, 24, ball.Y)
	assert.Zero(t, ball.Accel)
	for _, v := range []float64{ball.DX, ball.DY} {
		assert.NotZero(t, v)
		assert.LessOrEqual(t, v, 3.0)
		assert.GreaterOrEqual(t, v, -3.0)
	}
}

func TestServeBiasForcesDirection(t *testing.T) {
	for seed := uint64(0); seed < 64; seed++ {
		p := newPhysics(seed)

		var ball pong.Ball
		p.Serve(&ball, +1)
		assert.Positive(t, ball.DX, "seed %d", seed)

		p.Serve(&ball, -1)
		assert.Negative(t, ball.DX, "seed %d", seed)
	}
}

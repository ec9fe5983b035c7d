// Package pong implements the game core of a two-player paddle game: ball
// physics, paddle spin, scoring and the serve/rally/goal state machine. The
// core runs one synchronous pass per tick on an ecs.Scheduler and talks to
// the outside world only through the collaborator interfaces in this package.
package pong

// Player identifies one of the two players. Player 1 defends the left goal.
type Player int

const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	if p == Player1 {
		return "player 1"
	}
	return "player 2"
}

// Other returns the opposing player.
func (p Player) Other() Player {
	return 1 - p
}

// Court holds the fixed geometry and tuning of the playing field, in pixels.
type Court struct {
	Width        int
	Height       int
	PaddleWidth  int
	PaddleHeight int
	BallRadius   int
	MaxSpeed     int // largest serve speed on either axis
	AccelDivisor int // paddle bounces per extra pixel of speed
	NetDash      int
	ScoreDist    int // gap between the net and each scoreboard
}

// DefaultCourt returns the geometry of the 84x48 reference display.
func DefaultCourt() Court {
	return Court{
		Width:        84,
		Height:       48,
		PaddleWidth:  2,
		PaddleHeight: 8,
		BallRadius:   2,
		MaxSpeed:     3,
		AccelDivisor: 5,
		NetDash:      3,
		ScoreDist:    4,
	}
}

// withDefaults fills every zero field from DefaultCourt.
func (c Court) withDefaults() Court {
	d := DefaultCourt()
	for _, f := range []struct{ v, def *int }{
		{&c.Width, &d.Width},
		{&c.Height, &d.Height},
		{&c.PaddleWidth, &d.PaddleWidth},
		{&c.PaddleHeight, &d.PaddleHeight},
		{&c.BallRadius, &d.BallRadius},
		{&c.MaxSpeed, &d.MaxSpeed},
		{&c.AccelDivisor, &d.AccelDivisor},
		{&c.NetDash, &d.NetDash},
		{&c.ScoreDist, &d.ScoreDist},
	} {
		if *f.v == 0 {
			*f.v = *f.def
		}
	}
	return c
}

func (c Court) CenterX() int { return c.Width / 2 }
func (c Court) CenterY() int { return c.Height / 2 }

// PaddleDist is the distance of each paddle from the net.
func (c Court) PaddleDist() int { return c.Width/2 - c.PaddleWidth }

func (c Court) BallMinX() int { return c.BallRadius - 1 }
func (c Court) BallMaxX() int { return c.Width - c.BallRadius }
func (c Court) BallMinY() int { return c.BallRadius - 1 }
func (c Court) BallMaxY() int { return c.Height - c.BallRadius }

// Surface returns the ball column at which the player's paddle can touch it.
func (c Court) Surface(p Player) int {
	if p == Player1 {
		return c.CenterX() - c.PaddleDist() + c.BallRadius
	}
	return c.CenterX() + c.PaddleDist() - c.BallRadius
}

// PaddleLeft returns the leftmost column of the player's paddle.
func (c Court) PaddleLeft(p Player) int {
	if p == Player1 {
		return c.CenterX() - c.PaddleDist() - c.PaddleWidth
	}
	return c.CenterX() + c.PaddleDist()
}

// PaddleTravel is the largest legal paddle top row.
func (c Court) PaddleTravel() int { return c.Height - c.PaddleHeight }

// ClampPaddle limits a sampled paddle top row to the paddle's legal travel.
func (c Court) ClampPaddle(top int) int {
	if top < 0 {
		return 0
	}
	if top > c.PaddleTravel() {
		return c.PaddleTravel()
	}
	return top
}

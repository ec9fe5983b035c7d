package pong

import "fmt"

// ContactKind classifies what the ball touched during a tick.
type ContactKind int

const (
	ContactNone ContactKind = iota
	ContactPaddle
	ContactGoal
)

// Contact is the result of CheckContact. Player is the paddle's owner for a
// paddle hit and the scoring player for a goal.
type Contact struct {
	Kind   ContactKind
	Player Player
}

// PaddleHit returns a paddle contact for the given player.
func PaddleHit(p Player) Contact { return Contact{Kind: ContactPaddle, Player: p} }

// Goal returns a goal contact scored by the given player.
func Goal(scorer Player) Contact { return Contact{Kind: ContactGoal, Player: scorer} }

func (c Contact) String() string {
	switch c.Kind {
	case ContactPaddle:
		return fmt.Sprintf("paddle hit by %s", c.Player)
	case ContactGoal:
		return fmt.Sprintf("goal for %s", c.Player)
	default:
		return "none"
	}
}

// Physics moves the ball across a court and resolves its collisions.
type Physics struct {
	Court Court
	Dice  *Dice
}

// NewPhysics creates a physics step for court using dice for random vectors.
func NewPhysics(court Court, dice *Dice) *Physics {
	return &Physics{Court: court, Dice: dice}
}

// Advance moves the ball one tick. The acceleration bonus grows the step on
// both axes in the direction of travel. A horizontal step that truncates to
// zero is replaced by a random vector so the ball can never stall.
//
// A ball that reaches a side line is clamped to the line that matches the
// sign of DX, not necessarily the one it crossed. A ball that reaches the top
// or bottom line is clamped the same way by DY and bounces; Advance then
// reports true so the caller can sound the touch tone.
func (p *Physics) Advance(b *Ball) (bounced bool) {
	c := p.Court

	bonus := 0
	if c.AccelDivisor > 0 {
		bonus = b.Accel / c.AccelDivisor
	}

	stepX := int(b.DX + float64(bonus*direction(b.DX)))
	stepY := int(b.DY + float64(bonus*direction(b.DY)))
	if stepX == 0 {
		stepX = p.Dice.Vector()
	}

	b.X += stepX
	b.Y += stepY

	if b.X <= c.BallMinX() || b.X >= c.BallMaxX() {
		if b.DX < 0 {
			b.X = c.BallMinX()
		} else {
			b.X = c.BallMaxX()
		}
	}

	if b.Y <= c.BallMinY() || b.Y >= c.BallMaxY() {
		if b.DY < 0 {
			b.Y = c.BallMinY()
		} else {
			b.Y = c.BallMaxY()
		}
		b.DY = -b.DY
		return true
	}
	return false
}

// Stalled reports whether the ball's next horizontal step would truncate to zero.
func (p *Physics) Stalled(b Ball) bool {
	bonus := 0
	if p.Court.AccelDivisor > 0 {
		bonus = b.Accel / p.Court.AccelDivisor
	}
	return int(b.DX+float64(bonus*direction(b.DX))) == 0
}

// CheckContact reports whether the ball touches a paddle or a goal line.
// Paddles are tested first, so a ball that is both on a paddle and past the
// goal line is a paddle hit.
func (p *Physics) CheckContact(b Ball, paddles [2]Paddle) Contact {
	c := p.Court
	switch {
	case p.touching(b, paddles[Player1], Player1):
		return PaddleHit(Player1)
	case p.touching(b, paddles[Player2], Player2):
		return PaddleHit(Player2)
	case b.X <= c.BallMinX():
		return Goal(Player2)
	case b.X >= c.BallMaxX():
		return Goal(Player1)
	default:
		return Contact{}
	}
}

// touching tests the ball against one paddle. The row range is inclusive at
// both ends, so the paddle catches one row more than it draws.
func (p *Physics) touching(b Ball, paddle Paddle, player Player) bool {
	surface := p.Court.Surface(player)
	switch player {
	case Player1:
		if b.DX >= 0 || b.X > surface {
			return false
		}
	case Player2:
		if b.DX <= 0 || b.X < surface {
			return false
		}
	}
	return b.Y >= paddle.Top && b.Y <= paddle.Top+p.Court.PaddleHeight
}

// Bounce sends the ball back after a paddle hit: it reverses DX, counts the
// bounce toward the acceleration bonus and applies the paddle's spin.
func (p *Physics) Bounce(b *Ball, dir PaddleDir) {
	b.DX = -b.DX
	b.Accel++
	b.DY = ApplySpin(b.DY, dir)
}

// Serve puts the ball back on the center spot with a fresh random velocity.
// A non-zero bias forces the sign of DX; see ServeBias.
func (p *Physics) Serve(b *Ball, bias int) {
	b.X = p.Court.CenterX()
	b.Y = p.Court.CenterY()
	b.DX = float64(p.Dice.Vector())
	b.DY = float64(p.Dice.Vector())

	if (bias > 0 && b.DX < 0) || (bias < 0 && b.DX > 0) {
		b.DX = -b.DX
	}

	b.Accel = 0
}

func direction(v float64) int {
	if v < 0 {
		return -1
	}
	return +1
}

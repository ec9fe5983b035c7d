package pong

import "fmt"

// Ball is the game ball. Its position snaps to whole pixels while its
// velocity keeps the fractional part that spin produces.
type Ball struct {
	X, Y   int
	DX, DY float64
	Accel  int // paddle bounces since the last serve
}

// PaddleDir is the direction a paddle moved between two ticks.
type PaddleDir int

const (
	PaddleDown PaddleDir = iota
	PaddleStopped
	PaddleUp
)

func (d PaddleDir) String() string {
	switch d {
	case PaddleDown:
		return "down"
	case PaddleUp:
		return "up"
	default:
		return "stopped"
	}
}

// Paddle is a player's paddle. PrevTop holds the top row of the previous tick.
type Paddle struct {
	Top     int
	PrevTop int
}

// Move shifts the current top row into PrevTop and records the new one.
func (p *Paddle) Move(top int) {
	p.PrevTop = p.Top
	p.Top = top
}

// Dir reports how the paddle moved during the last tick. A growing top row
// is PaddleUp and a shrinking one is PaddleDown, the convention of the
// reference controller wiring.
func (p Paddle) Dir() PaddleDir {
	switch delta := p.Top - p.PrevTop; {
	case delta > 0:
		return PaddleUp
	case delta < 0:
		return PaddleDown
	default:
		return PaddleStopped
	}
}

// Phase is the machine's position in the serve/rally/goal cycle.
type Phase int

const (
	Serving Phase = iota
	Rallying
	GoalScored
)

func (p Phase) String() string {
	switch p {
	case Serving:
		return "serving"
	case Rallying:
		return "rallying"
	case GoalScored:
		return "goal"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Counters track what happened since the machine started.
type Counters struct {
	Serves      int
	PaddleHits  int
	WallBounces int
	Goals       int
	Stalls      int // advances that needed a random horizontal step
}

// State is the complete game state. It is owned by a Machine and only
// mutated by its systems.
type State struct {
	Tick     uint64
	Phase    Phase
	Ball     Ball
	Paddles  [2]Paddle
	Score    ScoreTracker
	Counters Counters
}

// Snapshot is the read-only view of one tick handed to renderers.
type Snapshot struct {
	Tick    uint64 `json:"tick"`
	BallX   int    `json:"ballX"`
	BallY   int    `json:"ballY"`
	Paddle1 int    `json:"paddle1"`
	Paddle2 int    `json:"paddle2"`
	Score1  int    `json:"score1"`
	Score2  int    `json:"score2"`
	Goal    bool   `json:"goal"`
}

// Snapshot copies the parts of the state a renderer needs.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.Tick,
		BallX:   s.Ball.X,
		BallY:   s.Ball.Y,
		Paddle1: s.Paddles[Player1].Top,
		Paddle2: s.Paddles[Player2].Top,
		Score1:  s.Score.Of(Player1),
		Score2:  s.Score.Of(Player2),
		Goal:    s.Phase == GoalScored,
	}
}

// PaddleTop returns the paddle top row of the given player.
func (s Snapshot) PaddleTop(p Player) int {
	if p == Player1 {
		return s.Paddle1
	}
	return s.Paddle2
}

// ScoreOf returns the score of the given player.
func (s Snapshot) ScoreOf(p Player) int {
	if p == Player1 {
		return s.Score1
	}
	return s.Score2
}

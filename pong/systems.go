package pong

import (
	"log"
	"time"

	"github.com/plus3/pong/ecs"
)

// Devices bundles the collaborators the systems call out to. It is stored
// as a singleton next to State.
type Devices struct {
	Physics   *Physics
	Input     InputSampler
	Renderer  Renderer
	Buzzer    Buzzer
	TouchTone time.Duration
	GoalTone  time.Duration
	Serve     func()
	Log       *log.Logger
}

func (d *Devices) touch() { d.Buzzer.PlayTone(d.TouchTone) }
func (d *Devices) goal()  { d.Buzzer.PlayTone(d.GoalTone) }

// InputSystem samples both paddles before anything else moves, so the ball
// never sees half-updated paddles. A served ball goes into play here.
type InputSystem struct {
	State   ecs.Singleton[State]
	Devices ecs.Singleton[Devices]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	devices := s.Devices.Get()
	court := devices.Physics.Court

	top1 := devices.Input.ReadPaddle(Player1)
	top2 := devices.Input.ReadPaddle(Player2)

	state.Paddles[Player1].Move(court.ClampPaddle(top1))
	state.Paddles[Player2].Move(court.ClampPaddle(top2))

	state.Tick = frame.Tick
	if state.Phase == Serving {
		state.Phase = Rallying
	}
}

// BallSystem advances the ball and bounces it off the top and bottom walls.
type BallSystem struct {
	State   ecs.Singleton[State]
	Devices ecs.Singleton[Devices]
}

func (s *BallSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	devices := s.Devices.Get()

	if devices.Physics.Stalled(state.Ball) {
		state.Counters.Stalls++
	}

	if devices.Physics.Advance(&state.Ball) {
		state.Counters.WallBounces++
		frame.Commands.Defer(devices.touch)
	}
}

// ContactSystem resolves paddle hits and goals. A goal leaves the machine in
// GoalScored for the rest of the tick; the goal tone and the next serve are
// deferred until the goal frame has been rendered.
type ContactSystem struct {
	State   ecs.Singleton[State]
	Devices ecs.Singleton[Devices]
}

func (s *ContactSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	devices := s.Devices.Get()

	contact := devices.Physics.CheckContact(state.Ball, state.Paddles)
	switch contact.Kind {
	case ContactPaddle:
		devices.Physics.Bounce(&state.Ball, state.Paddles[contact.Player].Dir())
		state.Counters.PaddleHits++
		frame.Commands.Defer(devices.touch)

	case ContactGoal:
		state.Score.RegisterGoal(contact.Player)
		state.Phase = GoalScored
		state.Counters.Goals++
		devices.Log.Printf("[GAME] goal for %s, score %d-%d",
			contact.Player, state.Score.Of(Player1), state.Score.Of(Player2))

		frame.Commands.Defer(devices.goal)
		frame.Commands.Defer(devices.Serve)
	}
}

// RenderSystem hands the tick's snapshot to the renderer.
type RenderSystem struct {
	State   ecs.Singleton[State]
	Devices ecs.Singleton[Devices]

	Last Snapshot
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	s.Last = s.State.Get().Snapshot()
	s.Devices.Get().Renderer.Render(s.Last)
}

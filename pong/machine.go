package pong

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/plus3/pong/ecs"
)

// Options configures a Machine. Zero Court fields, a zero TickInterval or
// tone and nil collaborators fall back to defaults; a zero Splash is skipped.
// Use MuteBuzzer for silent tones.
type Options struct {
	Court        Court
	TickInterval time.Duration
	Splash       time.Duration
	TouchTone    time.Duration
	GoalTone     time.Duration

	Input    InputSampler
	Renderer Renderer
	Buzzer   Buzzer
	Entropy  EntropySource
	Logger   *log.Logger

	// Systems run after rendering on every tick, e.g. debug publishers.
	Systems []ecs.System
}

// DefaultOptions returns the reference tuning with silent, headless collaborators.
func DefaultOptions() Options {
	return Options{
		Court:        DefaultCourt(),
		TickInterval: 133 * time.Millisecond,
		Splash:       4 * time.Second,
		TouchTone:    10 * time.Millisecond,
		GoalTone:     time.Second,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	o.Court = o.Court.withDefaults()
	if o.TickInterval <= 0 {
		o.TickInterval = d.TickInterval
	}
	if o.TouchTone <= 0 {
		o.TouchTone = d.TouchTone
	}
	if o.GoalTone <= 0 {
		o.GoalTone = d.GoalTone
	}
	if o.Input == nil {
		o.Input = &ScriptedInput{}
	}
	if o.Renderer == nil {
		o.Renderer = RenderFunc(nil)
	}
	if o.Buzzer == nil {
		o.Buzzer = MuteBuzzer{}
	}
	if o.Entropy == nil {
		o.Entropy = FixedEntropy(0)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o
}

// Machine is the game-state machine. It exclusively owns the game State and
// advances it one tick at a time: Serving, then Rallying until a goal, then
// GoalScored for the goal tick, then a fresh serve.
//
// A Machine is not safe for concurrent use; all of its methods must be called
// from the goroutine that runs it.
type Machine struct {
	opts      Options
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	state     *ecs.Singleton[State]
	dice      *Dice
	physics   *Physics
	render    *RenderSystem
}

// NewMachine creates a machine and serves the first ball.
func NewMachine(opts Options) *Machine {
	opts = opts.withDefaults()

	m := &Machine{
		opts:    opts,
		storage: ecs.NewStorage(),
		dice:    NewDice(0, opts.Court.MaxSpeed),
	}
	m.physics = NewPhysics(opts.Court, m.dice)
	m.state = ecs.NewSingleton[State](m.storage)

	ecs.NewSingleton[Devices](m.storage, Devices{
		Physics:   m.physics,
		Input:     opts.Input,
		Renderer:  opts.Renderer,
		Buzzer:    opts.Buzzer,
		TouchTone: opts.TouchTone,
		GoalTone:  opts.GoalTone,
		Serve:     m.Serve,
		Log:       opts.Logger,
	})

	m.render = &RenderSystem{}
	m.scheduler = ecs.NewScheduler(m.storage)
	m.scheduler.Register(&InputSystem{})
	m.scheduler.Register(&BallSystem{})
	m.scheduler.Register(&ContactSystem{})
	m.scheduler.Register(m.render)
	for _, system := range opts.Systems {
		m.scheduler.Register(system)
	}

	m.Serve()
	return m
}

// Serve reseeds the dice from the entropy source and the current game
// counters, then puts a new ball in play from the center spot. The leading
// player serves toward the trailing one.
func (m *Machine) Serve() {
	state := m.state.Get()

	seed := m.opts.Entropy.ReadEntropy()
	for _, v := range []int{
		state.Score.Of(Player1), state.Score.Of(Player2), state.Ball.Accel,
		state.Paddles[Player1].Top, state.Paddles[Player1].PrevTop,
		state.Paddles[Player2].Top, state.Paddles[Player2].PrevTop,
	} {
		seed += uint64(v)
	}
	m.dice.Seed(seed)

	m.physics.Serve(&state.Ball, state.Score.ServeBias())
	state.Phase = Serving
	state.Counters.Serves++

	m.opts.Logger.Printf("[GAME] serve dx=%+.0f dy=%+.0f", state.Ball.DX, state.Ball.DY)
}

// Tick runs one full tick and returns the snapshot that was rendered.
func (m *Machine) Tick() Snapshot {
	m.scheduler.Once(m.opts.TickInterval.Seconds())
	return m.render.Last
}

// Run shows the splash screen, then ticks every TickInterval until the
// context is cancelled.
func (m *Machine) Run(ctx context.Context) {
	signal := ecs.NewTickSignal()
	go ecs.StartTimer(ctx, m.opts.TickInterval, signal)
	m.RunOn(ctx, signal)
}

// RunOn shows the splash screen, then ticks whenever signal is raised until
// the context is cancelled.
func (m *Machine) RunOn(ctx context.Context, signal *ecs.TickSignal) {
	if !m.splash(ctx) {
		return
	}
	signal.Take()
	m.scheduler.RunOn(ctx, signal)
}

func (m *Machine) splash(ctx context.Context) bool {
	if m.opts.Splash <= 0 {
		return ctx.Err() == nil
	}
	if s, ok := m.opts.Renderer.(Splasher); ok {
		s.Splash(m.opts.Splash)
	}

	timer := time.NewTimer(m.opts.Splash)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// State returns a copy of the current game state.
func (m *Machine) State() State {
	return *m.state.Get()
}

// Snapshot returns the snapshot of the last completed tick.
func (m *Machine) Snapshot() Snapshot {
	return m.render.Last
}

// Court returns the machine's court geometry.
func (m *Machine) Court() Court {
	return m.opts.Court
}

// Stats returns the scheduler's per-system timing statistics.
func (m *Machine) Stats() *ecs.SchedulerStats {
	return m.scheduler.GetStats()
}

package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/pong/ecs"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Counter struct {
	Value int
}

type MovementSystem struct {
	Position     ecs.Singleton[Position]
	Velocity     ecs.Singleton[Velocity]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	pos := s.Position.Get()
	vel := s.Velocity.Get()
	pos.X += vel.DX * frame.DeltaTime
	pos.Y += vel.DY * frame.DeltaTime
}

type TraceSystem struct {
	Name  string
	Trace *[]string
}

func (s *TraceSystem) Execute(frame *ecs.UpdateFrame) {
	*s.Trace = append(*s.Trace, s.Name)
	frame.Commands.Defer(func() {
		*s.Trace = append(*s.Trace, "flush "+s.Name)
	})
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		storage := ecs.NewStorage()
		scheduler := ecs.NewScheduler(storage)

		var trace []string
		scheduler.Register(&TraceSystem{Name: "input", Trace: &trace})
		scheduler.Register(&TraceSystem{Name: "ball", Trace: &trace})
		scheduler.Register(&TraceSystem{Name: "render", Trace: &trace})

		scheduler.Once(1.0)

		want := []string{"input", "ball", "render", "flush input", "flush ball", "flush render"}
		if len(trace) != len(want) {
			t.Fatalf("expected %v, got %v", want, trace)
		}
		for i := range want {
			if trace[i] != want[i] {
				t.Errorf("step %d: expected %q, got %q", i, want[i], trace[i])
			}
		}
	})

	t.Run("singleton fields are bound on register", func(t *testing.T) {
		storage := ecs.NewStorage()
		ecs.NewSingleton[Velocity](storage, Velocity{DX: 1, DY: 2})
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		if !movement.Velocity.Exists() {
			t.Fatal("expected velocity singleton to be bound")
		}
		if movement.Position.Exists() {
			t.Fatal("expected position singleton to be missing")
		}

		ecs.NewSingleton[Position](storage)
		if !movement.Position.Exists() {
			t.Fatal("expected position singleton to be bound once created")
		}

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		pos := movement.Position.Get()
		if pos.X != 2 || pos.Y != 4 {
			t.Errorf("expected position (2, 4), got (%v, %v)", pos.X, pos.Y)
		}
	})

	t.Run("tick numbers increase", func(t *testing.T) {
		storage := ecs.NewStorage()
		scheduler := ecs.NewScheduler(storage)

		var ticks []uint64
		scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) {
			ticks = append(ticks, frame.Tick)
		}))

		scheduler.Once(1.0)
		scheduler.Once(1.0)
		scheduler.Once(1.0)

		if len(ticks) != 3 || ticks[0] != 1 || ticks[2] != 3 {
			t.Errorf("expected ticks [1 2 3], got %v", ticks)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		storage := ecs.NewStorage()
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		ecs.NewSingleton[Position](storage)
		ecs.NewSingleton[Velocity](storage)
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if movement.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("delta time calculation", func(t *testing.T) {
		storage := ecs.NewStorage()
		ecs.NewSingleton[Position](storage)
		ecs.NewSingleton[Velocity](storage, Velocity{DX: 10, DY: 20})
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		scheduler.Once(0.5)

		pos := movement.Position.Get()
		if pos.X != 5.0 || pos.Y != 10.0 {
			t.Errorf("expected position to be updated with delta time, got (%v, %v)", pos.X, pos.Y)
		}
	})

	t.Run("run on coalesces raised signals", func(t *testing.T) {
		storage := ecs.NewStorage()
		scheduler := ecs.NewScheduler(storage)

		executed := make(chan struct{}, 16)
		release := make(chan struct{})
		scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) {
			executed <- struct{}{}
			if frame.Tick == 1 {
				<-release
			}
		}))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		signal := ecs.NewTickSignal()
		done := make(chan struct{})
		go func() {
			scheduler.RunOn(ctx, signal)
			close(done)
		}()

		signal.Raise()
		<-executed

		// Three ticks fall due while the first one is still running.
		signal.Raise()
		signal.Raise()
		signal.Raise()
		close(release)

		<-executed
		select {
		case <-executed:
			t.Error("expected the overrun ticks to coalesce into one")
		case <-time.After(50 * time.Millisecond):
		}

		cancel()
		<-done
		if got := scheduler.GetStats().Ticks; got != 2 {
			t.Errorf("expected 2 ticks, got %d", got)
		}
	})
}

type systemFunc func(frame *ecs.UpdateFrame)

func (f systemFunc) Execute(frame *ecs.UpdateFrame) { f(frame) }

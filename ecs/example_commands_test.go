package ecs_test

import (
	"fmt"

	"github.com/plus3/pong/ecs"
)

type Rally struct {
	Hits   int
	Missed bool
}

type RallySystem struct {
	Rally ecs.Singleton[Rally]
}

func (s *RallySystem) Execute(frame *ecs.UpdateFrame) {
	rally := s.Rally.Get()
	if !rally.Missed {
		rally.Hits++
		return
	}

	fmt.Printf("tick %d: rally over after %d hits\n", frame.Tick, rally.Hits)
	frame.Commands.Defer(func() {
		fmt.Println("new rally")
		*rally = Rally{}
	})
}

type AnnounceSystem struct {
	Rally ecs.Singleton[Rally]
}

func (s *AnnounceSystem) Execute(frame *ecs.UpdateFrame) {
	fmt.Printf("tick %d: %d hits\n", frame.Tick, s.Rally.Get().Hits)
}

// ExampleCommands demonstrates deferring work to the end of a tick. Every
// system of the tick sees the same state; the deferred reset only runs once
// all of them are done.
func ExampleCommands() {
	storage := ecs.NewStorage()
	rally := ecs.NewSingleton[Rally](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&RallySystem{})
	scheduler.Register(&AnnounceSystem{})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	rally.Get().Missed = true
	scheduler.Once(1.0)
	scheduler.Once(1.0)

	// Output:
	// tick 1: 1 hits
	// tick 2: 2 hits
	// tick 3: rally over after 2 hits
	// tick 3: 2 hits
	// new rally
	// tick 4: 1 hits
}

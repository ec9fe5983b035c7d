package ecs_test

import (
	"fmt"

	"github.com/plus3/pong/ecs"
)

type MatchRules struct {
	Players  int
	MaxSpeed int
}

type Scoreboard struct {
	Left, Right int
}

// ExampleNewSingleton demonstrates creating and accessing singletons.
// Singletons hold state shared by every system of a scheduler, such as the
// game state, tuning, or the devices the systems talk to.
func ExampleNewSingleton() {
	storage := ecs.NewStorage()

	// Create singleton with initializer
	rules := ecs.NewSingleton[MatchRules](storage, MatchRules{
		Players:  2,
		MaxSpeed: 3,
	})

	fmt.Printf("Rules: %d players, max speed %d\n", rules.Get().Players, rules.Get().MaxSpeed)

	// Modify the singleton
	rules.Get().MaxSpeed = 5
	fmt.Printf("Updated max speed: %d\n", rules.Get().MaxSpeed)

	// Create another reference to the same singleton
	sameRules := ecs.NewSingleton[MatchRules](storage)
	fmt.Printf("Same rules: max speed %d\n", sameRules.Get().MaxSpeed)

	// Output:
	// Rules: 2 players, max speed 3
	// Updated max speed: 5
	// Same rules: max speed 5
}

// ExampleSingleton_multipleReferences shows that multiple Singleton instances
// reference the same underlying data.
func ExampleSingleton_multipleReferences() {
	storage := ecs.NewStorage()

	score1 := ecs.NewSingleton[Scoreboard](storage)
	fmt.Printf("Score1: %d-%d\n", score1.Get().Left, score1.Get().Right)

	score1.Get().Left = 3

	score2 := ecs.NewSingleton[Scoreboard](storage)
	fmt.Printf("Score2: %d-%d\n", score2.Get().Left, score2.Get().Right)

	// Both references point to the same data
	score2.Get().Right = 7
	fmt.Printf("Score1 after Score2 update: %d-%d\n", score1.Get().Left, score1.Get().Right)

	// Output:
	// Score1: 0-0
	// Score2: 3-0
	// Score1 after Score2 update: 3-7
}

// ExampleStorage_ReadSingleton demonstrates the ReadSingleton API for
// convenient singleton access outside of systems.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage()

	ecs.NewSingleton[MatchRules](storage, MatchRules{
		Players:  2,
		MaxSpeed: 3,
	})

	// Read singleton using pointer pattern
	var rules *MatchRules
	if storage.ReadSingleton(&rules) {
		fmt.Printf("Match: %d players, speed %d\n", rules.Players, rules.MaxSpeed)
	}

	// Try reading non-existent singleton
	var score *Scoreboard
	if storage.ReadSingleton(&score) {
		fmt.Println("Scoreboard exists")
	} else {
		fmt.Println("Scoreboard not found")
	}

	// Output:
	// Match: 2 players, speed 3
	// Scoreboard not found
}

// Command pong-soak runs the game core headless for many ticks with
// wandering paddles and prints a report of what happened.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pong/config"
	"github.com/plus3/pong/pong"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	ticks := flag.Int("ticks", 100000, "The number of ticks to run.")
	seed := flag.Uint64("seed", 1, "Seed for the wandering paddles and serves.")
	step := flag.Int("step", 2, "The most rows a paddle moves per tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting pong soak test...")

	court := cfg.Court()
	wander := pong.NewWanderInput(*seed, court, *step)

	opts := cfg.Options()
	opts.Input = wander
	opts.Entropy = wander
	opts.Buzzer = pong.MuteBuzzer{}
	machine := pong.NewMachine(opts)

	report := &Report{
		Ticks:          *ticks,
		Seed:           *seed,
		Step:           *step,
		MaxSpeed:       court.MaxSpeed,
		AccelDivisor:   court.AccelDivisor,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0, *ticks),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d ticks...\n", *ticks)
	startTime := time.Now()
	for i := 0; i < *ticks; i++ {
		tickStart := time.Now()
		snapshot := machine.Tick()
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))

		if !inBounds(court, snapshot) {
			if report.OutOfBounds == 0 {
				log.Printf("Ball left the court at tick %d: (%d, %d)", snapshot.Tick, snapshot.BallX, snapshot.BallY)
			}
			report.OutOfBounds++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	state := machine.State()
	report.Counters = state.Counters
	report.Score1 = state.Score.Of(pong.Player1)
	report.Score2 = state.Score.Of(pong.Player2)
	report.Scheduler = machine.Stats()

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.OutOfBounds > 0 {
		os.Exit(1)
	}
}

func inBounds(court pong.Court, s pong.Snapshot) bool {
	return s.BallX >= court.BallMinX() && s.BallX <= court.BallMaxX() &&
		s.BallY >= court.BallMinY() && s.BallY <= court.BallMaxY()
}

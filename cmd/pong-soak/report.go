package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
)

type Report struct {
	// Configuration
	Ticks        int
	Seed         uint64
	Step         int
	MaxSpeed     int
	AccelDivisor int

	// Game results
	Counters    pong.Counters
	Score1      int
	Score2      int
	OutOfBounds int

	// Performance results
	TotalTime      time.Duration
	TickTime       Stats
	Scheduler      *ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Pong Soak Report

## Configuration
- **Ticks:** {{.Ticks}}
- **Seed:** {{.Seed}}
- **Paddle Step:** {{.Step}}
- **Max Speed:** {{.MaxSpeed}}
- **Accel Divisor:** {{.AccelDivisor}}

## Game
- **Score:** {{.Score1}} - {{.Score2}}
- **Serves:** {{.Counters.Serves}}
- **Goals:** {{.Counters.Goals}}
- **Paddle Hits:** {{.Counters.PaddleHits}}
- **Wall Bounces:** {{.Counters.WallBounces}}
- **Stalled Advances:** {{.Counters.Stalls}}
- **Ticks Out Of Bounds:** {{.OutOfBounds}}

## Performance Results
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
{{with .Scheduler}}
## Systems ({{.Ticks}} scheduler ticks, flush {{.FlushDuration}})
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}{{end}}
## Memory Usage (Raw Bytes)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Ticks:    500,
		Seed:     7,
		Counters: pong.Counters{Serves: 4, Goals: 3, PaddleHits: 11},
		Score1:   2,
		Score2:   1,
		Scheduler: &ecs.SchedulerStats{
			Ticks:   500,
			Systems: []ecs.SystemStats{{Name: "BallSystem", AvgDuration: time.Microsecond}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "- **Ticks:** 500")
	assert.Contains(t, out, "- **Score:** 2 - 1")
	assert.Contains(t, out, "- **Goals:** 3")
	assert.Contains(t, out, "- **Paddle Hits:** 11")
	assert.Contains(t, out, "- BallSystem: avg 1µs, max 0s")
	assert.NotContains(t, out, "GC Pause")
}

func TestInBounds(t *testing.T) {
	court := pong.DefaultCourt()

	assert.True(t, inBounds(court, pong.Snapshot{BallX: 1, BallY: 46}))
	assert.True(t, inBounds(court, pong.Snapshot{BallX: 82, BallY: 1}))
	assert.False(t, inBounds(court, pong.Snapshot{BallX: 0, BallY: 24}))
	assert.False(t, inBounds(court, pong.Snapshot{BallX: 42, BallY: 47}))
}

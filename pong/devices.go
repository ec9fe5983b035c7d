package pong

import (
	"math/rand/v2"
	"sync"
	"time"
)

// InputSampler reads where the players hold their paddles. Readings are
// already mapped to paddle top rows; the machine clamps them anyway.
type InputSampler interface {
	ReadPaddle(player Player) int
}

// Renderer draws one tick of the game.
type Renderer interface {
	Render(snapshot Snapshot)
}

// Splasher is implemented by renderers that can show a startup image.
type Splasher interface {
	Splash(d time.Duration)
}

// Buzzer plays a tone, blocking for its whole duration.
type Buzzer interface {
	PlayTone(d time.Duration)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Snapshot)

func (f RenderFunc) Render(s Snapshot) {
	if f != nil {
		f(s)
	}
}

// Renderers fans a snapshot out to several renderers in order.
type Renderers []Renderer

func (rs Renderers) Render(s Snapshot) {
	for _, r := range rs {
		r.Render(s)
	}
}

// Splash forwards to every renderer that can show a splash image.
func (rs Renderers) Splash(d time.Duration) {
	for _, r := range rs {
		if s, ok := r.(Splasher); ok {
			s.Splash(d)
		}
	}
}

// SleepBuzzer stands in for a piezo speaker: it spends the tone's duration
// without making a sound.
type SleepBuzzer struct{}

func (SleepBuzzer) PlayTone(d time.Duration) { time.Sleep(d) }

// MuteBuzzer returns immediately.
type MuteBuzzer struct{}

func (MuteBuzzer) PlayTone(time.Duration) {}

// MapReading linearly maps a raw sensor reading in [0, rawMax] onto
// [0, span]. Readings above rawMax are treated as rawMax.
func MapReading(raw, rawMax, span int) int {
	if rawMax <= 0 {
		return 0
	}
	if raw > rawMax {
		raw = rawMax
	}
	if raw < 0 {
		raw = 0
	}
	return raw * span / rawMax
}

// AnalogInput turns raw potentiometer readings into paddle rows. Player 1's
// dial sits on the opposite side of the table, so its reading is reversed.
type AnalogInput struct {
	Read   func(Player) int
	RawMax int
	Court  Court
}

func (a AnalogInput) ReadPaddle(p Player) int {
	raw := a.Read(p)
	if raw > a.RawMax {
		raw = a.RawMax
	}
	if p == Player1 {
		raw = a.RawMax - raw
	}
	return MapReading(raw, a.RawMax, a.Court.PaddleTravel())
}

// ScriptedInput replays fixed paddle rows, one per tick. Once a player's
// script runs out its last row repeats; an empty script reads 0.
type ScriptedInput struct {
	Rows [2][]int
	next [2]int
}

func (s *ScriptedInput) ReadPaddle(p Player) int {
	rows := s.Rows[p]
	if len(rows) == 0 {
		return 0
	}
	i := s.next[p]
	if i >= len(rows) {
		return rows[len(rows)-1]
	}
	s.next[p]++
	return rows[i]
}

// WanderInput drifts both paddles toward randomly chosen rows. It is safe for
// concurrent use.
type WanderInput struct {
	mu     sync.Mutex
	rng    *rand.Rand
	court  Court
	top    [2]int
	target [2]int
	step   int
}

// NewWanderInput creates a wandering sampler moving at most step rows per read.
func NewWanderInput(seed uint64, court Court, step int) *WanderInput {
	if step < 1 {
		step = 1
	}
	w := &WanderInput{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		court: court,
		step:  step,
	}
	for p := range w.top {
		w.top[p] = court.PaddleTravel() / 2
		w.target[p] = w.top[p]
	}
	return w
}

func (w *WanderInput) ReadPaddle(p Player) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.top[p] == w.target[p] {
		w.target[p] = w.rng.IntN(w.court.PaddleTravel() + 1)
	}

	delta := w.target[p] - w.top[p]
	if delta > w.step {
		delta = w.step
	} else if delta < -w.step {
		delta = -w.step
	}
	w.top[p] += delta
	return w.top[p]
}

// ReadEntropy mixes the wanderer's own randomness into serve seeds.
func (w *WanderInput) ReadEntropy() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rng.Uint64()
}

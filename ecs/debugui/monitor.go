package debugui

import (
	"reflect"
	"slices"
	"sync"

	"github.com/plus3/pong/ecs"
)

// Monitor carries values from the game goroutine to the UI goroutine. The
// game side publishes copies; the UI side only ever reads them.
type Monitor struct {
	mu      sync.RWMutex
	values  map[string]any
	names   []string
	stats   *ecs.SchedulerStats
	storage *ecs.StorageStats

	history []float32
	next    int
	filled  bool
}

// NewMonitor creates a monitor that remembers the last historyTicks tick times.
func NewMonitor(historyTicks int) *Monitor {
	if historyTicks < 1 {
		historyTicks = 1
	}
	return &Monitor{
		values:  make(map[string]any),
		history: make([]float32, historyTicks),
	}
}

// Publish stores value under name, replacing the previous one.
func (m *Monitor) Publish(name string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Value returns the latest value published under name.
func (m *Monitor) Value(name string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	return v, ok
}

// Names returns the published names in first-publish order.
func (m *Monitor) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.names)
}

// PublishStats stores scheduler and storage statistics and records the
// time since the previous tick.
func (m *Monitor) PublishStats(stats *ecs.SchedulerStats, storage *ecs.StorageStats, dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats = stats
	m.storage = storage
	m.history[m.next] = float32(dt * 1000.0)
	m.next = (m.next + 1) % len(m.history)
	if m.next == 0 {
		m.filled = true
	}
}

// Stats returns the latest published statistics, or nils before the first tick.
func (m *Monitor) Stats() (*ecs.SchedulerStats, *ecs.StorageStats) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats, m.storage
}

// TickHistory returns the recorded tick times in milliseconds, oldest first.
func (m *Monitor) TickHistory() []float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.filled {
		return slices.Clone(m.history[:m.next])
	}
	out := make([]float32, 0, len(m.history))
	out = append(out, m.history[m.next:]...)
	return append(out, m.history[:m.next]...)
}

// WatchSystem publishes a copy of the singleton T every tick.
type WatchSystem[T any] struct {
	Value   ecs.Singleton[T]
	Monitor *Monitor
	Name    string
}

// Watch returns a system publishing T under its type name.
func Watch[T any](monitor *Monitor) *WatchSystem[T] {
	return &WatchSystem[T]{
		Monitor: monitor,
		Name:    reflect.TypeFor[T]().String(),
	}
}

func (w *WatchSystem[T]) Execute(frame *ecs.UpdateFrame) {
	if v := w.Value.Get(); v != nil {
		w.Monitor.Publish(w.Name, *v)
	}
}

// StatsSystem publishes scheduler and storage statistics every tick.
type StatsSystem struct {
	Monitor *Monitor
	Stats   func() *ecs.SchedulerStats
}

func (s *StatsSystem) Execute(frame *ecs.UpdateFrame) {
	s.Monitor.PublishStats(s.Stats(), frame.Storage.CollectStats(), frame.DeltaTime)
}

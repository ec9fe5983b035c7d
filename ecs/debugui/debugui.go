// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Windows are listed in an ImguiWindows singleton and drawn by ImguiSystem on
// the UI scheduler. Values from a scheduler running on another goroutine
// reach the UI through a Monitor.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiWindows is a singleton listing the windows drawn every UI frame, in order.
type ImguiWindows struct {
	Items []ImguiItem
}

// Add appends a window.
func (w *ImguiWindows) Add(render func()) {
	w.Items = append(w.Items, ImguiItem{Render: render})
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every listed window.
// It also updates the ImguiInputState singleton with current input capture state.
type ImguiSystem struct {
	Windows    ecs.Singleton[ImguiWindows]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Windows.Get().Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install adds the performance and inspector windows for monitor to the
// storage's window list.
func Install(storage *ecs.Storage, monitor *Monitor) {
	ecs.NewSingleton[ImguiInputState](storage)
	windows := ecs.NewSingleton[ImguiWindows](storage).Get()

	perf := NewPerformanceWindow(monitor)
	inspector := NewInspector(monitor)
	windows.Add(perf.Render)
	windows.Add(inspector.Render)
}

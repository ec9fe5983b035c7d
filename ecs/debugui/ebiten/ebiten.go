// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay draws the debug windows on top of an ebiten game. It runs its own
// scheduler on the ebiten goroutine, one pass per Update.
type Overlay struct {
	storage      *ecs.Storage
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[ImguiBackend]
}

// NewOverlay creates the ImGui backend and installs the windows for monitor.
func NewOverlay(title string, width, height int, monitor *debugui.Monitor) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	storage := ecs.NewStorage()
	ecs.NewSingleton[ImguiBackend](storage, ImguiBackend{EbitenBackend: backend})
	debugui.Install(storage, monitor)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	return &Overlay{
		storage:      storage,
		scheduler:    scheduler,
		imguiBackend: ecs.NewSingleton[ImguiBackend](storage),
	}
}

// Storage exposes the overlay's storage so callers can add windows.
func (o *Overlay) Storage() *ecs.Storage {
	return o.storage
}

func (o *Overlay) Update() {
	o.imguiBackend.Get().BeginFrame()
	o.scheduler.Once(1.0 / float64(ebiten.TPS()))
	o.imguiBackend.Get().EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.imguiBackend.Get().Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
}

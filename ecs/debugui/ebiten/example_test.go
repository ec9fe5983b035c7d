package ebiten_test

import (
	"context"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/ecs/debugui"
	debugui_ebiten "github.com/plus3/pong/ecs/debugui/ebiten"
)

// Rally is a value owned by the game goroutine.
type Rally struct {
	Hits int
}

// Game implements ebiten.Game and draws the overlay on top.
type Game struct {
	overlay *debugui_ebiten.Overlay
}

func (g *Game) Update() error {
	g.overlay.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	monitor := debugui.NewMonitor(120)

	// The game scheduler publishes into the monitor.
	storage := ecs.NewStorage()
	ecs.NewSingleton[Rally](storage)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(debugui.Watch[Rally](monitor))
	scheduler.Register(&debugui.StatsSystem{Monitor: monitor, Stats: scheduler.GetStats})
	go scheduler.Run(context.Background(), time.Second/60)

	overlay := debugui_ebiten.NewOverlay("Debug Overlay Example", 1280, 720, monitor)

	// Extra windows go into the overlay's window list.
	windows := ecs.NewSingleton[debugui.ImguiWindows](overlay.Storage()).Get()
	windows.Add(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from ECS!")
		imgui.End()
	})

	if err := ebiten.RunGame(&Game{overlay: overlay}); err != nil {
		panic(err)
	}
}

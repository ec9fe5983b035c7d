// Package display hosts the game in a desktop window using ebiten. The game
// core keeps running on its own goroutine; the window only reads published
// snapshots and feeds keyboard dials back in.
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/pong"
)

// Overlay is drawn on top of the court, e.g. a debug UI.
type Overlay interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game implements ebiten.Game.
type Game struct {
	Screen   *Screen
	Keyboard *Keyboard
	Overlay  Overlay
}

// NewGame creates a window host for court.
func NewGame(court pong.Court) *Game {
	return &Game{
		Screen:   NewScreen(court),
		Keyboard: NewKeyboard(court),
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.Keyboard.Poll()
	if g.Overlay != nil {
		g.Overlay.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Screen.Draw(screen)
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window scale times the court size and blocks until it closes.
func Run(g *Game, title string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	court := g.Screen.court
	ebiten.SetWindowSize(court.Width*scale, court.Height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

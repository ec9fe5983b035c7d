package display

import (
	"image/color"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pong/pong"
)

var (
	// Lit is the color of a lit LCD pixel.
	Lit = color.RGBA{R: 20, G: 28, B: 20, A: 255}
	// Unlit is the LCD background.
	Unlit = color.RGBA{R: 155, G: 188, B: 15, A: 255}
)

// Screen is a pong.Renderer backed by an ebiten image. Render and Splash may
// be called from the game goroutine while ebiten calls Draw from its own.
type Screen struct {
	court    pong.Court
	snapshot atomic.Pointer[pong.Snapshot]
	splash   atomic.Int64

	frame  *Frame
	canvas *ebiten.Image
	pixels []byte
}

// NewScreen creates a screen for the given court.
func NewScreen(court pong.Court) *Screen {
	return &Screen{
		court:  court,
		frame:  NewFrame(court.Width, court.Height),
		pixels: make([]byte, 4*court.Width*court.Height),
	}
}

// Render publishes the snapshot for the next Draw.
func (s *Screen) Render(snapshot pong.Snapshot) {
	s.snapshot.Store(&snapshot)
}

// Splash shows the title screen for d, or until the first snapshot arrives.
func (s *Screen) Splash(d time.Duration) {
	s.splash.Store(time.Now().Add(d).UnixNano())
}

// Snapshot returns the latest published snapshot.
func (s *Screen) Snapshot() (pong.Snapshot, bool) {
	snap := s.snapshot.Load()
	if snap == nil {
		return pong.Snapshot{}, false
	}
	return *snap, true
}

func (s *Screen) splashing() bool {
	return s.snapshot.Load() == nil && time.Now().UnixNano() < s.splash.Load()
}

// Draw renders the court scaled to fit dst.
func (s *Screen) Draw(dst *ebiten.Image) {
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(s.court.Width, s.court.Height)
	}

	if s.splashing() {
		s.drawSplash(s.canvas)
	} else {
		snap, _ := s.Snapshot()
		Rasterize(s.frame, s.court, snap)
		s.blit(s.canvas)
	}

	dst.Fill(color.Black)
	bounds := dst.Bounds()
	scale := min(
		float64(bounds.Dx())/float64(s.court.Width),
		float64(bounds.Dy())/float64(s.court.Height),
	)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(
		(float64(bounds.Dx())-scale*float64(s.court.Width))/2,
		(float64(bounds.Dy())-scale*float64(s.court.Height))/2,
	)
	dst.DrawImage(s.canvas, opts)
}

func (s *Screen) blit(dst *ebiten.Image) {
	for i, on := range s.frame.Pix {
		c := Unlit
		if on {
			c = Lit
		}
		s.pixels[4*i+0] = c.R
		s.pixels[4*i+1] = c.G
		s.pixels[4*i+2] = c.B
		s.pixels[4*i+3] = c.A
	}
	dst.WritePixels(s.pixels)
}

func (s *Screen) drawSplash(dst *ebiten.Image) {
	c := s.court
	w, h := float32(c.Width), float32(c.Height)

	dst.Fill(Unlit)
	vector.StrokeRect(dst, 1, 1, w-2, h-2, 1, Lit, false)
	vector.DrawFilledRect(dst, float32(c.PaddleLeft(pong.Player1))+2, h/2-float32(c.PaddleHeight)/2,
		float32(c.PaddleWidth), float32(c.PaddleHeight), Lit, false)
	vector.DrawFilledRect(dst, float32(c.PaddleLeft(pong.Player2))-2, h/2-float32(c.PaddleHeight)/2,
		float32(c.PaddleWidth), float32(c.PaddleHeight), Lit, false)
	vector.DrawFilledCircle(dst, w/2, h/2, float32(c.BallRadius)+1, Lit, false)
}

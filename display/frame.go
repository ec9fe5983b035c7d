package display

import (
	"strings"

	"github.com/plus3/pong/font"
	"github.com/plus3/pong/pong"
)

// Frame is a monochrome framebuffer the size of the court.
type Frame struct {
	Width, Height int
	Pix           []bool
}

// NewFrame creates a blank frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]bool, width*height),
	}
}

// Set lights the pixel at (x, y). Pixels off the frame are ignored.
func (f *Frame) Set(x, y int) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = true
}

// At reports whether the pixel at (x, y) is lit.
func (f *Frame) At(x, y int) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	return f.Pix[y*f.Width+x]
}

// Clear turns every pixel off.
func (f *Frame) Clear() {
	clear(f.Pix)
}

// Invert flips every pixel.
func (f *Frame) Invert() {
	for i := range f.Pix {
		f.Pix[i] = !f.Pix[i]
	}
}

// FillRect lights the w by h rectangle with its top-left corner at (x, y).
func (f *Frame) FillRect(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			f.Set(x+dx, y+dy)
		}
	}
}

// FillCircle lights a disc of radius r around (cx, cy), matching the shape
// small LCD graphics libraries produce for filled circles.
func (f *Frame) FillCircle(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r+r {
				f.Set(cx+dx, cy+dy)
			}
		}
	}
}

// Text draws s in the numeral font with its top-left corner at (x, y).
func (f *Frame) Text(s string, x, y int) {
	for _, p := range font.Pixels(s, x, y) {
		f.Set(p.X, p.Y)
	}
}

// String renders the frame as text, one line per row.
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Rasterize draws one tick of the game into f: the dashed net, both
// scoreboards, both paddles and the ball. A goal frame is drawn inverted.
func Rasterize(f *Frame, court pong.Court, s pong.Snapshot) {
	f.Clear()

	cx := court.CenterX()
	dash := max(court.NetDash, 1)
	for y := 0; y < court.Height; y += dash {
		f.Set(cx, y)
	}

	score1 := font.Score(s.Score1)
	f.Text(score1, cx+1-court.ScoreDist-font.TextWidth(score1), 0)
	f.Text(font.Score(s.Score2), cx+court.ScoreDist, 0)

	for _, p := range []pong.Player{pong.Player1, pong.Player2} {
		f.FillRect(court.PaddleLeft(p), s.PaddleTop(p), court.PaddleWidth, court.PaddleHeight)
	}

	f.FillCircle(s.BallX, s.BallY, court.BallRadius)

	if s.Goal {
		f.Invert()
	}
}

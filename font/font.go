// Package font holds the numeral font used for the scoreboards. Glyphs are
// six columns wide and eight rows tall; each column is one byte with bit 0
// at the top row.
package font

import "strconv"

const (
	// GlyphWidth is the advance of one glyph in pixels.
	GlyphWidth = 6
	// GlyphHeight is the height of one glyph in pixels.
	GlyphHeight = 8
)

// Glyph is one character as column bytes, left to right.
type Glyph [GlyphWidth]byte

var digits = [10]Glyph{
	{0x3e, 0x61, 0x51, 0x49, 0x45, 0x3e},
	{0x44, 0x42, 0x7f, 0x40, 0x40, 0x00},
	{0x62, 0x51, 0x51, 0x49, 0x49, 0x66},
	{0x22, 0x41, 0x49, 0x49, 0x49, 0x36},
	{0x18, 0x14, 0x52, 0x7f, 0x50, 0x10},
	{0x27, 0x45, 0x45, 0x45, 0x45, 0x39},
	{0x3c, 0x4a, 0x49, 0x49, 0x49, 0x30},
	{0x03, 0x01, 0x71, 0x09, 0x05, 0x03},
	{0x36, 0x49, 0x49, 0x49, 0x49, 0x36},
	{0x06, 0x49, 0x49, 0x49, 0x29, 0x1e},
}

// Lookup returns the glyph for r. Only '0' through '9' are in the font.
func Lookup(r rune) (Glyph, bool) {
	if r < '0' || r > '9' {
		return Glyph{}, false
	}
	return digits[r-'0'], true
}

// On reports whether the pixel at column x, row y of the glyph is lit.
func (g Glyph) On(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g[x]&(1<<y) != 0
}

// Width returns the pixel width of n glyphs.
func Width(n int) int {
	return GlyphWidth * n
}

// TextWidth returns the pixel width of s.
func TextWidth(s string) int {
	return Width(len([]rune(s)))
}

// Pixel is a lit pixel relative to the text origin.
type Pixel struct {
	X, Y int
}

// Pixels returns the lit pixels of s drawn with its top-left corner at
// (x, y). Characters outside the font advance without drawing.
func Pixels(s string, x, y int) []Pixel {
	var out []Pixel
	for i, r := range []rune(s) {
		g, ok := Lookup(r)
		if !ok {
			continue
		}
		left := x + i*GlyphWidth
		for col := 0; col < GlyphWidth; col++ {
			for row := 0; row < GlyphHeight; row++ {
				if g.On(col, row) {
					out = append(out, Pixel{X: left + col, Y: y + row})
				}
			}
		}
	}
	return out
}

// Score formats a score for display.
func Score(points int) string {
	return strconv.Itoa(points)
}

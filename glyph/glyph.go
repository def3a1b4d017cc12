// Package glyph normalizes raw glyphs into a comparable form and classifies
// them against a table of known shapes.
package glyph

import (
	"fmt"
	"strings"

	"github.com/wudi/glyphscan/raster"
	"github.com/wudi/glyphscan/segment"
)

// Glyph is the canonical form of a glyph: its pixels in row-major scan order
// and its width. Height is implied by len(Pixels)/Width.
type Glyph struct {
	Width  int
	Pixels []raster.Pixel
}

// Height returns the number of pixel rows.
func (g Glyph) Height() int {
	if g.Width == 0 {
		return 0
	}
	return len(g.Pixels) / g.Width
}

// Valid reports whether the pixel count is a whole number of rows.
func (g Glyph) Valid() bool {
	return g.Width > 0 && len(g.Pixels)%g.Width == 0
}

// Clone returns a copy that shares no memory with g.
func (g Glyph) Clone() Glyph {
	return Glyph{Width: g.Width, Pixels: append([]raster.Pixel(nil), g.Pixels...)}
}

// Rows renders each pixel row as '#' for On and ' ' for Off.
func (g Glyph) Rows() []string {
	if !g.Valid() {
		return nil
	}
	rows := make([]string, 0, g.Height())
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.Reset()
		for _, p := range g.Pixels[y*g.Width : (y+1)*g.Width] {
			sb.WriteString(p.String())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func (g Glyph) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Normalize transposes a raw glyph's columns into row-major order.
func Normalize(raw segment.Glyph) (Glyph, error) {
	if len(raw) == 0 {
		return Glyph{}, &raster.ShapeError{Op: "normalize", Reason: "glyph has no columns"}
	}
	height := len(raw[0])
	for x, col := range raw {
		if len(col) != height {
			return Glyph{}, &raster.ShapeError{
				Op:     "normalize",
				Reason: fmt.Sprintf("column %d has height %d, want %d", x, len(col), height),
			}
		}
	}
	pixels := make([]raster.Pixel, 0, height*len(raw))
	for y := 0; y < height; y++ {
		for _, col := range raw {
			pixels = append(pixels, col[y])
		}
	}
	return Glyph{Width: len(raw), Pixels: pixels}, nil
}

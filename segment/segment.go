// Package segment splits a binarized grid into lines and each line into raw
// glyphs.
package segment

import "github.com/wudi/glyphscan/raster"

// Glyph is a raw glyph: its columns, left to right, each spanning the full
// height of the line it was cut from.
type Glyph [][]raster.Pixel

// Width returns the number of columns.
func (g Glyph) Width() int { return len(g) }

// Lines splits g on blank rows. Separator rows are dropped and runs of blank
// rows never produce empty lines. The returned lines share g's rows.
func Lines(g raster.Grid) []raster.Grid {
	var (
		lines []raster.Grid
		start = -1
	)
	for y, row := range g {
		if raster.IsBlank(row) {
			if start >= 0 {
				lines = append(lines, g[start:y])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = y
		}
	}
	if start >= 0 {
		lines = append(lines, g[start:])
	}
	return lines
}

// Column copies column x of line.
func Column(line raster.Grid, x int) []raster.Pixel {
	col := make([]raster.Pixel, len(line))
	for y, row := range line {
		col[y] = row[x]
	}
	return col
}

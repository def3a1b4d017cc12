package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/glyphscan/raster"
)

const (
	o = raster.Off
	X = raster.On
)

// line builds a grid from column descriptions, each a string of '#' and ' '
// read top to bottom.
func line(cols ...string) raster.Grid {
	h := len(cols[0])
	g := make(raster.Grid, h)
	for y := range g {
		g[y] = make([]raster.Pixel, len(cols))
		for x, c := range cols {
			if c[y] == '#' {
				g[y][x] = X
			}
		}
	}
	return g
}

func TestLinesSplitsOnBlankRows(t *testing.T) {
	a := []raster.Pixel{X, o, X}
	b := []raster.Pixel{o, X, o}
	blank := raster.Blank(3)
	g := raster.Grid{blank, a, a, blank, blank, b, blank}

	lines := Lines(g)
	require.Len(t, lines, 2)
	assert.Equal(t, raster.Grid{a, a}, lines[0])
	assert.Equal(t, raster.Grid{b}, lines[1])
}

func TestLinesEdgeCases(t *testing.T) {
	assert.Empty(t, Lines(nil))
	assert.Empty(t, Lines(raster.Grid{raster.Blank(2), raster.Blank(2)}))

	a := []raster.Pixel{X}
	lines := Lines(raster.Grid{a, a})
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 2)
}

func TestGlyphsSingleGapIsAbsorbed(t *testing.T) {
	glyphs := Glyphs(line("##", "  ", "##"))
	require.Len(t, glyphs, 1)
	assert.Equal(t, 3, glyphs[0].Width())
	assert.Equal(t, []raster.Pixel{o, o}, glyphs[0][1])
}

func TestGlyphsDoubleGapSeparates(t *testing.T) {
	glyphs := Glyphs(line("##", "  ", "  ", "##"))
	require.Len(t, glyphs, 2)
	assert.Equal(t, 1, glyphs[0].Width())
	assert.Equal(t, 1, glyphs[1].Width())
}

func TestGlyphsLongGapSeparates(t *testing.T) {
	glyphs := Glyphs(line("#", " ", " ", " ", " ", "#", " ", "#"))
	require.Len(t, glyphs, 2)
	assert.Equal(t, 1, glyphs[0].Width())
	assert.Equal(t, 3, glyphs[1].Width())
}

func TestGlyphsLeadingAndTrailingBlanks(t *testing.T) {
	glyphs := Glyphs(line(" ", "#", " "))
	require.Len(t, glyphs, 1)
	assert.Equal(t, Glyph{{X}}, glyphs[0])

	glyphs = Glyphs(line(" ", " ", "#", "#", " ", " ", " "))
	require.Len(t, glyphs, 1)
	assert.Equal(t, 2, glyphs[0].Width())
}

func TestGlyphsEmptyLine(t *testing.T) {
	assert.Empty(t, Glyphs(nil))
	assert.Empty(t, Glyphs(line("  ", "  ")))
}

func TestColumn(t *testing.T) {
	g := line("# ", " #")
	assert.Equal(t, []raster.Pixel{X, o}, Column(g, 0))
	assert.Equal(t, []raster.Pixel{o, X}, Column(g, 1))
}

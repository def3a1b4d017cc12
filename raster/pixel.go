package raster

// Pixel is a binarized sample.
type Pixel uint8

const (
	Off Pixel = iota
	On
)

func (p Pixel) String() string {
	if p == On {
		return "#"
	}
	return " "
}

// Grid is a rectangular, row-major matrix of pixels.
type Grid [][]Pixel

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the length of the first row, or zero for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Validate reports a *ShapeError when the rows are not all the same length.
func (g Grid) Validate() error {
	w := g.Width()
	for y, row := range g {
		if len(row) != w {
			return shapeErrorf("validate grid", "row %d has width %d, want %d", y, len(row), w)
		}
	}
	return nil
}

// IsBlank reports whether every pixel in the run is Off. An empty run is blank.
func IsBlank(run []Pixel) bool {
	for _, p := range run {
		if p != Off {
			return false
		}
	}
	return true
}

// Blank returns a run of n Off pixels.
func Blank(n int) []Pixel {
	return make([]Pixel, n)
}

package raster

// DefaultScale is the number of source pixels per glyph pixel edge.
const DefaultScale = 4

const (
	black uint8 = 0
	white uint8 = 255
)

// Binarize samples the top-left pixel of every scale×scale block of src.
// Black maps to Off and white to On; any other value aborts with a
// *FormatError. Trailing partial blocks are sampled like full ones.
func Binarize(src Gray, scale int) (Grid, error) {
	if scale <= 0 {
		return nil, shapeErrorf("binarize", "scale must be positive, got %d", scale)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	rows := (src.Height + scale - 1) / scale
	cols := (src.Width + scale - 1) / scale
	grid := make(Grid, 0, rows)
	for y := 0; y < src.Height; y += scale {
		row := make([]Pixel, 0, cols)
		for x := 0; x < src.Width; x += scale {
			switch v := src.At(x, y); v {
			case black:
				row = append(row, Off)
			case white:
				row = append(row, On)
			default:
				return nil, &FormatError{X: x, Y: y, Value: v}
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

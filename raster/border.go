package raster

// DefaultBorder is the frame thickness, in grid pixels, on every edge.
const DefaultBorder = 2

// StripBorder removes thickness rows from the top and bottom of g and then
// thickness columns from both ends of every remaining row. The grid is
// modified in place; on error it is left untouched.
func StripBorder(g *Grid, thickness int) error {
	if thickness < 0 {
		return shapeErrorf("strip border", "negative thickness %d", thickness)
	}
	rows := *g
	if len(rows) < 2*thickness {
		return shapeErrorf("strip border", "need at least %d rows, got %d", 2*thickness, len(rows))
	}
	rows = rows[thickness : len(rows)-thickness]
	for i, row := range rows {
		if len(row) < 2*thickness {
			return shapeErrorf("strip border", "row %d: need at least %d columns, got %d", i+thickness, 2*thickness, len(row))
		}
	}
	for i, row := range rows {
		rows[i] = row[thickness : len(row)-thickness]
	}
	*g = rows
	return nil
}

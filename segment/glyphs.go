package segment

import "github.com/wudi/glyphscan/raster"

type scanState uint8

const (
	// idleAfterBlank: the previous column was blank (or the scan has not
	// started). A pending group may still continue past a single gap.
	idleAfterBlank scanState = iota
	// active: the previous column carried ink.
	active
)

// scanner cuts a line into glyphs one column at a time. A single blank
// column inside a glyph is held back until the next column shows whether it
// was an internal gap or the start of a separator.
type scanner struct {
	height int
	state  scanState
	group  Glyph
	glyphs []Glyph
}

func (s *scanner) blank() {
	if s.state == idleAfterBlank && len(s.group) > 0 {
		s.flush()
	}
	s.state = idleAfterBlank
}

func (s *scanner) ink(col []raster.Pixel) {
	if s.state == idleAfterBlank && len(s.group) > 0 {
		s.group = append(s.group, raster.Blank(s.height))
	}
	s.group = append(s.group, col)
	s.state = active
}

func (s *scanner) flush() {
	if len(s.group) == 0 {
		return
	}
	s.glyphs = append(s.glyphs, s.group)
	s.group = nil
}

// Glyphs scans line left to right and returns its glyphs. Two or more
// consecutive blank columns separate glyphs; exactly one blank column between
// inked columns is kept inside the glyph as an all-Off column.
func Glyphs(line raster.Grid) []Glyph {
	s := scanner{height: line.Height(), state: idleAfterBlank}
	for x := 0; x < line.Width(); x++ {
		col := Column(line, x)
		if raster.IsBlank(col) {
			s.blank()
			continue
		}
		s.ink(col)
	}
	s.flush()
	return s.glyphs
}

package glyph

import (
	"errors"
	"fmt"

	"github.com/wudi/glyphscan/raster"
)

// ErrTable is returned for malformed symbol table definitions.
var ErrTable = errors.New("invalid symbol table")

type key struct {
	width  int
	pixels string
}

func keyOf(g Glyph) key {
	b := make([]byte, len(g.Pixels))
	for i, p := range g.Pixels {
		b[i] = byte(p)
	}
	return key{width: g.Width, pixels: string(b)}
}

// Table maps exact glyph shapes to symbols.
type Table struct {
	entries map[key]Symbol
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[key]Symbol)}
}

// Add registers sym for the exact shape of g, replacing any previous entry.
func (t *Table) Add(g Glyph, sym Symbol) error {
	if !g.Valid() {
		return fmt.Errorf("%w: %d pixels do not fill rows of width %d", ErrTable, len(g.Pixels), g.Width)
	}
	if sym.Kind == KindUnknown {
		return fmt.Errorf("%w: cannot register an unknown symbol", ErrTable)
	}
	if sym.Kind == KindDigit && sym.Digit > 9 {
		return fmt.Errorf("%w: digit %d out of range", ErrTable, sym.Digit)
	}
	sym.Glyph = Glyph{}
	t.entries[keyOf(g)] = sym
	return nil
}

// AddRows registers sym for a shape drawn as rows of '#' (or '1') for On and
// ' ' (or '0' or '.') for Off.
func (t *Table) AddRows(sym Symbol, rows ...string) error {
	g, err := parseRows(rows)
	if err != nil {
		return err
	}
	return t.Add(g, sym)
}

// Merge copies every entry of other into t, overriding shared shapes.
func (t *Table) Merge(other *Table) {
	for k, v := range other.entries {
		t.entries[k] = v
	}
}

// Len returns the number of registered shapes.
func (t *Table) Len() int { return len(t.entries) }

// Lookup classifies g. Shapes missing from the table come back as Unknown.
func (t *Table) Lookup(g Glyph) Symbol {
	if sym, ok := t.entries[keyOf(g)]; ok {
		return sym
	}
	return Unknown(g)
}

func parseRows(rows []string) (Glyph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Glyph{}, fmt.Errorf("%w: empty shape", ErrTable)
	}
	width := len(rows[0])
	g := Glyph{Width: width, Pixels: make([]raster.Pixel, 0, width*len(rows))}
	for y, row := range rows {
		if len(row) != width {
			return Glyph{}, fmt.Errorf("%w: row %d has width %d, want %d", ErrTable, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#', '1':
				g.Pixels = append(g.Pixels, raster.On)
			case ' ', '0', '.':
				g.Pixels = append(g.Pixels, raster.Off)
			default:
				return Glyph{}, fmt.Errorf("%w: row %d: unexpected %q", ErrTable, y, row[x])
			}
		}
	}
	return g, nil
}

var defaultShapes = []struct {
	sym  Symbol
	rows []string
}{
	{Digit(1), []string{"#", "#"}},
	{Digit(0), []string{" #", "# "}},
	{Digit(1), []string{" #", "##"}},
	{Digit(2), []string{" ##", "# #", "#  "}},
	{Digit(3), []string{" ##", "###", "#  "}},
	{Digit(4), []string{" ##", "#  ", "## "}},
	{Digit(5), []string{" ##", "## ", "## "}},
	{Digit(6), []string{" ##", "# #", "## "}},
	{Digit(7), []string{" ##", "###", "## "}},
	{Digit(8), []string{" ##", "#  ", "# #"}},
	{Ellipsis, []string{"####"}},
}

// DefaultTable returns a fresh copy of the built-in shapes.
func DefaultTable() *Table {
	t := NewTable()
	for _, s := range defaultShapes {
		if err := t.AddRows(s.sym, s.rows...); err != nil {
			panic(err)
		}
	}
	return t
}

var builtin = DefaultTable()

// Decode classifies g against the built-in table.
func Decode(g Glyph) Symbol {
	return builtin.Lookup(g)
}

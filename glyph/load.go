package glyph

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Symbols []tableEntry `yaml:"symbols"`
}

type tableEntry struct {
	Symbol string   `yaml:"symbol"`
	Rows   []string `yaml:"rows"`
}

// LoadTable reads a YAML symbol table:
//
//	symbols:
//	  - symbol: "9"
//	    rows: [" ##", "###", " ##"]
//	  - symbol: ellipsis
//	    rows: ["####"]
func LoadTable(r io.Reader) (*Table, error) {
	var f tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrTable, err)
	}
	t := NewTable()
	for i, e := range f.Symbols {
		sym, err := parseSymbol(e.Symbol)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := t.AddRows(sym, e.Rows...); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Symbol, err)
		}
	}
	return t, nil
}

func parseSymbol(s string) (Symbol, error) {
	switch s {
	case "ellipsis", "...":
		return Ellipsis, nil
	}
	d, err := strconv.ParseUint(s, 10, 8)
	if err != nil || d > 9 {
		return Symbol{}, fmt.Errorf("%w: unsupported symbol %q", ErrTable, s)
	}
	return Digit(uint8(d)), nil
}

// Package render presents decoded documents and intermediate grids.
package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/wudi/glyphscan/decoder"
	"github.com/wudi/glyphscan/glyph"
	"github.com/wudi/glyphscan/raster"
)

// LineText joins the transcript form of each symbol.
func LineText(syms []glyph.Symbol) string {
	var sb strings.Builder
	for _, s := range syms {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Transcript writes one line of text per decoded line.
func Transcript(w io.Writer, doc decoder.Document) error {
	bw := bufio.NewWriter(w)
	for _, line := range doc.Lines {
		bw.WriteString(LineText(line))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Pixels dumps a grid with '#' for On and ' ' for Off.
func Pixels(w io.Writer, g raster.Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range g {
		for _, p := range row {
			bw.WriteString(p.String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type jsonSymbol struct {
	Kind  string   `json:"kind"`
	Digit *uint8   `json:"digit,omitempty"`
	Width int      `json:"width,omitempty"`
	Rows  []string `json:"rows,omitempty"`
}

type jsonLine struct {
	Text    string       `json:"text"`
	Symbols []jsonSymbol `json:"symbols"`
}

type jsonDocument struct {
	Source  string     `json:"source,omitempty"`
	Lines   []jsonLine `json:"lines"`
	Unknown int        `json:"unknown"`
}

func toJSON(source string, doc decoder.Document) jsonDocument {
	out := jsonDocument{Source: source, Lines: make([]jsonLine, 0, len(doc.Lines))}
	for _, line := range doc.Lines {
		jl := jsonLine{Text: LineText(line), Symbols: make([]jsonSymbol, 0, len(line))}
		for _, s := range line {
			js := jsonSymbol{Kind: s.Kind.String()}
			switch s.Kind {
			case glyph.KindDigit:
				d := s.Digit
				js.Digit = &d
			case glyph.KindUnknown:
				js.Width = s.Glyph.Width
				js.Rows = s.Glyph.Rows()
				out.Unknown++
			}
			jl.Symbols = append(jl.Symbols, js)
		}
		out.Lines = append(out.Lines, jl)
	}
	return out
}

// JSON writes doc as an indented JSON object. Unknown symbols carry their
// pixel rows.
func JSON(w io.Writer, source string, doc decoder.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(source, doc)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

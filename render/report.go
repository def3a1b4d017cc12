package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/wudi/glyphscan/decoder"
)

// Markdown writes a report for doc: the transcript, then every unknown glyph
// drawn as a code block.
func Markdown(w io.Writer, source string, doc decoder.Document) error {
	var sb strings.Builder
	title := source
	if title == "" {
		title = "Decoded image"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "%d lines, %d symbols, %d unknown.\n\n", len(doc.Lines), doc.SymbolCount(), len(doc.Unknown()))

	sb.WriteString("## Transcript\n\n```\n")
	for _, line := range doc.Lines {
		sb.WriteString(LineText(line))
		sb.WriteByte('\n')
	}
	sb.WriteString("```\n")

	n := 0
	for i, line := range doc.Lines {
		for j, s := range line {
			if !s.IsUnknown() {
				continue
			}
			if n == 0 {
				sb.WriteString("\n## Unknown glyphs\n")
			}
			n++
			fmt.Fprintf(&sb, "\nLine %d, glyph %d (width %d):\n\n```\n", i+1, j+1, s.Glyph.Width)
			for _, row := range s.Glyph.Rows() {
				sb.WriteString(strings.ReplaceAll(row, " ", "."))
				sb.WriteByte('\n')
			}
			sb.WriteString("```\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// HTML renders the Markdown report to HTML using goldmark.
func HTML(w io.Writer, source string, doc decoder.Document) error {
	var md bytes.Buffer
	if err := Markdown(&md, source, doc); err != nil {
		return err
	}
	if err := goldmark.New().Convert(md.Bytes(), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

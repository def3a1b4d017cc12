package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/wudi/glyphscan/decoder"
	"github.com/wudi/glyphscan/imageio"
)

// GlyphEngine recognizes images with the fixed-table glyph decoder.
type GlyphEngine struct {
	dec *decoder.Decoder
}

// NewGlyphEngine wraps dec. A nil decoder uses the default format.
func NewGlyphEngine(dec *decoder.Decoder) *GlyphEngine {
	if dec == nil {
		dec = decoder.New()
	}
	return &GlyphEngine{dec: dec}
}

func (e *GlyphEngine) Name() string { return "glyph" }

// Recognize decodes a single image. Unrecognized glyphs appear as "?" in the
// text and are counted in Result.Unknown.
func (e *GlyphEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	img, _, err := imageio.DecodeBytes(in.Image)
	if err != nil {
		return Result{}, err
	}
	doc, err := e.dec.Decode(ctx, img)
	if err != nil {
		return Result{}, fmt.Errorf("decode %s: %w", in.ID, err)
	}
	return ResultFromDocument(in.ID, e.Name(), doc), nil
}

// ResultFromDocument converts a decoded document into an engine result.
func ResultFromDocument(id, engine string, doc decoder.Document) Result {
	res := Result{InputID: id, Engine: engine, Lines: make([]TextLine, 0, len(doc.Lines))}
	texts := make([]string, 0, len(doc.Lines))
	for _, syms := range doc.Lines {
		var sb strings.Builder
		for _, s := range syms {
			sb.WriteString(s.String())
			if s.IsUnknown() {
				res.Unknown++
			}
		}
		res.Lines = append(res.Lines, TextLine{Text: sb.String(), Symbols: syms})
		texts = append(texts, sb.String())
	}
	res.PlainText = strings.Join(texts, "\n")
	return res
}

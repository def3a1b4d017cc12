package ocr

import (
	"context"

	"github.com/wudi/glyphscan/glyph"
)

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatGIF  ImageFormat = "image/gif"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatBMP  ImageFormat = "image/bmp"
	ImageFormatTIFF ImageFormat = "image/tiff"
	ImageFormatWebP ImageFormat = "image/webp"
)

// Input encapsulates a single image submitted for recognition.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back in the
	// corresponding Result.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// Metadata allows callers to pass through engine-specific knobs without
	// hard-coding them into the API surface.
	Metadata map[string]string
}

// TextLine is one recognized line. Engines that classify glyphs fill Symbols;
// text-only engines leave it empty.
type TextLine struct {
	Text    string
	Symbols []glyph.Symbol
}

// Result captures recognition output for a single input image.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// Engine names the engine that produced the result.
	Engine string
	// PlainText contains the lines joined by newlines.
	PlainText string
	// Lines carries the per-line output, top to bottom.
	Lines []TextLine
	// Unknown counts glyphs the engine could not classify.
	Unknown int
}

// Engine is the simplest provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// BatchEngine handles multiple images in a single call, enabling providers that
// amortize setup costs.
type BatchEngine interface {
	Engine
	RecognizeBatch(ctx context.Context, inputs []Input) ([]Result, error)
}

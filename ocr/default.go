package ocr

import (
	"context"
	"fmt"

	"github.com/wudi/glyphscan/decoder"
)

var defaultEngine Engine = NewGlyphEngine(decoder.New())

// DefaultEngine returns the library's default engine (the glyph decoder with
// the default format).
func DefaultEngine() Engine {
	return defaultEngine
}

// SetDefaultEngine sets the library's default engine.
func SetDefaultEngine(engine Engine) {
	defaultEngine = engine
}

// RecognizeFiles reads each path into an input and invokes the provided
// engine. If the engine supports batch operation, it is used; otherwise calls
// are executed sequentially.
func RecognizeFiles(ctx context.Context, engine Engine, paths []string, opts ...InputOption) ([]Result, error) {
	inputs := make([]Input, 0, len(paths))
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		in, err := InputFromFile(path, opts...)
		if err != nil {
			return nil, fmt.Errorf("build input for %s: %w", path, err)
		}
		inputs = append(inputs, in)
	}
	return Recognize(ctx, engine, inputs)
}

// Recognize runs engine over inputs, batching when the engine supports it.
func Recognize(ctx context.Context, engine Engine, inputs []Input) ([]Result, error) {
	if b, ok := engine.(BatchEngine); ok {
		return b.RecognizeBatch(ctx, inputs)
	}
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := engine.Recognize(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", in.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

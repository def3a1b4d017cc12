// Package tesseract recognizes glyphscan inputs with Tesseract, for
// comparison against the fixed-table decoder.
package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/wudi/glyphscan/ocr"
)

// Engine implements ocr.Engine and ocr.BatchEngine using the gosseract client.
type Engine struct {
	clientFactory func() *gosseract.Client
}

// New constructs a Tesseract-backed engine.
func New() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize performs OCR on a single image input.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	c := e.clientFactory()
	defer c.Close()
	return e.recognizeWithClient(ctx, c, in)
}

// RecognizeBatch processes inputs sequentially, one client per input.
func (e *Engine) RecognizeBatch(ctx context.Context, inputs []ocr.Input) ([]ocr.Result, error) {
	results := make([]ocr.Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := e.Recognize(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", in.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// variables returns the Tesseract variables for in. Unless the caller set
// them, recognition is limited to digits and periods on a uniform block.
func variables(in ocr.Input) map[string]string {
	vars := map[string]string{
		"tessedit_char_whitelist": ocr.DigitWhitelist,
		"tessedit_pageseg_mode":   "6",
	}
	for k, v := range in.Metadata {
		vars[k] = v
	}
	return vars
}

func (e *Engine) recognizeWithClient(_ context.Context, c *gosseract.Client, in ocr.Input) (ocr.Result, error) {
	if err := c.SetImageFromBytes(in.Image); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}
	for k, v := range variables(in) {
		if err := c.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return ocr.Result{}, fmt.Errorf("set variable %s: %w", k, err)
		}
	}
	text, err := c.Text()
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize text: %w", err)
	}
	return resultFromText(in.ID, e.Name(), text), nil
}

func resultFromText(id, engine, text string) ocr.Result {
	res := ocr.Result{InputID: id, Engine: engine}
	var texts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res.Lines = append(res.Lines, ocr.TextLine{Text: line})
		texts = append(texts, line)
	}
	res.PlainText = strings.Join(texts, "\n")
	return res
}

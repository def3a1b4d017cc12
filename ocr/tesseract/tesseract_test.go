package tesseract

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/wudi/glyphscan/ocr"
)

// ensureTesseractAvailable checks that the tesseract binary is reachable.
func ensureTesseractAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed in PATH")
	}
}

func TestResultFromText(t *testing.T) {
	res := resultFromText("in", "tesseract", "01\n\n  22 \n...\n")
	if res.PlainText != "01\n22\n..." {
		t.Fatalf("unexpected text: %q", res.PlainText)
	}
	if len(res.Lines) != 3 || res.Lines[1].Text != "22" {
		t.Fatalf("unexpected lines: %+v", res.Lines)
	}
}

func TestVariablesDefaultsAndOverrides(t *testing.T) {
	vars := variables(ocr.Input{})
	if vars["tessedit_char_whitelist"] != ocr.DigitWhitelist {
		t.Fatalf("expected digit whitelist, got %q", vars["tessedit_char_whitelist"])
	}
	in := ocr.Input{}
	ocr.WithTesseractPSM(7)(&in)
	if got := variables(in)["tessedit_pageseg_mode"]; got != "7" {
		t.Fatalf("expected PSM override, got %q", got)
	}
}

func TestEngineRecognize(t *testing.T) {
	ensureTesseractAvailable(t)

	img := image.NewRGBA(image.Rect(0, 0, 200, 80))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 50),
	}
	d.DrawString("4711")

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	results, err := New().RecognizeBatch(context.Background(), []ocr.Input{{ID: "digits", Image: buf.Bytes()}})
	if err != nil {
		t.Fatalf("RecognizeBatch() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !strings.Contains(results[0].PlainText, "4711") {
		t.Fatalf("unexpected OCR output: %q", results[0].PlainText)
	}
	if results[0].InputID != "digits" {
		t.Fatalf("unexpected input id: %s", results[0].InputID)
	}
}

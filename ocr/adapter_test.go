package ocr

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// framedPNG draws rows of '#'/' ' inside a two pixel border at scale 4 and
// encodes the result as PNG.
func framedPNG(t *testing.T, rows ...string) []byte {
	t.Helper()
	const b, s = 2, 4
	w, h := len(rows[0])+2*b, len(rows)+2*b
	img := image.NewGray(image.Rect(0, 0, w*s, h*s))
	for y := 0; y < h*s; y++ {
		for x := 0; x < w*s; x++ {
			gx, gy := x/s, y/s
			on := gy < b || gy >= h-b || gx < b || gx >= w-b
			if !on {
				on = rows[gy-b][gx-b] == '#'
			}
			if on {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestInputFromBytes(t *testing.T) {
	data := framedPNG(t, "#", "#")
	meta := map[string]string{"psm": "6"}

	in, err := InputFromBytes("msg", data, WithMetadata(meta), WithID("renamed"))
	if err != nil {
		t.Fatalf("InputFromBytes() error = %v", err)
	}
	if in.Format != ImageFormatPNG {
		t.Fatalf("unexpected format: %v", in.Format)
	}
	if in.ID != "renamed" {
		t.Fatalf("unexpected id: %s", in.ID)
	}
	if len(in.Image) == 0 {
		t.Fatalf("expected encoded image data")
	}
	meta["psm"] = "7"
	if in.Metadata["psm"] != "6" {
		t.Fatalf("metadata was not copied: %+v", in.Metadata)
	}
}

func TestInputFromBytesRejectsGarbage(t *testing.T) {
	if _, err := InputFromBytes("x", []byte("garbage")); err == nil {
		t.Fatalf("expected error for undecodable payload")
	}
}

func TestWithMetadataClearsEmpty(t *testing.T) {
	in := Input{Metadata: map[string]string{"a": "b"}}
	WithMetadata(nil)(&in)
	if in.Metadata != nil {
		t.Fatalf("expected nil metadata, got %#v", in.Metadata)
	}
}

func TestInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message1.png")
	if err := os.WriteFile(path, framedPNG(t, "#", "#"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	in, err := InputFromFile(path)
	if err != nil {
		t.Fatalf("InputFromFile() error = %v", err)
	}
	if in.ID != "message1.png" {
		t.Fatalf("unexpected id: %s", in.ID)
	}
	if _, err := InputFromFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// Package imageio loads image files into the grayscale raster the decoder
// consumes. PNG, GIF and JPEG come from the standard library; BMP, TIFF and
// WebP from golang.org/x/image.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/wudi/glyphscan/raster"
)

// Decode reads an encoded image and returns its luma samples together with
// the format name reported by the registered decoder. Header dimensions are
// checked against the raster limits before pixels are decoded.
func Decode(r io.Reader) (raster.Gray, string, error) {
	var head bytes.Buffer
	cfg, format, err := image.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return raster.Gray{}, "", fmt.Errorf("decode image config: %w", err)
	}
	if err := raster.CheckBounds(cfg.Width, cfg.Height); err != nil {
		return raster.Gray{}, format, fmt.Errorf("%s header: %w", format, err)
	}
	img, format, err := image.Decode(io.MultiReader(&head, r))
	if err != nil {
		return raster.Gray{}, "", fmt.Errorf("decode image: %w", err)
	}
	g := raster.FromImage(img)
	if err := g.Validate(); err != nil {
		return raster.Gray{}, format, err
	}
	return g, format, nil
}

// DecodeBytes is Decode over an in-memory payload.
func DecodeBytes(data []byte) (raster.Gray, string, error) {
	return Decode(bytes.NewReader(data))
}

// Load opens path and decodes it.
func Load(path string) (raster.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return raster.Gray{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	g, _, err := Decode(f)
	if err != nil {
		return raster.Gray{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Format sniffs the format of an encoded image without decoding pixels.
func Format(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("detect image format: %w", err)
	}
	return format, nil
}

package raster

import (
	"image"

	"golang.org/x/image/draw"
)

const (
	// maxDimension caps width/height so a lying header cannot trigger huge
	// allocations.
	maxDimension = 32768
	// maxPixels bounds the total sample count (64 MP).
	maxPixels int64 = 64 * 1024 * 1024
)

// Gray is a decoded 8-bit grayscale raster, row-major with no padding.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the sample at (x, y).
func (g Gray) At(x, y int) uint8 { return g.Pix[y*g.Width+x] }

// CheckBounds applies the size limits to image dimensions. Loaders call it
// on header dimensions before any pixel buffer is allocated.
func CheckBounds(width, height int) error {
	if width <= 0 || height <= 0 {
		return shapeErrorf("validate", "image bounds invalid (%d x %d)", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return shapeErrorf("validate", "image dimension exceeds limit (%d x %d)", width, height)
	}
	if n := int64(width) * int64(height); n > maxPixels {
		return shapeErrorf("validate", "image pixel count %d exceeds limit %d", n, maxPixels)
	}
	return nil
}

// Validate checks dimensions against the sample buffer and the size limits.
func (g Gray) Validate() error {
	if err := CheckBounds(g.Width, g.Height); err != nil {
		return err
	}
	if len(g.Pix) != g.Width*g.Height {
		return shapeErrorf("validate", "got %d samples for %dx%d image", len(g.Pix), g.Width, g.Height)
	}
	return nil
}

// FromImage converts any image to its luma samples. Images that are already
// tightly packed *image.Gray are copied without conversion.
func FromImage(img image.Image) Gray {
	b := img.Bounds()
	if src, ok := img.(*image.Gray); ok && src.Stride == b.Dx() {
		return Gray{Width: b.Dx(), Height: b.Dy(), Pix: append([]uint8(nil), src.Pix[:b.Dx()*b.Dy()]...)}
	}
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return Gray{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}
}

// Image returns the raster as an *image.Gray sharing the sample buffer.
func (g Gray) Image() *image.Gray {
	return &image.Gray{Pix: g.Pix, Stride: g.Width, Rect: image.Rect(0, 0, g.Width, g.Height)}
}

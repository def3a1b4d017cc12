package ocr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wudi/glyphscan/imageio"
)

// InputOption mutates an input built from a file.
type InputOption func(*Input)

// WithID overrides the generated input ID.
func WithID(id string) InputOption {
	return func(in *Input) { in.ID = id }
}

// WithMetadata sets provider-specific metadata for the input.
func WithMetadata(metadata map[string]string) InputOption {
	return func(in *Input) {
		if len(metadata) == 0 {
			in.Metadata = nil
			return
		}
		in.Metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			in.Metadata[k] = v
		}
	}
}

var formats = map[string]ImageFormat{
	"png":  ImageFormatPNG,
	"gif":  ImageFormatGIF,
	"jpeg": ImageFormatJPEG,
	"bmp":  ImageFormatBMP,
	"tiff": ImageFormatTIFF,
	"webp": ImageFormatWebP,
}

// InputFromBytes wraps an encoded image, detecting its format. The ID
// defaults to id.
func InputFromBytes(id string, data []byte, opts ...InputOption) (Input, error) {
	name, err := imageio.Format(data)
	if err != nil {
		return Input{}, err
	}
	format, ok := formats[name]
	if !ok {
		return Input{}, fmt.Errorf("unsupported image format %q", name)
	}
	in := Input{ID: id, Image: data, Format: format}
	for _, opt := range opts {
		opt(&in)
	}
	return in, nil
}

// InputFromFile reads path into an input whose ID is the file's base name.
func InputFromFile(path string, opts ...InputOption) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("read input: %w", err)
	}
	in, err := InputFromBytes(filepath.Base(path), data, opts...)
	if err != nil {
		return Input{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat marks input that is not a pure black and white raster.
	ErrFormat = errors.New("raster format violation")
	// ErrShape marks input too small or irregular for the requested operation.
	ErrShape = errors.New("raster shape violation")
)

// FormatError reports a sampled value that is neither black nor white.
type FormatError struct {
	X, Y  int
	Value uint8
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected intensity %d at (%d,%d): want 0 or 255", e.Value, e.X, e.Y)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// ShapeError reports a dimension precondition that did not hold.
type ShapeError struct {
	Op     string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

func shapeErrorf(op, format string, args ...any) error {
	return &ShapeError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

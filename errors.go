package vdpgfx

import (
	"fmt"

	"github.com/bodgit/vdpgfx/rgb"
)

// ValidationError is returned when an image exceeds the limits of a target
// that cannot tolerate it.
type ValidationError struct {
	Target Target
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("vdpgfx: %s: %s", e.Target, e.Reason)
}

// ConsistencyError is returned when a quantized pixel has no slot in the
// working palette. It always indicates a bug.
type ConsistencyError struct {
	X, Y  int
	Color rgb.Color
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("vdpgfx: color #%02x%02x%02x at (%d, %d) is not in the working palette", e.Color.R, e.Color.G, e.Color.B, e.X, e.Y)
}

// DecodeError is returned when a source image cannot be read.
type DecodeError struct {
	File string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("vdpgfx: cannot decode %s: %v", e.File, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

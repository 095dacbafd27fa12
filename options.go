package vdpgfx

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Options selects the target and any preprocessing applied to the source
// image before it is quantized.
type Options struct {
	Target Target

	// Grayscale converts the image to grayscale and boosts its contrast.
	// Only the MasterSystem target supports it.
	Grayscale bool

	// Resize, if non-zero, scales the image to exactly this size.
	Resize image.Point

	// Reduce, if non-zero, reduces the image to at most this many colors
	// with a median cut before it is validated.
	Reduce int
}

func (o Options) validate() error {
	if !o.Target.valid() {
		return fmt.Errorf("vdpgfx: unknown target %d", int(o.Target))
	}
	if o.Grayscale && !o.Target.Dither() {
		return fmt.Errorf("vdpgfx: %s: grayscale is only supported when dithering", o.Target)
	}
	if o.Resize.X < 0 || o.Resize.Y < 0 || (o.Resize.X == 0) != (o.Resize.Y == 0) {
		return errors.New("vdpgfx: invalid resize dimensions")
	}
	if o.Reduce < 0 || o.Reduce > 256 {
		return errors.New("vdpgfx: reduce must be between 1 and 256 colors")
	}
	return nil
}

// String returns a canonical form of the options, suitable as a cache key.
func (o Options) String() string {
	return fmt.Sprintf("target=%s grayscale=%t resize=%dx%d reduce=%d", o.Target, o.Grayscale, o.Resize.X, o.Resize.Y, o.Reduce)
}

// ParseSize parses a size given as "WxH" or "W,H".
func ParseSize(s string) (image.Point, error) {
	f := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == 'x' || r == ','
	})
	if len(f) != 2 {
		return image.Point{}, fmt.Errorf("vdpgfx: invalid size %q", s)
	}

	w, err := strconv.Atoi(strings.TrimSpace(f[0]))
	if err != nil {
		return image.Point{}, fmt.Errorf("vdpgfx: invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(f[1]))
	if err != nil {
		return image.Point{}, fmt.Errorf("vdpgfx: invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("vdpgfx: invalid size %q", s)
	}

	return image.Pt(w, h), nil
}

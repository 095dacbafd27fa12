package vdpgfx

import (
	"fmt"

	"github.com/bodgit/vdpgfx/rgb"
)

// Check the distinct color count and dimensions against the target limits.
// Dithering targets only get warnings.
func validate(t Target, m *rgb.Image, colors int) ([]Diagnostic, error) {
	var diagnostics []Diagnostic

	fail := func(format string, a ...interface{}) error {
		reason := fmt.Sprintf(format, a...)
		if t.Dither() {
			diagnostics = append(diagnostics, Diagnostic{Warning, reason})
			return nil
		}
		return &ValidationError{Target: t, Reason: reason}
	}

	if colors > t.Colors() {
		if err := fail("too many colors (%d > %d)", colors, t.Colors()); err != nil {
			return nil, err
		}
	}

	b := m.Bounds()
	if b.Dx() > t.MaxWidth() || b.Dy() > t.MaxHeight() {
		if err := fail("invalid image dimensions (%dx%d > %dx%d)", b.Dx(), b.Dy(), t.MaxWidth(), t.MaxHeight()); err != nil {
			return nil, err
		}
	}

	return diagnostics, nil
}

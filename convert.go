package vdpgfx

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/bodgit/vdpgfx/dither"
	"github.com/bodgit/vdpgfx/palette"
	"github.com/bodgit/vdpgfx/rgb"
	"github.com/bodgit/vdpgfx/tile"
)

const tileSize = 8

// Severity grades a Diagnostic.
type Severity int

const (
	// Info is purely informational.
	Info Severity = iota
	// Warning means the output is degraded in some way.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is an advisory message produced by a successful conversion.
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Output is the result of a conversion.
type Output struct {
	Target Target
	Width  int
	Height int

	// Colors is the working palette in slot order
	Colors palette.Palette

	// Palette is the palette table, always PaletteSize bytes
	Palette []byte

	// Tiles is the planar tile data
	Tiles []byte

	Diagnostics []Diagnostic
}

// Write writes the palette table to pal and the tile data to tiles.
func (o *Output) Write(pal, tiles io.Writer) error {
	if _, err := pal.Write(o.Palette); err != nil {
		return err
	}
	if _, err := tiles.Write(o.Tiles); err != nil {
		return err
	}
	return nil
}

func hex(c rgb.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Replace every pixel with its nearest hardware color
func match(m *rgb.Image, hw palette.Palette) *rgb.Image {
	dup := m.Clone()
	matcher := palette.NewMatcher(hw)
	for i, c := range dup.Pix {
		dup.Pix[i] = matcher.Nearest(c)
	}
	return dup
}

// Translate every pixel to its working palette slot
func index(m *rgb.Image, w *palette.Working) (*image.Paletted, error) {
	b := m.Bounds()
	pm := image.NewPaletted(b, w.Colors().Color())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.Pix[m.PixOffset(x, y)]
			slot, ok := w.Slot(c)
			if !ok {
				return nil, &ConsistencyError{X: x, Y: y, Color: c}
			}
			pm.Pix[pm.PixOffset(x, y)] = uint8(slot)
		}
	}
	return pm, nil
}

// Convert converts m to the palette table and tile data for the target in
// opts. It performs no I/O; any problems that do not stop the conversion are
// returned in the Diagnostics of the Output.
func Convert(m image.Image, opts Options) (*Output, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	t := opts.Target

	src := rgb.Convert(preprocess(m, opts))
	colors := src.Colors()

	diagnostics, err := validate(t, src, len(colors))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	if b.Dx()%tileSize != 0 || b.Dy()%tileSize != 0 {
		diagnostics = append(diagnostics, Diagnostic{Warning, fmt.Sprintf("dimensions %dx%d are not a multiple of %d, partial tiles dropped", b.Dx(), b.Dy(), tileSize)})
	}

	w, collapses := palette.Build(colors, t.Palette())
	for _, c := range collapses {
		diagnostics = append(diagnostics, Diagnostic{Info, fmt.Sprintf("color %s matches %s already at index %d, ignored", hex(c.Source), hex(c.Hardware), c.Slot)})
	}

	if n := w.Clamp(t.Colors()); n > 0 {
		diagnostics = append(diagnostics, Diagnostic{Warning, fmt.Sprintf("working palette clamped to %d colors, %d dropped", t.Colors(), n)})
	}

	var q *rgb.Image
	if t.Dither() {
		q = dither.FloydSteinberg(src, t.Palette(), w.Colors())
	} else {
		q = match(src, t.Palette())
	}

	pm, err := index(q, w)
	if err != nil {
		return nil, err
	}

	tiles := new(bytes.Buffer)
	if err := tile.Encode(tiles, pm, t.Depth()); err != nil {
		return nil, err
	}

	return &Output{
		Target:      t,
		Width:       b.Dx(),
		Height:      b.Dy(),
		Colors:      w.Colors(),
		Palette:     serializePalette(t, w.Colors()),
		Tiles:       tiles.Bytes(),
		Diagnostics: diagnostics,
	}, nil
}

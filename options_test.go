package vdpgfx

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	for _, target := range []Target{GameGear, SG1000, MasterSystem} {
		got, err := ParseTarget(target.String())
		require.NoError(t, err)
		assert.Equal(t, target, got)
	}

	_, err := ParseTarget("nes")
	assert.Error(t, err)
	assert.Equal(t, "Target(7)", Target(7).String())
}

func TestTargetLimits(t *testing.T) {
	tables := []struct {
		target        Target
		depth, colors int
		width, height int
		dither        bool
	}{
		{GameGear, 4, 16, 256, 224, false},
		{SG1000, 1, 2, 256, 192, false},
		{MasterSystem, 4, 16, 256, 240, true},
	}

	for _, table := range tables {
		t.Run(table.target.String(), func(t *testing.T) {
			assert.Equal(t, table.depth, table.target.Depth())
			assert.Equal(t, table.colors, table.target.Colors())
			assert.Equal(t, table.width, table.target.MaxWidth())
			assert.Equal(t, table.height, table.target.MaxHeight())
			assert.Equal(t, table.dither, table.target.Dither())
		})
	}
}

func TestParseSize(t *testing.T) {
	tables := map[string]struct {
		want image.Point
		ok   bool
	}{
		"256x240": {image.Pt(256, 240), true},
		"128,96":  {image.Pt(128, 96), true},
		"64X 32":  {image.Pt(64, 32), true},
		"256":     {image.Point{}, false},
		"0x8":     {image.Point{}, false},
		"axb":     {image.Point{}, false},
		"8x8x8":   {image.Point{}, false},
		"-8x8":    {image.Point{}, false},
	}

	for s, table := range tables {
		t.Run(s, func(t *testing.T) {
			got, err := ParseSize(s)
			if !table.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, table.want, got)
		})
	}
}

func TestOptions(t *testing.T) {
	tables := []struct {
		opts Options
		ok   bool
	}{
		{Options{Target: MasterSystem, Grayscale: true}, true},
		{Options{Target: SG1000, Grayscale: true}, false},
		{Options{Target: GameGear, Resize: image.Pt(8, 0)}, false},
		{Options{Target: GameGear, Reduce: -1}, false},
		{Options{Target: GameGear, Reduce: 16}, true},
		{Options{Target: Target(-1)}, false},
	}

	for _, table := range tables {
		err := table.opts.validate()
		if table.ok {
			assert.NoError(t, err, table.opts.String())
		} else {
			assert.Error(t, err, table.opts.String())
		}
	}

	assert.Equal(t, "target=sms grayscale=true resize=256x240 reduce=0", Options{Target: MasterSystem, Grayscale: true, Resize: image.Pt(256, 240)}.String())
}

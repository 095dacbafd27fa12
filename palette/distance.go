package palette

import "github.com/bodgit/vdpgfx/rgb"

// Rec. 709 luma coefficients
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

const maxPerceptual = lumaR*255*255 + lumaG*255*255 + lumaB*255*255

func sqDiff(x, y uint8) int {
	d := int(x) - int(y)
	return d * d
}

// Distance returns the sum of the squared per-channel differences between
// a and b. It is the metric used for every nearest color search.
func Distance(a, b rgb.Color) int {
	return sqDiff(a.R, b.R) + sqDiff(a.G, b.G) + sqDiff(a.B, b.B)
}

// Perceptual returns the luma-weighted squared distance between a and b,
// normalized to [0, 1].
func Perceptual(a, b rgb.Color) float64 {
	return (lumaR*float64(sqDiff(a.R, b.R)) +
		lumaG*float64(sqDiff(a.G, b.G)) +
		lumaB*float64(sqDiff(a.B, b.B))) / maxPerceptual
}

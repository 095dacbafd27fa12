package palette

import "github.com/bodgit/vdpgfx/rgb"

// Matcher memoizes Palette.Nearest. A Matcher is not safe for concurrent use
// and is meant to live for a single conversion.
type Matcher struct {
	p     Palette
	cache map[rgb.Color]int
}

// NewMatcher returns a Matcher searching p.
func NewMatcher(p Palette) *Matcher {
	return &Matcher{
		p:     p,
		cache: make(map[rgb.Color]int),
	}
}

// Index returns the position of the color in the palette nearest to c.
func (m *Matcher) Index(c rgb.Color) int {
	if i, ok := m.cache[c]; ok {
		return i
	}
	i := m.p.Nearest(c)
	m.cache[c] = i
	return i
}

// Nearest returns the color in the palette nearest to c.
func (m *Matcher) Nearest(c rgb.Color) rgb.Color {
	return m.p[m.Index(c)]
}

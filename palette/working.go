package palette

import "github.com/bodgit/vdpgfx/rgb"

// Working is the deduplicated subset of a hardware palette used by one
// image. Slots are assigned in order of first use and never change.
type Working struct {
	colors Palette
	slots  map[rgb.Color]int
}

// Collapse records a source color whose nearest hardware color had already
// been given a slot by a darker source color.
type Collapse struct {
	Source   rgb.Color
	Hardware rgb.Color
	Slot     int
}

// Build derives the working palette for the distinct source colors against
// the hardware palette hw. Source colors are visited in ascending
// rgb.Color.Magnitude order, regardless of the order given, so slot
// assignment is reproducible.
func Build(colors []rgb.Color, hw Palette) (*Working, []Collapse) {
	sorted := append([]rgb.Color(nil), colors...)
	rgb.Sort(sorted)

	w := &Working{
		slots: make(map[rgb.Color]int),
	}

	var collapses []Collapse
	for _, c := range sorted {
		i := hw.Nearest(c)
		if i < 0 {
			break
		}
		h := hw[i]
		if slot, ok := w.slots[h]; ok {
			collapses = append(collapses, Collapse{c, h, slot})
			continue
		}
		w.slots[h] = len(w.colors)
		w.colors = append(w.colors, h)
	}

	return w, collapses
}

// Len returns the number of slots.
func (w *Working) Len() int {
	return len(w.colors)
}

// Colors returns the hardware colors in slot order.
func (w *Working) Colors() Palette {
	return append(Palette(nil), w.colors...)
}

// Slot returns the slot of hardware color c.
func (w *Working) Slot(c rgb.Color) (int, bool) {
	slot, ok := w.slots[c]
	return slot, ok
}

// Clamp drops every slot from n onwards and returns the number of slots
// dropped.
func (w *Working) Clamp(n int) int {
	if len(w.colors) <= n {
		return 0
	}
	dropped := len(w.colors) - n
	for _, c := range w.colors[n:] {
		delete(w.slots, c)
	}
	w.colors = w.colors[:n:n]
	return dropped
}

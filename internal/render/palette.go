package render

import (
	"image/color"
	"math"
)

// ageBuckets is the number of distinct live-cell colors. Palette index zero
// is the dead-cell background, so ages at or beyond ageBuckets-1 share the
// last entry.
const ageBuckets = 15

// Background is the dead-cell color, exposed so callers can clear the
// regions the painter does not cover.
var Background = color.RGBA{R: 16, G: 19, B: 26, A: 255}

// AgeIndex maps a live cell's age onto its palette bucket. Index zero stays
// reserved for dead cells.
func AgeIndex(age int) uint8 {
	if age < 0 {
		age = 0
	}
	idx := age + 1
	if idx > ageBuckets {
		idx = ageBuckets
	}
	return uint8(idx)
}

// BuildAgePalette returns the palette consumed by Rasterize values: entry 0
// is the background, entry 1 a newborn cell, and later entries fade from
// bright green through teal into a deep blue as cells survive longer.
func BuildAgePalette() []color.RGBA {
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 170, G: 255, B: 140, A: 255}},
		{0.35, color.RGBA{R: 70, G: 210, B: 160, A: 255}},
		{0.7, color.RGBA{R: 45, G: 140, B: 190, A: 255}},
		{1.0, color.RGBA{R: 60, G: 70, B: 170, A: 255}},
	}

	palette := make([]color.RGBA, ageBuckets+1)
	palette[0] = Background
	for i := 1; i <= ageBuckets; i++ {
		t := float64(i-1) / float64(ageBuckets-1)
		palette[i] = gradientAt(stops, t)
	}
	return palette
}

func gradientAt(stops []struct {
	t   float64
	col color.RGBA
}, t float64) color.RGBA {
	t = clamp01(t)
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package life

import "lifegrid/pkg/core"

// Randomize fills the rectangle with a random soup: each cell inside r is
// made alive with probability density, otherwise killed. Cells outside r are
// untouched. The same seed always produces the same soup.
func (e *Engine) Randomize(r Rect, density float64, seed int64) {
	rng := core.NewRNG(seed)
	e.mu.Lock()
	defer e.mu.Unlock()
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			p := Point{X: x, Y: y}
			if rng.Float64() < density {
				e.grid.Set(p)
			} else {
				e.grid.Remove(p)
			}
		}
	}
	e.version++
}

package render

import (
	"image/color"

	"lifegrid/pkg/life"
)

// Window is the cell-space rectangle a painter rasterizes: Cols x Rows cells
// whose top-left cell sits at Origin.
type Window struct {
	Origin life.Point
	Cols   int
	Rows   int
}

// Contains reports whether the board point p falls inside the window.
func (w Window) Contains(p life.Point) bool {
	return p.X >= w.Origin.X && p.X < w.Origin.X+w.Cols &&
		p.Y >= w.Origin.Y && p.Y < w.Origin.Y+w.Rows
}

// Rasterize fills buf with one palette index per window cell in row-major
// order: zero for dead cells, the age bucket for live ones. buf must hold
// Cols*Rows entries. When the live population is small compared to the
// window, the board is walked instead of the window.
func Rasterize(buf []uint8, g life.Grid, w Window) {
	total := w.Cols * w.Rows
	if len(buf) != total {
		return
	}
	if g.Population() < total/4 {
		for i := range buf {
			buf[i] = 0
		}
		for p, c := range g {
			if !w.Contains(p) {
				continue
			}
			idx := (p.Y-w.Origin.Y)*w.Cols + (p.X - w.Origin.X)
			buf[idx] = AgeIndex(c.Age)
		}
		return
	}
	i := 0
	for y := 0; y < w.Rows; y++ {
		for x := 0; x < w.Cols; x++ {
			c, ok := g.At(life.Point{X: w.Origin.X + x, Y: w.Origin.Y + y})
			if ok {
				buf[i] = AgeIndex(c.Age)
			} else {
				buf[i] = 0
			}
			i++
		}
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter rasterizes a board window into a single RGBA image, one pixel per
// cell, and blits it scaled to the cell size. Buffers are reused between
// frames and reallocated only when the window dimensions change.
type Painter struct {
	cols, rows int
	img        *ebiten.Image
	buf        []byte
	idx        []uint8
}

// NewPainter allocates an empty painter. Buffers are sized on first draw.
func NewPainter() *Painter { return &Painter{} }

// Draw uploads the window's cells into the painter image and draws it onto
// dst with cellPx pixels per cell, offset by (offX, offY).
func (p *Painter) Draw(dst *ebiten.Image, g life.Grid, w Window, palette []color.RGBA, cellPx, offX, offY float64) {
	if w.Cols <= 0 || w.Rows <= 0 || cellPx <= 0 {
		return
	}
	if p.img == nil || p.cols != w.Cols || p.rows != w.Rows {
		p.cols, p.rows = w.Cols, w.Rows
		p.img = ebiten.NewImage(w.Cols, w.Rows)
		p.buf = make([]byte, 4*w.Cols*w.Rows)
		p.idx = make([]uint8, w.Cols*w.Rows)
	}

	Rasterize(p.idx, g, w)
	fillPaletteRGBA(p.buf, p.idx, palette)
	p.img.ReplacePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellPx, cellPx)
	op.GeoM.Translate(offX, offY)
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the current window image.
func (p *Painter) Size() (int, int) { return p.cols, p.rows }

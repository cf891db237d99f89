package app

import (
	"math"

	"lifegrid/internal/render"
	"lifegrid/pkg/life"
)

// Camera maps between view pixels and board cells. OriginX and OriginY hold
// the board coordinates, in fractional cells, of the view's top-left corner.
type Camera struct {
	OriginX float64
	OriginY float64
	CellPx  float64
}

const (
	minCellPx = 2
	maxCellPx = 64
)

// NewCamera returns a camera drawing cells at the given pixel size, clamped
// to the supported zoom range.
func NewCamera(cellPx float64) *Camera {
	c := &Camera{CellPx: cellPx}
	c.clampZoom()
	return c
}

func (c *Camera) clampZoom() {
	if c.CellPx < minCellPx {
		c.CellPx = minCellPx
	}
	if c.CellPx > maxCellPx {
		c.CellPx = maxCellPx
	}
}

// Home places the board origin at the center of a view of the given pixel
// size.
func (c *Camera) Home(viewW, viewH int) {
	c.OriginX = -float64(viewW) / c.CellPx / 2
	c.OriginY = -float64(viewH) / c.CellPx / 2
}

// CellAt returns the board cell under the view pixel (px, py).
func (c *Camera) CellAt(px, py int) life.Point {
	return life.Point{
		X: int(math.Floor(c.OriginX + float64(px)/c.CellPx)),
		Y: int(math.Floor(c.OriginY + float64(py)/c.CellPx)),
	}
}

// Pan moves the view by a pixel delta: positive dx shifts the view right,
// revealing cells with larger x.
func (c *Camera) Pan(dx, dy float64) {
	c.OriginX += dx / c.CellPx
	c.OriginY += dy / c.CellPx
}

// ZoomAt scales the cell size by factor while keeping the board point under
// the view pixel (px, py) fixed on screen.
func (c *Camera) ZoomAt(px, py int, factor float64) {
	if factor <= 0 {
		return
	}
	wx := c.OriginX + float64(px)/c.CellPx
	wy := c.OriginY + float64(py)/c.CellPx
	c.CellPx *= factor
	c.clampZoom()
	c.OriginX = wx - float64(px)/c.CellPx
	c.OriginY = wy - float64(py)/c.CellPx
}

// Window returns the cell window covering a view of the given pixel size,
// plus the pixel offset at which its top-left corner should be drawn. The
// window overshoots by one cell per axis so fractional origins never expose
// a gap; the offsets are therefore zero or negative.
func (c *Camera) Window(viewW, viewH int) (render.Window, float64, float64) {
	x0 := int(math.Floor(c.OriginX))
	y0 := int(math.Floor(c.OriginY))
	cols := int(math.Ceil(float64(viewW)/c.CellPx)) + 1
	rows := int(math.Ceil(float64(viewH)/c.CellPx)) + 1
	offX := (float64(x0) - c.OriginX) * c.CellPx
	offY := (float64(y0) - c.OriginY) * c.CellPx
	return render.Window{Origin: life.Point{X: x0, Y: y0}, Cols: cols, Rows: rows}, offX, offY
}

// VisibleRect returns the board cells at least partially visible in a view
// of the given pixel size.
func (c *Camera) VisibleRect(viewW, viewH int) life.Rect {
	return life.Rect{
		Min: c.CellAt(0, 0),
		Max: c.CellAt(viewW-1, viewH-1),
	}
}

//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridCellPx is the zoom below which grid lines would dominate the view,
// so they are skipped.
const minGridCellPx = 6

// Overlay draws optional visuals on top of the board: cell grid lines, the
// origin axes, and the live-cell bounding box.
type Overlay struct {
	showGrid   bool
	showAxes   bool
	showBounds bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance with grid lines enabled.
func NewOverlay() *Overlay {
	o := &Overlay{showGrid: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers from the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showAxes = !o.showAxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showBounds = !o.showBounds
	}
}

// Draw renders the enabled layers onto the view described by v.
func (o *Overlay) Draw(screen *ebiten.Image, v View) {
	if v.W <= 0 || v.H <= 0 || v.CellPx <= 0 {
		return
	}
	if o.showGrid && v.CellPx >= minGridCellPx {
		o.drawGridLines(screen, v)
	}
	if o.showAxes {
		o.drawAxes(screen, v)
	}
	if o.showBounds && v.HasBounds {
		o.drawBounds(screen, v)
	}
}

func (o *Overlay) drawGridLines(screen *ebiten.Image, v View) {
	col := color.RGBA{R: 40, G: 44, B: 54, A: 255}
	w := float64(v.W)
	h := float64(v.H)
	for x := math.Ceil(v.OriginX); ; x++ {
		sx := v.ScreenX(x)
		if sx > w {
			break
		}
		if sx >= 0 {
			o.drawLine(screen, sx, 0, sx, h, 1, col)
		}
	}
	for y := math.Ceil(v.OriginY); ; y++ {
		sy := v.ScreenY(y)
		if sy > h {
			break
		}
		if sy >= 0 {
			o.drawLine(screen, 0, sy, w, sy, 1, col)
		}
	}
}

func (o *Overlay) drawAxes(screen *ebiten.Image, v View) {
	col := color.RGBA{R: 120, G: 90, B: 60, A: 200}
	sx := v.ScreenX(0)
	if sx >= 0 && sx <= float64(v.W) {
		o.drawLine(screen, sx, 0, sx, float64(v.H), 1, col)
	}
	sy := v.ScreenY(0)
	if sy >= 0 && sy <= float64(v.H) {
		o.drawLine(screen, 0, sy, float64(v.W), sy, 1, col)
	}
}

func (o *Overlay) drawBounds(screen *ebiten.Image, v View) {
	col := color.RGBA{R: 190, G: 150, B: 60, A: 220}
	x0 := v.ScreenX(float64(v.Bounds.Min.X))
	y0 := v.ScreenY(float64(v.Bounds.Min.Y))
	x1 := v.ScreenX(float64(v.Bounds.Max.X + 1))
	y1 := v.ScreenY(float64(v.Bounds.Max.Y + 1))
	o.drawLine(screen, x0, y0, x1, y0, 1, col)
	o.drawLine(screen, x0, y1, x1, y1, 1, col)
	o.drawLine(screen, x0, y0, x0, y1, 1, col)
	o.drawLine(screen, x1, y0, x1, y1, 1, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

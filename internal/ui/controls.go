package ui

import "lifegrid/pkg/life"

// ParamType enumerates the kinds of values a HUD control adjusts.
type ParamType string

const (
	// ParamTypeInt marks controls that step an integer setting.
	ParamTypeInt ParamType = "int"
	// ParamTypeEnum marks controls that cycle through a fixed list of
	// named settings.
	ParamTypeEnum ParamType = "enum"
)

// Control describes one adjustable row on the HUD panel. Key ties the row to
// a value in Status.Controls and to Adjuster.Adjust calls.
type Control struct {
	Key   string
	Label string
	Type  ParamType
}

// Status is a point-in-time summary of the simulation for the HUD readouts.
// Controls maps control keys to their current display values.
type Status struct {
	Generation  int
	Population  int
	StepsPerSec float64
	Running     bool
	Zoom        float64
	Controls    map[string]string
}

// Adjuster is the surface the HUD drives: it reports current status and
// applies directional adjustments keyed by control.
type Adjuster interface {
	Status() Status
	Adjust(key string, direction int)
}

// View captures the board viewport geometry overlays draw against. OriginX
// and OriginY are the board coordinates of the view's top-left corner in
// fractional cells; W and H are the view size in pixels.
type View struct {
	W, H    int
	OriginX float64
	OriginY float64
	CellPx  float64

	Bounds    life.Rect
	HasBounds bool
}

// ScreenX converts a board x coordinate to a view pixel coordinate.
func (v View) ScreenX(x float64) float64 { return (x - v.OriginX) * v.CellPx }

// ScreenY converts a board y coordinate to a view pixel coordinate.
func (v View) ScreenY(y float64) float64 { return (y - v.OriginY) * v.CellPx }

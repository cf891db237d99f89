//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the board view: readouts,
// adjustable controls with -/+ buttons, and a key-binding footer.
type HUD struct {
	adj        Adjuster
	width      int
	title      string
	help       []string
	panel      *ebiten.Image
	pixel      *ebiten.Image
	lastHeight int

	status       Status
	controls     []hudControlState
	panelOffsetX int
}

type hudControlState struct {
	control  Control
	value    string
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	headerBaseline = 18
	statusTop      = panelPadding + headerBaseline + 16
	statusLine     = 16
	statusCount    = 5
	controlsTop    = statusTop + statusCount*statusLine + 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	labelBaseline  = 24
	helpLine       = 14
)

// NewHUD constructs a HUD driving the provided adjuster. A width of zero
// disables the panel entirely.
func NewHUD(adj Adjuster, width int, title string, controls []Control, help []string) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{adj: adj, width: width, title: title, help: help}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	return h
}

// Update refreshes the cached status from the adjuster and handles clicks on
// the control buttons. panelOffsetX is the screen x where the panel starts.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.status = h.adj.Status()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored at offsetX, filling the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	h.drawControls()
	h.drawHelp(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		value, ok := h.status.Controls[state.control.Key]
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.hasValue = true
		state.value = value
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.adj.Adjust(state.control.Key, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.adj.Adjust(state.control.Key, 1)
			return
		}
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	state := "paused"
	if h.status.Running {
		state = "running"
	}
	lines := []string{
		fmt.Sprintf("gen    %d", h.status.Generation),
		fmt.Sprintf("alive  %d", h.status.Population),
		fmt.Sprintf("rate   %.1f/s", h.status.StepsPerSec),
		fmt.Sprintf("state  %s", state),
		fmt.Sprintf("zoom   %.0fpx", h.status.Zoom),
	}
	col := color.RGBA{R: 170, G: 175, B: 185, A: 255}
	for i, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, statusTop+i*statusLine, col)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue)
		h.drawButton(state.plusRect, "+", state.hasValue)
	}
}

func (h *HUD) drawHelp(height int) {
	if len(h.help) == 0 {
		return
	}
	face := basicfont.Face7x13
	col := color.RGBA{R: 120, G: 125, B: 135, A: 255}
	startY := height - panelPadding - (len(h.help)-1)*helpLine
	if startY < controlsTop+len(h.controls)*lineHeight+helpLine {
		return
	}
	for i, line := range h.help {
		text.Draw(h.panel, line, face, panelPadding, startY+i*helpLine, col)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

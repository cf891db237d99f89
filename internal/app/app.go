//go:build ebiten

package app

import (
	"image/color"
	"math"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Engine to the ebiten.Game interface. It owns the
// camera, routes input to the engine, and composes the board, overlay and
// HUD each frame. The engine's run loop steps on its own goroutine; the
// frame loop only polls Version to refresh its cached snapshot.
type Game struct {
	engine  *life.Engine
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD
	cam     *Camera
	stats   *Stats

	palette []color.RGBA
	cfg     *Config

	viewW int
	viewH int

	patterns   []string
	patternIdx int
	speedTier  int
	soupSeed   int64

	snapshot life.State
	version  uint64

	dragging  bool
	dragMoved bool
	lastX     int
	lastY     int
}

const (
	dragThreshold = 3
	panStep       = 8.0
	zoomStepKey   = 1.25
	zoomStepWheel = 1.1
)

var helpLines = []string{
	"space run / pause",
	"n step, c clear, r reset",
	"s soup in view",
	"tab next pattern",
	"-/= slower / faster",
	"click toggle cell",
	"shift+click stamp",
	"drag pan, wheel zoom",
	"1/2/3 grid, axes, bounds",
	"q quit",
}

// New constructs a Game around an engine the caller has prepared.
func New(engine *life.Engine, cfg *Config) *Game {
	cam := NewCamera(float64(cfg.Scale))
	cam.Home(cfg.ViewW, cfg.ViewH)
	g := &Game{
		engine:    engine,
		painter:   render.NewPainter(),
		overlay:   ui.NewOverlay(),
		cam:       cam,
		stats:     &Stats{},
		palette:   render.BuildAgePalette(),
		cfg:       cfg,
		viewW:     cfg.ViewW,
		viewH:     cfg.ViewH,
		patterns:  life.Names(),
		speedTier: tierForPeriod(cfg.Period),
		soupSeed:  cfg.Seed,
	}
	for i, name := range g.patterns {
		if name == cfg.Pattern {
			g.patternIdx = i
			break
		}
	}
	g.snapshot = engine.Snapshot()
	g.version = engine.Version()
	g.hud = ui.NewHUD(g, cfg.HUDWidth, "lifegrid", []ui.Control{
		{Key: "speed", Label: "Speed", Type: ui.ParamTypeEnum},
		{Key: "pattern", Label: "Pattern", Type: ui.ParamTypeEnum},
	}, helpLines)
	return g
}

// Status implements ui.Adjuster.
func (g *Game) Status() ui.Status {
	return ui.Status{
		Generation:  g.snapshot.Generation,
		Population:  g.snapshot.Grid.Population(),
		StepsPerSec: g.stats.StepsPerSec,
		Running:     g.engine.Running(),
		Zoom:        g.cam.CellPx,
		Controls: map[string]string{
			"speed":   speedTiers[g.speedTier].Label,
			"pattern": g.selectedPattern(),
		},
	}
}

// Adjust implements ui.Adjuster.
func (g *Game) Adjust(key string, direction int) {
	switch key {
	case "speed":
		g.shiftSpeed(direction)
	case "pattern":
		g.cyclePattern(direction)
	}
}

func (g *Game) selectedPattern() string {
	if len(g.patterns) == 0 {
		return "--"
	}
	return g.patterns[g.patternIdx]
}

func (g *Game) shiftSpeed(direction int) {
	tier := clampTier(g.speedTier + direction)
	if tier == g.speedTier {
		return
	}
	g.speedTier = tier
	g.engine.SetPeriod(speedTiers[tier].Period)
}

func (g *Game) cyclePattern(direction int) {
	if len(g.patterns) == 0 {
		return
	}
	g.patternIdx = (g.patternIdx + direction + len(g.patterns)) % len(g.patterns)
}

// Update handles one frame of input and refreshes the cached board snapshot.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Running() {
			g.engine.Stop()
		} else {
			g.engine.Start(nil)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.engine.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.cam.Home(g.viewW, g.viewH)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.Randomize(g.cam.VisibleRect(g.viewW, g.viewH), g.cfg.Density, g.soupSeed)
		g.soupSeed++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.cyclePattern(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.shiftSpeed(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.shiftSpeed(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.cam.ZoomAt(g.viewW/2, g.viewH/2, zoomStepKey)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.cam.ZoomAt(g.viewW/2, g.viewH/2, 1/zoomStepKey)
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Pan(0, -panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Pan(0, panStep)
	}

	g.handleMouse()

	g.overlay.Update()
	g.hud.Update(g.viewW)

	if v := g.engine.Version(); v != g.version {
		g.snapshot = g.engine.Snapshot()
		g.version = v
	}
	g.stats.Observe(g.snapshot.Generation, time.Now())
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && mx < g.viewW && my >= 0 && my < g.viewH

	if _, wy := ebiten.Wheel(); wy != 0 && inView {
		g.cam.ZoomAt(mx, my, math.Pow(zoomStepWheel, wy))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inView {
		g.dragging = true
		g.dragMoved = false
		g.lastX, g.lastY = mx, my
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx, dy := mx-g.lastX, my-g.lastY
		if g.dragMoved || absInt(dx)+absInt(dy) > dragThreshold {
			g.dragMoved = true
			g.cam.Pan(float64(-dx), float64(-dy))
			g.lastX, g.lastY = mx, my
		}
	}
	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if !g.dragMoved && inView {
			p := g.cam.CellAt(mx, my)
			shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
			if shift {
				g.stampSelected(p)
			} else {
				g.engine.ToggleCell(p.X, p.Y)
			}
		}
		g.dragging = false
	}
}

// stampSelected stamps the HUD-selected pattern centered on the clicked cell.
func (g *Game) stampSelected(at life.Point) {
	pat, ok := life.Lookup(g.selectedPattern())
	if !ok {
		return
	}
	b := pat.Bounds()
	g.engine.Stamp(pat, at.X-b.Width()/2, at.Y-b.Height()/2)
}

// Draw renders the board window, overlay layers and HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	win, offX, offY := g.cam.Window(g.viewW, g.viewH)
	g.painter.Draw(screen, g.snapshot.Grid, win, g.palette, g.cam.CellPx, offX, offY)
	g.overlay.Draw(screen, g.view())
	g.hud.Draw(screen, g.viewW, g.viewH)
}

func (g *Game) view() ui.View {
	v := ui.View{
		W:       g.viewW,
		H:       g.viewH,
		OriginX: g.cam.OriginX,
		OriginY: g.cam.OriginY,
		CellPx:  g.cam.CellPx,
	}
	v.Bounds, v.HasBounds = g.snapshot.Grid.Bounds()
	return v
}

// Layout returns the logical screen size: the board view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.cfg.HUDWidth, g.viewH
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package life

import (
	"sync"
	"time"
)

// State is a self-contained snapshot of the board: the live cells plus the
// generation counter. The grid is a private copy, so holders may read or
// mutate it freely without affecting the engine.
type State struct {
	Grid       Grid
	Generation int
}

// Config carries the tunable engine settings.
type Config struct {
	// StepPeriod is the interval between generations while running.
	// Values of zero or less fall back to DefaultStepPeriod.
	StepPeriod time.Duration
}

// DefaultConfig returns the settings New uses.
func DefaultConfig() Config {
	return Config{StepPeriod: DefaultStepPeriod}
}

// Engine owns a board and advances it, one generation at a time via Step or
// continuously on a background goroutine via Start. All methods are safe for
// concurrent use; stepping itself is single-threaded.
type Engine struct {
	mu         sync.Mutex
	grid       Grid
	generation int
	version    uint64

	period  time.Duration
	running bool
	stop    chan struct{}
	clock   *stepClock
	onStep  func(State)
}

// New returns a stopped engine with an empty board and default settings.
func New() *Engine { return NewWithConfig(DefaultConfig()) }

// NewWithConfig returns a stopped engine with an empty board.
func NewWithConfig(cfg Config) *Engine {
	period := cfg.StepPeriod
	if period <= 0 {
		period = DefaultStepPeriod
	}
	return &Engine{grid: NewGrid(), period: period}
}

// SetCell forces the cell at (x, y) into the given state. Making a cell
// alive always resets its age to zero, even if it was already alive.
func (e *Engine) SetCell(x, y int, alive bool) {
	p := Point{X: x, Y: y}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !alive {
		if !e.grid.Has(p) {
			return
		}
		e.grid.Remove(p)
	} else {
		e.grid.Set(p)
	}
	e.version++
}

// ToggleCell flips the cell at (x, y) between dead and alive. A cell born by
// toggling starts at age zero.
func (e *Engine) ToggleCell(x, y int) {
	p := Point{X: x, Y: y}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.grid.Has(p) {
		e.grid.Remove(p)
	} else {
		e.grid.Set(p)
	}
	e.version++
}

// CellAt returns the cell at (x, y) and whether it is alive.
func (e *Engine) CellAt(x, y int) (Cell, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.At(Point{X: x, Y: y})
}

// Snapshot returns a copy of the current state. The returned grid is
// independent of the engine's board.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() State {
	return State{Grid: e.grid.Clone(), Generation: e.generation}
}

// Generation returns the current generation counter.
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Population()
}

// Bounds returns the bounding rectangle of the live cells, or false when the
// board is empty.
func (e *Engine) Bounds() (Rect, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Bounds()
}

// Version returns a counter that increases with every board mutation.
// Callers can poll it to decide when a cached Snapshot has gone stale.
func (e *Engine) Version() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.version
}

// Step advances the board by exactly one generation. Stepping an empty
// board yields an empty board but still increments the counter.
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepLocked()
}

func (e *Engine) stepLocked() {
	e.grid = nextGrid(e.grid)
	e.generation++
	e.version++
}

// Start launches the run loop, stepping once per configured period until
// Stop or Reset. After each step, onStep (if non-nil) receives a snapshot of
// the new state. The callback runs on the engine's stepping goroutine and
// may call back into the engine. Starting a running engine is a no-op; the
// original callback stays in place.
func (e *Engine) Start(onStep func(State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return
	}
	e.running = true
	e.onStep = onStep
	e.stop = make(chan struct{})
	e.clock = newStepClock(e.period)
	go e.run(e.stop)
}

// Stop halts the run loop. No step begins after Stop returns; a stop
// arriving together with a scheduled tick wins, so the pending step is
// cancelled rather than run. Stopping a stopped engine is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if !e.running {
		return
	}
	e.running = false
	close(e.stop)
	e.stop = nil
	e.clock.Stop()
	e.clock = nil
	e.onStep = nil
}

// Running reports whether the run loop is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// SetPeriod changes the interval between generations. While running, the
// change takes effect immediately: the next step fires one full new period
// from now, exactly as if the engine had been stopped and restarted.
func (e *Engine) SetPeriod(d time.Duration) {
	if d <= 0 {
		d = DefaultStepPeriod
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.period = d
	if e.running {
		e.clock.Reschedule(d)
	}
}

// Period returns the configured interval between generations.
func (e *Engine) Period() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.period
}

// Clear empties the board and resets the generation counter to zero. The
// run loop, if active, keeps going and will step the empty board.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clearLocked()
}

func (e *Engine) clearLocked() {
	e.grid = NewGrid()
	e.generation = 0
	e.version++
}

// Reset stops the run loop and restores the initial state: an empty board
// at generation zero.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.clearLocked()
}

// Stamp writes the pattern's cells onto the board, each offset translated by
// (ox, oy). Cells outside the pattern are untouched; stamped cells are born
// at age zero.
func (e *Engine) Stamp(p Pattern, ox, oy int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range p.Offsets {
		e.grid.Set(Point{X: ox + d.X, Y: oy + d.Y})
	}
	e.version++
}

// run is the engine's stepping goroutine. Its stop channel identifies the
// run it belongs to: once the engine moves on to a newer run, the goroutine
// exits without touching the newer run's clock. SetPeriod swaps the tick
// channel and closes the reschedule channel, so a loop parked on the old
// ticker wakes up, loops around, and re-fetches the new schedule; a tick
// pulled from a superseded channel is discarded instead of stepping early.
// The stop channel is re-checked after every tick so a stop arriving
// together with a tick wins.
func (e *Engine) run(stop chan struct{}) {
	for {
		e.mu.Lock()
		if !e.running || e.stop != stop {
			e.mu.Unlock()
			return
		}
		tick := e.clock.C()
		resched := e.clock.Rescheduled()
		e.mu.Unlock()

		select {
		case <-stop:
			return
		case <-resched:
			continue
		case <-tick:
			select {
			case <-stop:
				return
			default:
			}
			e.mu.Lock()
			if !e.running || e.stop != stop {
				e.mu.Unlock()
				return
			}
			if e.clock.C() != tick {
				e.mu.Unlock()
				continue
			}
			e.stepLocked()
			cb := e.onStep
			var st State
			if cb != nil {
				st = e.snapshotLocked()
			}
			e.mu.Unlock()
			if cb != nil {
				cb(st)
			}
		}
	}
}

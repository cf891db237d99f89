package life

import (
	"maps"
	"testing"
	"time"
)

func waitForGeneration(t *testing.T, ch <-chan State, want int) State {
	t.Helper()
	for {
		select {
		case st := <-ch:
			if st.Generation == want {
				return st
			}
			if st.Generation > want {
				t.Fatalf("missed generation %d, saw %d", want, st.Generation)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for generation %d", want)
		}
	}
}

func TestStepAdvancesOneGeneration(t *testing.T) {
	e := New()
	e.Stamp(Blinker, 0, 0)
	e.Step()
	if e.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", e.Generation())
	}
	if _, ok := e.CellAt(1, -1); !ok {
		t.Fatal("blinker should have flipped vertical")
	}
	e.Clear()
	e.Step()
	if e.Generation() != 1 || e.Population() != 0 {
		t.Fatalf("stepping an empty board should stay empty, pop=%d gen=%d", e.Population(), e.Generation())
	}
}

func TestSetCellResetsAge(t *testing.T) {
	e := New()
	e.Stamp(Block, 0, 0)
	e.Step()
	e.Step()
	if c, ok := e.CellAt(0, 0); !ok || c.Age != 2 {
		t.Fatalf("block corner should be age 2, got %+v ok=%v", c, ok)
	}
	e.SetCell(0, 0, true)
	if c, _ := e.CellAt(0, 0); c.Age != 0 {
		t.Fatalf("SetCell alive must reset age, got %d", c.Age)
	}
	if c, ok := e.CellAt(1, 1); !ok || c.Age != 2 {
		t.Fatalf("other cells must keep their age, got %+v ok=%v", c, ok)
	}
	e.SetCell(0, 0, false)
	if _, ok := e.CellAt(0, 0); ok {
		t.Fatal("SetCell dead must kill the cell")
	}
}

func TestToggleCell(t *testing.T) {
	e := New()
	e.ToggleCell(4, -2)
	if _, ok := e.CellAt(4, -2); !ok {
		t.Fatal("toggle should revive a dead cell")
	}
	e.ToggleCell(4, -2)
	if _, ok := e.CellAt(4, -2); ok {
		t.Fatal("toggle should kill a live cell")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	e := New()
	e.Stamp(Blinker, 0, 0)
	st := e.Snapshot()
	st.Grid.Set(Point{X: 50, Y: 50})
	st.Grid.Remove(Point{X: 0, Y: 0})
	if _, ok := e.CellAt(50, 50); ok {
		t.Fatal("mutating a snapshot must not touch the engine")
	}
	if _, ok := e.CellAt(0, 0); !ok {
		t.Fatal("snapshot mutation erased an engine cell")
	}
	e.Step()
	if st.Grid.Has(Point{X: 1, Y: -1}) {
		t.Fatal("stepping the engine must not touch an old snapshot")
	}
}

func TestStampAtOffset(t *testing.T) {
	e := New()
	e.Stamp(Glider, 10, -5)
	if e.Population() != Glider.Size() {
		t.Fatalf("expected %d cells, got %d", Glider.Size(), e.Population())
	}
	for _, o := range Glider.Offsets {
		if c, ok := e.CellAt(10+o.X, -5+o.Y); !ok || c.Age != 0 {
			t.Fatalf("stamped cell at offset %+v should be alive at age 0, got %+v ok=%v", o, c, ok)
		}
	}
}

func TestVersionTracksMutations(t *testing.T) {
	e := New()
	v := e.Version()
	e.SetCell(0, 0, true)
	if e.Version() == v {
		t.Fatal("SetCell should bump the version")
	}
	v = e.Version()
	e.Snapshot()
	e.Population()
	if e.Version() != v {
		t.Fatal("reads must not bump the version")
	}
	e.Step()
	if e.Version() == v {
		t.Fatal("Step should bump the version")
	}
}

func TestStartStepsAndNotifies(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: 2 * time.Millisecond})
	e.Stamp(Blinker, 0, 0)
	ch := make(chan State, 64)
	e.Start(func(st State) { ch <- st })
	defer e.Stop()

	for want := 1; want <= 5; want++ {
		st := waitForGeneration(t, ch, want)
		if st.Grid.Population() != 3 {
			t.Fatalf("blinker population should stay 3, got %d at generation %d", st.Grid.Population(), st.Generation)
		}
	}
	if !e.Running() {
		t.Fatal("engine should report running")
	}
}

func TestStartTwiceKeepsSingleLoop(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: 2 * time.Millisecond})
	e.Stamp(Blinker, 0, 0)
	ch := make(chan State, 64)
	e.Start(func(st State) { ch <- st })
	e.Start(func(State) { t.Error("second Start must not install a callback") })
	defer e.Stop()

	for want := 1; want <= 4; want++ {
		waitForGeneration(t, ch, want)
	}
}

func TestStopHaltsStepping(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: 2 * time.Millisecond})
	ch := make(chan State, 64)
	e.Start(func(st State) { ch <- st })
	waitForGeneration(t, ch, 3)

	e.Stop()
	if e.Running() {
		t.Fatal("engine should be stopped")
	}
	gen := e.Generation()
	time.Sleep(30 * time.Millisecond)
	if got := e.Generation(); got != gen {
		t.Fatalf("generation advanced after Stop: %d -> %d", gen, got)
	}
	e.Stop()
}

func TestStopFromCallback(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: 2 * time.Millisecond})
	done := make(chan struct{})
	e.Start(func(st State) {
		if st.Generation == 3 {
			e.Stop()
			close(done)
		}
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never reached generation 3")
	}
	if e.Running() {
		t.Fatal("engine should be stopped")
	}
	time.Sleep(20 * time.Millisecond)
	if got := e.Generation(); got != 3 {
		t.Fatalf("no step should follow a Stop from the callback, generation=%d", got)
	}
}

func TestSetPeriodTakesEffectImmediately(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: time.Hour})
	e.Stamp(Blinker, 0, 0)
	ch := make(chan State, 64)
	e.Start(func(st State) { ch <- st })
	defer e.Stop()

	select {
	case st := <-ch:
		t.Fatalf("no step should fire on the hour-long period, got generation %d", st.Generation)
	case <-time.After(30 * time.Millisecond):
	}

	e.SetPeriod(2 * time.Millisecond)
	waitForGeneration(t, ch, 1)
}

func TestSetPeriodWakesParkedRunLoop(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: time.Hour})
	e.Stamp(Blinker, 0, 0)
	ch := make(chan State, 64)
	e.Start(func(st State) { ch <- st })
	defer e.Stop()

	// Let the run loop park on the hour-long ticker before changing speed.
	time.Sleep(30 * time.Millisecond)
	e.SetPeriod(2 * time.Millisecond)
	waitForGeneration(t, ch, 1)

	// A second reschedule must wake the loop again, not just the first.
	e.SetPeriod(time.Hour)
	time.Sleep(30 * time.Millisecond)
	base := e.Generation()
	e.SetPeriod(2 * time.Millisecond)
	waitForGeneration(t, ch, base+1)
}

func TestSetPeriodAppliesToNextStart(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: time.Hour})
	e.SetPeriod(2 * time.Millisecond)
	if got := e.Period(); got != 2*time.Millisecond {
		t.Fatalf("period not stored: %v", got)
	}
	ch := make(chan State, 16)
	e.Start(func(st State) { ch <- st })
	defer e.Stop()
	waitForGeneration(t, ch, 1)
}

func TestClearKeepsRunLoopAlive(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: time.Hour})
	e.Stamp(Glider, 0, 0)
	e.Start(nil)
	defer e.Stop()

	e.Clear()
	if !e.Running() {
		t.Fatal("Clear must not stop the run loop")
	}
	if e.Population() != 0 || e.Generation() != 0 {
		t.Fatalf("Clear should empty the board at generation 0, got pop=%d gen=%d", e.Population(), e.Generation())
	}
}

func TestResetStopsAndRestoresInitialState(t *testing.T) {
	e := NewWithConfig(Config{StepPeriod: 2 * time.Millisecond})
	e.Stamp(Glider, 0, 0)
	ch := make(chan State, 64)
	e.Start(func(st State) { ch <- st })
	waitForGeneration(t, ch, 2)

	e.Reset()
	if e.Running() {
		t.Fatal("Reset must stop the engine")
	}
	if e.Population() != 0 || e.Generation() != 0 {
		t.Fatalf("Reset should restore the empty board, got pop=%d gen=%d", e.Population(), e.Generation())
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	r := Rect{Min: Point{X: -8, Y: -8}, Max: Point{X: 7, Y: 7}}
	a := New()
	b := New()
	a.Randomize(r, 0.4, 1234)
	b.Randomize(r, 0.4, 1234)
	if !maps.Equal(a.Snapshot().Grid, b.Snapshot().Grid) {
		t.Fatal("same seed should produce the same soup")
	}
	c := New()
	c.Randomize(r, 0.4, 99)
	if maps.Equal(a.Snapshot().Grid, c.Snapshot().Grid) {
		t.Fatal("different seeds should produce different soups")
	}
	if a.Population() == 0 || a.Population() == r.Area() {
		t.Fatalf("soup density looks wrong: %d of %d cells", a.Population(), r.Area())
	}
}

func TestRandomizeRespectsRect(t *testing.T) {
	e := New()
	e.SetCell(100, 100, true)
	r := Rect{Min: Point{X: 0, Y: 0}, Max: Point{X: 3, Y: 3}}
	e.Randomize(r, 1, 5)
	if e.Population() != r.Area()+1 {
		t.Fatalf("density 1 should fill the rect, got %d", e.Population())
	}
	if _, ok := e.CellAt(100, 100); !ok {
		t.Fatal("cells outside the rect must be untouched")
	}
	e.Randomize(r, 0, 5)
	if e.Population() != 1 {
		t.Fatalf("density 0 should clear the rect, got %d", e.Population())
	}
}

package main

import (
	"fmt"
	"os"

	"lifegrid/pkg/life"
)

type auditCase struct {
	pattern string
	period  int
	dx, dy  int
}

func main() {
	cases := []auditCase{
		{pattern: "block", period: 1},
		{pattern: "blinker", period: 2},
		{pattern: "toad", period: 2},
		{pattern: "beacon", period: 2},
		{pattern: "pulsar", period: 3},
		{pattern: "glider", period: 4, dx: 1, dy: 1},
		{pattern: "lwss", period: 4, dx: -2, dy: 0},
	}

	fmt.Printf("auditing %d catalog patterns\n", len(cases))
	failures := 0
	for _, c := range cases {
		if err := audit(c); err != nil {
			failures++
			fmt.Printf("FAIL %-12s %v\n", c.pattern, err)
			continue
		}
		kind := "oscillator"
		if c.dx != 0 || c.dy != 0 {
			kind = "spaceship"
		} else if c.period == 1 {
			kind = "still life"
		}
		fmt.Printf("OK   %-12s %s period=%d drift=(%d,%d)\n", c.pattern, kind, c.period, c.dx, c.dy)
	}

	if failures > 0 {
		fmt.Printf("%d of %d audits failed\n", failures, len(cases))
		os.Exit(1)
	}
	fmt.Println("all audits passed")
}

func audit(c auditCase) error {
	pattern, ok := life.Lookup(c.pattern)
	if !ok {
		return fmt.Errorf("not in catalog")
	}

	engine := life.New()
	engine.Stamp(pattern, 0, 0)
	initial := cellSet(engine.Snapshot().Grid)
	if len(initial) != len(pattern.Offsets) {
		return fmt.Errorf("stamp placed %d cells, want %d", len(initial), len(pattern.Offsets))
	}

	for step := 1; step < c.period; step++ {
		engine.Step()
		if sameSet(cellSet(engine.Snapshot().Grid), initial, 0, 0) {
			return fmt.Errorf("repeated at step %d, before period %d", step, c.period)
		}
	}
	engine.Step()
	if !sameSet(cellSet(engine.Snapshot().Grid), initial, c.dx, c.dy) {
		return fmt.Errorf("did not recur after %d steps with drift (%d,%d)", c.period, c.dx, c.dy)
	}
	return nil
}

func cellSet(g life.Grid) map[life.Point]bool {
	set := make(map[life.Point]bool, g.Population())
	for p := range g {
		set[p] = true
	}
	return set
}

// sameSet reports whether got equals want shifted by (dx, dy).
func sameSet(got, want map[life.Point]bool, dx, dy int) bool {
	if len(got) != len(want) {
		return false
	}
	for p := range want {
		if !got[life.Point{X: p.X + dx, Y: p.Y + dy}] {
			return false
		}
	}
	return true
}

// Package life implements Conway's Game of Life on an unbounded plane.
//
// The board is sparse: only live cells are stored, so memory scales with the
// population rather than with the coordinate range. Engine wraps the board
// with editing operations and a timed run loop; the stepping rule itself is
// pure and operates on immutable snapshots.
package life

import "maps"

// Point identifies a cell on the plane. Coordinates are plain signed
// integers with no wraparound, so patterns such as gliders travel forever.
type Point struct {
	X, Y int
}

// Cell carries the per-cell state tracked for a live cell. Age counts the
// consecutive generations the cell has survived since it was last born; a
// newborn cell has age zero.
type Cell struct {
	Age int
}

// Grid is the sparse board: a map holding entries for live cells only.
// Absence means dead.
type Grid map[Point]Cell

// NewGrid returns an empty board.
func NewGrid() Grid { return make(Grid) }

// Set makes the cell at p alive with age zero, overwriting any prior age.
func (g Grid) Set(p Point) { g[p] = Cell{} }

// Remove kills the cell at p. Removing a dead cell is a no-op.
func (g Grid) Remove(p Point) { delete(g, p) }

// Has reports whether the cell at p is alive.
func (g Grid) Has(p Point) bool {
	_, ok := g[p]
	return ok
}

// At returns the cell at p and whether it is alive.
func (g Grid) At(p Point) (Cell, bool) {
	c, ok := g[p]
	return c, ok
}

// Population returns the number of live cells.
func (g Grid) Population() int { return len(g) }

// Clone returns an independent copy of the board.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	return maps.Clone(g)
}

// Bounds returns the inclusive bounding rectangle of the live cells. The
// second return is false when the board is empty.
func (g Grid) Bounds() (Rect, bool) {
	var r Rect
	found := false
	for p := range g {
		if !found {
			r = Rect{Min: p, Max: p}
			found = true
			continue
		}
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r, found
}

// Rect is an inclusive axis-aligned rectangle of cells.
type Rect struct {
	Min, Max Point
}

// Width returns the number of columns the rectangle covers.
func (r Rect) Width() int { return r.Max.X - r.Min.X + 1 }

// Height returns the number of rows the rectangle covers.
func (r Rect) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Area returns the number of cells the rectangle covers.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

package life

// neighborOffsets enumerates the eight Moore-neighborhood directions.
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// liveNeighbors counts the live cells in the Moore neighborhood of p.
func liveNeighbors(g Grid, p Point) int {
	n := 0
	for _, d := range neighborOffsets {
		if g.Has(Point{X: p.X + d.X, Y: p.Y + d.Y}) {
			n++
		}
	}
	return n
}

// candidates collects every cell whose state can change this generation: the
// live cells and their Moore neighborhoods. A dead cell with no live
// neighbor can never be born, so nothing outside the set needs a look.
func candidates(g Grid) map[Point]struct{} {
	set := make(map[Point]struct{}, len(g)*4)
	for p := range g {
		set[p] = struct{}{}
		for _, d := range neighborOffsets {
			set[Point{X: p.X + d.X, Y: p.Y + d.Y}] = struct{}{}
		}
	}
	return set
}

// survives applies the B3/S23 rule to one cell: a live cell keeps living
// with two or three live neighbors, a dead cell is born with exactly three.
func survives(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// nextGrid evaluates one generation against cur and returns a freshly built
// successor board. cur is never written, so every candidate is judged
// against the same consistent snapshot. Survivors carry their age plus one;
// births start at age zero.
func nextGrid(cur Grid) Grid {
	next := make(Grid, len(cur))
	for p := range candidates(cur) {
		cell, alive := cur.At(p)
		if !survives(alive, liveNeighbors(cur, p)) {
			continue
		}
		if alive {
			next[p] = Cell{Age: cell.Age + 1}
		} else {
			next[p] = Cell{}
		}
	}
	return next
}

package life

// Built-in patterns. Offsets are anchored at the top-left corner of each
// pattern's bounding box, rows listed top to bottom.
var (
	// Glider is the smallest spaceship. It travels one cell down-right
	// every four generations.
	Glider = Pattern{Name: "glider", Offsets: []Point{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}}

	// Blinker is the smallest oscillator, a row of three cells flipping
	// between horizontal and vertical with period two.
	Blinker = Pattern{Name: "blinker", Offsets: []Point{
		{0, 0}, {1, 0}, {2, 0},
	}}

	// Toad is a period-two oscillator of six cells.
	Toad = Pattern{Name: "toad", Offsets: []Point{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
	}}

	// Beacon is a period-two oscillator of two blocks touching corners.
	Beacon = Pattern{Name: "beacon", Offsets: []Point{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
		{2, 2}, {3, 2},
		{2, 3}, {3, 3},
	}}

	// Pulsar is the classic period-three oscillator, 48 cells in a
	// fourfold-symmetric 13x13 arrangement.
	Pulsar = Pattern{Name: "pulsar", Offsets: []Point{
		{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
		{0, 2}, {5, 2}, {7, 2}, {12, 2},
		{0, 3}, {5, 3}, {7, 3}, {12, 3},
		{0, 4}, {5, 4}, {7, 4}, {12, 4},
		{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
		{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
		{0, 8}, {5, 8}, {7, 8}, {12, 8},
		{0, 9}, {5, 9}, {7, 9}, {12, 9},
		{0, 10}, {5, 10}, {7, 10}, {12, 10},
		{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
	}}

	// LWSS is the lightweight spaceship. It travels two cells left every
	// four generations.
	LWSS = Pattern{Name: "lwss", Offsets: []Point{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	}}

	// RPentomino is the five-cell methuselah that stays chaotic for over
	// a thousand generations.
	RPentomino = Pattern{Name: "r-pentomino", Offsets: []Point{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	}}

	// Diehard vanishes completely after 130 generations.
	Diehard = Pattern{Name: "diehard", Offsets: []Point{
		{6, 0},
		{0, 1}, {1, 1},
		{1, 2}, {5, 2}, {6, 2}, {7, 2},
	}}

	// Acorn is a seven-cell methuselah that runs for 5206 generations.
	Acorn = Pattern{Name: "acorn", Offsets: []Point{
		{1, 0},
		{3, 1},
		{0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2},
	}}

	// Block is the smallest still life.
	Block = Pattern{Name: "block", Offsets: []Point{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
	}}

	// GosperGliderGun emits a fresh glider every 30 generations, growing
	// the population without bound.
	GosperGliderGun = Pattern{Name: "glider-gun", Offsets: []Point{
		{24, 0},
		{22, 1}, {24, 1},
		{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
		{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
		{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
		{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
		{10, 6}, {16, 6}, {24, 6},
		{11, 7}, {15, 7},
		{12, 8}, {13, 8},
	}}
)

func init() {
	for _, p := range []Pattern{
		Glider, Blinker, Toad, Beacon, Pulsar, LWSS,
		RPentomino, Diehard, Acorn, Block, GosperGliderGun,
	} {
		Register(p)
	}
}

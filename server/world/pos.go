package world

import "fmt"

// Pos is a world position: (grid_x, grid_y, depth) identifying which chunk
// a location belongs to (spec.md §3 "World position"). Depth 0 is the
// surface (towns, wilderness); depth > 0 is a dungeon level under the same
// surface tile.
type Pos struct {
	X, Y  int
	Depth int
}

// String renders the position for logs and panic/dump messages.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,d%d)", p.X, p.Y, p.Depth)
}

// Surface reports whether this position is a surface tile (depth 0).
func (p Pos) Surface() bool { return p.Depth == 0 }

// Grid is a cell coordinate within a single chunk.
type Grid struct {
	X, Y int
}

// Add returns the grid offset by (dx, dy).
func (g Grid) Add(dx, dy int) Grid { return Grid{g.X + dx, g.Y + dy} }

// Chebyshev returns the Chebyshev (king-move) distance between g and o,
// the distance metric spec.md uses for radius <= 1 scatter and most
// adjacency checks.
func (g Grid) Chebyshev(o Grid) int {
	dx, dy := abs(g.X-o.X), abs(g.Y-o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Exact returns the Euclidean distance between g and o, rounded down, used
// for scatter distances greater than 1 (spec.md §4.1 "scatter").
func (g Grid) Exact(o Grid) int {
	dx, dy := float64(g.X-o.X), float64(g.Y-o.Y)
	return int(isqrt(dx*dx + dy*dy))
}

func isqrt(v float64) float64 {
	if v <= 0 {
		return 0
	}
	x := v
	for i := 0; i < 30; i++ {
		x = 0.5 * (x + v/x)
	}
	return x
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is a keypad direction, 1..9, with 5 meaning "no movement". The
// table is fixed, matching spec.md §4.1's next_grid contract.
type Direction int

const (
	DirNone      Direction = 5
	DirSouthWest Direction = 1
	DirSouth     Direction = 2
	DirSouthEast Direction = 3
	DirWest      Direction = 4
	DirEast      Direction = 6
	DirNorthWest Direction = 7
	DirNorth     Direction = 8
	DirNorthEast Direction = 9
)

// dirOffsets is the fixed 0..9 keypad-direction table. Index 0 is unused
// (kept so Direction values index directly without an off-by-one).
var dirOffsets = [10]Grid{
	0: {0, 0},
	1: {-1, 1},
	2: {0, 1},
	3: {1, 1},
	4: {-1, 0},
	5: {0, 0},
	6: {1, 0},
	7: {-1, -1},
	8: {0, -1},
	9: {1, -1},
}

// NextGrid returns the grid adjacent to src in direction dir. Direction 5
// (DirNone) is a no-op and returns src unchanged.
func NextGrid(src Grid, dir Direction) Grid {
	if dir < 1 || dir > 9 {
		panic(fmt.Sprintf("world: NextGrid: invalid direction %d", dir))
	}
	off := dirOffsets[dir]
	return Grid{src.X + off.X, src.Y + off.Y}
}

// Opposite returns the direction pointing the opposite way, used by the
// round-trip test in spec.md §8: NextGrid(NextGrid(g,d), Opposite(d)) == g.
func (d Direction) Opposite() Direction {
	if d == DirNone {
		return DirNone
	}
	return Direction(10 - int(d))
}

// CardinalDirections are the four non-diagonal keypad directions, used
// wherever the spec calls for "a uniform cardinal direction" (tunnel
// stepping, monster-confusion misfires).
var CardinalDirections = [4]Direction{DirNorth, DirSouth, DirEast, DirWest}

// AllDirections are the eight movement directions excluding DirNone, used
// by SWEEP-style effects and the Star projection shape.
var AllDirections = [8]Direction{
	DirNorth, DirNorthEast, DirEast, DirSouthEast,
	DirSouth, DirSouthWest, DirWest, DirNorthWest,
}

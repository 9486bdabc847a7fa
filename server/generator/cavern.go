package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// cavernFillPct is the initial noise density handed to the cellular
// automaton (spec.md §4.2.3 "Cavern" names the profile but leaves its
// carve algorithm to the implementation; a standard smoothed-noise cave
// is the idiomatic choice among the profiles that need open irregular
// space rather than rectangular rooms).
const cavernFillPct = 42

// carveCavern runs a cellular-automaton smoothing pass over the
// rectangle [x0,y0)-(x1,y1) of c: seed it with cavernFillPct% floor noise,
// then apply four birth/death passes (a cell with 5+ floor neighbours
// stays or becomes floor; otherwise it reverts to rock), the standard
// "drunk walk" alternative spec.md leaves unspecified for cavern-style
// profiles.
func carveCavern(c *world.Chunk, r *rng.RNG, x0, y0, x1, y1 int) {
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}
	grid := make([][]bool, h)
	for y := range grid {
		grid[y] = make([]bool, w)
		for x := range grid[y] {
			grid[y][x] = r.Chance(cavernFillPct)
		}
	}
	for pass := 0; pass < 4; pass++ {
		grid = caStep(grid)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := world.Grid{X: x0 + x, Y: y0 + y}
			if !c.InBoundsFully(g) {
				continue
			}
			if grid[y][x] {
				c.SetFeat(g, world.FeatFloor)
			}
		}
	}
}

func caStep(grid [][]bool) [][]bool {
	h := len(grid)
	if h == 0 {
		return grid
	}
	w := len(grid[0])
	next := make([][]bool, h)
	for y := range next {
		next[y] = make([]bool, w)
		for x := range next[y] {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					ny, nx := y+dy, x+dx
					if ny < 0 || ny >= h || nx < 0 || nx >= w || grid[ny][nx] {
						n++
					}
				}
			}
			next[y][x] = n >= 5
		}
	}
	return next
}

// Cavern is spec.md §4.2.3's open-cave profile: a single smoothed cellular
// automaton fill across the whole interior, connected, streamered and
// staired like any other profile.
func Cavern(req Request) (*world.Chunk, error) {
	const height, width = 44, 132
	r := rng.Derive(req.Seed, req.Profile.String(), fingerprint(req))
	c := world.New(req.WPos, height, width)
	c.Profile = req.Profile
	carveAndWall(c)

	carveCavern(c, r, 1, 1, width-1, height-1)

	if err := ensureConnectedness(c, r, classicDoorOdds); err != nil {
		return nil, fail(req.Profile, "connectedness", err)
	}
	addStreamers(c, r, DefaultStreamers(r))
	if n := addStairs(c, r, world.FeatMore, 2); n == 0 {
		return nil, fail(req.Profile, "stairs", errNoStairsPlaced)
	}
	addStairs(c, r, world.FeatLess, 1)
	return c, nil
}

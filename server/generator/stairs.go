package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// addStairs places n staircases of feat (spec.md §8 example 5
// "add_stairs(MORE, n)"): candidates are floor cells with exactly walls
// adjacent walls, starting at walls=3 and relaxing down to 0 until n have
// been placed, and no two placed stairs may be closer than
// min(width,height)/4. Returns the number actually placed, which can be
// less than n on a cramped or maze-like level.
func addStairs(c *world.Chunk, r *rng.RNG, feat world.Feature, n int) int {
	minSep := c.Width
	if c.Height < minSep {
		minSep = c.Height
	}
	minSep /= 4

	var placed []world.Grid
	for walls := 3; walls >= 0 && len(placed) < n; walls-- {
		candidates := candidateStairGrids(c, walls)
		order := shuffledIndices(r, len(candidates))
		for _, i := range order {
			if len(placed) >= n {
				break
			}
			g := candidates[i]
			if tooClose(g, placed, minSep) {
				continue
			}
			c.SetFeat(g, feat)
			c.RegisterStair(g, feat)
			placed = append(placed, g)
		}
	}
	return len(placed)
}

func candidateStairGrids(c *world.Chunk, walls int) []world.Grid {
	var out []world.Grid
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			g := world.Grid{X: x, Y: y}
			if !c.InBoundsFully(g) || c.Square(g).Feat != world.FeatFloor {
				continue
			}
			if adjacentWalls(c, g) == walls {
				out = append(out, g)
			}
		}
	}
	return out
}

func adjacentWalls(c *world.Chunk, g world.Grid) int {
	count := 0
	for _, dir := range world.AllDirections {
		n := world.NextGrid(g, dir)
		if !c.InBounds(n) || c.Square(n).Feat.Wall() {
			count++
		}
	}
	return count
}

func tooClose(g world.Grid, placed []world.Grid, minSep int) bool {
	for _, p := range placed {
		if g.Chebyshev(p) < minSep {
			return true
		}
	}
	return false
}

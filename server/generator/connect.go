package generator

import (
	"sort"

	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// floodColor 4-connects every passable square of c into numbered regions
// (spec.md §4.2.2 "Grids are flood-coloured"), returning a color per grid
// (0 means "not passable, uncoloured") and the representative grid of
// each region in ascending color order.
func floodColor(c *world.Chunk) (colors map[world.Grid]int, reps []world.Grid) {
	colors = make(map[world.Grid]int)
	next := 1
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			start := world.Grid{X: x, Y: y}
			if !c.Square(start).Feat.Passable() || colors[start] != 0 {
				continue
			}
			color := next
			next++
			reps = append(reps, start)
			queue := []world.Grid{start}
			colors[start] = color
			for len(queue) > 0 {
				g := queue[0]
				queue = queue[1:]
				for _, dir := range world.CardinalDirections {
					n := world.NextGrid(g, dir)
					if !c.InBounds(n) || colors[n] != 0 {
						continue
					}
					if !c.Square(n).Feat.Passable() {
						continue
					}
					colors[n] = color
					queue = append(queue, n)
				}
			}
		}
	}
	return colors, reps
}

// eraseSmallRegions walls off any region with fewer than minRegionSize
// cells (spec.md §4.2.2 "Small regions (< 9 cells) are erased to solid
// wall"), returning the surviving representative grids in the same order
// they were discovered.
func eraseSmallRegions(c *world.Chunk, colors map[world.Grid]int, reps []world.Grid) []world.Grid {
	counts := make(map[int]int)
	for _, color := range colors {
		counts[color]++
	}
	var survivors []world.Grid
	for _, rep := range reps {
		color := colors[rep]
		if counts[color] >= minRegionSize {
			survivors = append(survivors, rep)
			continue
		}
		for g, gc := range colors {
			if gc == color {
				c.SetFeat(g, world.FeatGranite)
			}
		}
	}
	return survivors
}

// ensureConnectedness implements spec.md §4.2.2 end to end: colour, erase
// undersized regions, then carve a tunnel from the first surviving region
// to every other one so the whole level is reachable from a single flood
// origin. Regions are connected in nearest-representative order so the
// merge tunnels stay short, matching "carving shortest tunnels across
// tile colours".
func ensureConnectedness(c *world.Chunk, r *rng.RNG, odds doorOdds) error {
	colors, reps := floodColor(c)
	survivors := eraseSmallRegions(c, colors, reps)
	if len(survivors) <= 1 {
		return nil
	}

	anchor := survivors[0]
	rest := survivors[1:]
	sort.Slice(rest, func(i, j int) bool {
		return anchor.Chebyshev(rest[i]) < anchor.Chebyshev(rest[j])
	})
	for _, rep := range rest {
		if err := tunnelBetween(c, r, anchor, rep, odds); err != nil {
			return err
		}
	}
	return nil
}

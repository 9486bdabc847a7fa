package visibility

import "github.com/draconisPW/mangband-core/server/world"

// MaxSight is the hard outer floodfill radius spec.md's view update names
// ("floodfill from the player's grid out to MAX_SIGHT").
const MaxSight = 20

// Update recomputes view's currently-visible bits from a floodfill
// centred on origin, obeying wall opacity and lighting (spec.md §4.7
// "View update"). lightRadius is the player's own light radius (from
// player.State.LightRadius); squares
// beyond it are visible only if the chunk itself glows there (InfoGlow)
// or an adjacent square glows.
func Update(v *View, c *world.Chunk, origin world.Grid, lightRadius int) {
	for _, g := range currentlyVisible(v) {
		v.clear(g, BitCurrentlyVisible)
	}

	radius := lightRadius
	if radius < 1 {
		radius = 1
	}
	if radius > MaxSight {
		radius = MaxSight
	}

	visit := map[world.Grid]bool{origin: true}
	queue := []world.Grid{origin}
	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]

		if !c.InBounds(g) || origin.Chebyshev(g) > MaxSight {
			continue
		}
		if !lit(c, g, origin, radius) {
			continue
		}
		markVisible(v, c, g)

		if c.Square(g).Feat.LOSOpaque() {
			continue // light and sight both stop at an opaque cell itself
		}
		for _, dir := range world.AllDirections {
			n := world.NextGrid(g, dir)
			if visit[n] {
				continue
			}
			visit[n] = true
			queue = append(queue, n)
		}
	}
}

// lit reports whether g should be considered visible this pass: within
// the player's own light radius, or the square glows, or flagged NoMap
// special-cases aside, an adjacent square glows (spec.md "self light
// radius + square glow + adjacent light").
func lit(c *world.Chunk, g, origin world.Grid, radius int) bool {
	if origin.Chebyshev(g) <= radius {
		return true
	}
	if c.Square(g).Info.Has(world.InfoGlow) {
		return true
	}
	for _, dir := range world.AllDirections {
		n := world.NextGrid(g, dir)
		if c.InBounds(n) && c.Square(n).Info.Has(world.InfoGlow) {
			return true
		}
	}
	return false
}

func markVisible(v *View, c *world.Chunk, g world.Grid) {
	v.set(g, BitCurrentlyVisible|BitSeenEver)
	if !c.Square(g).Info.Has(world.InfoNoMap) {
		v.set(g, BitLightMemory)
	}
}

func currentlyVisible(v *View) []world.Grid {
	var out []world.Grid
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			if v.bits[y][x].has(BitCurrentlyVisible) {
				out = append(out, world.Grid{X: x, Y: y})
			}
		}
	}
	return out
}

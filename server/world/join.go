package world

// join.go links a chunk's stair squares to the Join grids neighbouring
// chunks use to place arriving players (spec.md §3 "join.up, join.down,
// join.rand", §4.6 "Level transition protocol"). The scanning approach
// mirrors the teacher example's frame-detection code (walk outward from a
// seed square, classify neighbours, stop at the first disqualifying
// square) adapted from block-frame geometry to stair topology.

// RegisterStair records g as a transition point of the given kind on c's
// Join table. A generator profile calls this as it places FeatLess/FeatMore
// features (or rubble/trapdoor variants); callers doing a fresh build may
// pass duplicates freely, RegisterStair does not de-duplicate.
func (c *Chunk) RegisterStair(g Grid, feat Feature) {
	switch feat {
	case FeatLess:
		c.Join.Up = append(c.Join.Up, g)
	case FeatMore:
		c.Join.Down = append(c.Join.Down, g)
	default:
		c.Join.Rand = append(c.Join.Rand, g)
	}
}

// ScanStairs walks every square of c and rebuilds Join.Up/Join.Down/Join.Rand
// from the terrain actually present, discarding any prior join lists. This
// is the recovery path for generators that lay down stairs directly via
// SetFeat instead of calling RegisterStair as they go, and for validating a
// hand-authored chunk (e.g. a town loaded from a data file) before it is
// pinned into the World.
func (c *Chunk) ScanStairs() {
	c.Join.Up = c.Join.Up[:0]
	c.Join.Down = c.Join.Down[:0]
	c.Join.Rand = c.Join.Rand[:0]
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			g := Grid{x, y}
			switch c.Square(g).Feat {
			case FeatLess:
				c.Join.Up = append(c.Join.Up, g)
			case FeatMore:
				c.Join.Down = append(c.Join.Down, g)
			}
		}
	}
}

// EntryGrid picks the grid a player arriving via the given direction should
// be placed on: "down" means the player took a down staircase in the
// previous chunk and must land on an up staircase here (and vice versa).
// Returns false if the chunk
// exposes no matching join grid.
func (c *Chunk) EntryGrid(rng interface{ Intn(int) int }, fromBelow bool) (Grid, bool) {
	candidates := c.Join.Up
	if fromBelow {
		candidates = c.Join.Down
	}
	if len(candidates) == 0 {
		candidates = c.Join.Rand
	}
	if len(candidates) == 0 {
		return Grid{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

package world

// Line returns the discrete Bresenham path from a to b inclusive, the
// "standard symmetric Bresenham variant" spec.md §4.7 calls for. It is
// shared by LineOfSight, the projection engine's Bolt/Beam shapes, and
// Chunk.Scatter's optional LOS requirement, keeping one canonical
// implementation rather than three.
func Line(a, b Grid) []Grid {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X >= b.X {
		sx = -1
	}
	if a.Y >= b.Y {
		sy = -1
	}
	err := dx + dy

	path := []Grid{a}
	x, y := a.X, a.Y
	for x != b.X || y != b.Y {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		path = append(path, Grid{x, y})
	}
	return path
}

// LineOfSight reports whether b is visible from a: walking the discrete
// line between them, no intermediate cell may be LOS-opaque (spec.md
// §4.7). The endpoints themselves are never tested for opacity.
func LineOfSight(c *Chunk, a, b Grid) bool {
	if a == b {
		return true
	}
	path := Line(a, b)
	for i := 1; i < len(path)-1; i++ {
		g := path[i]
		if !c.InBounds(g) {
			return false
		}
		if c.Square(g).Feat.LOSOpaque() {
			return false
		}
	}
	return true
}

// ScatterPredicate is an additional caller-supplied acceptance test for
// Chunk.Scatter.
type ScatterPredicate func(g Grid) bool

// Scatter picks a uniform-random in-bounds grid within distance d of
// origin — Chebyshev distance for d <= 1, exact (Euclidean) distance for
// d > 1, per spec.md §4.1 — optionally requiring line of sight from
// origin and/or a caller predicate. It returns false if no feasible grid
// exists. d == 0 returns origin itself iff origin satisfies the
// predicate, matching the spec.md §8 boundary behaviour.
func (c *Chunk) Scatter(rng interface{ Intn(int) int }, origin Grid, d int, needLOS bool, pred ScatterPredicate) (Grid, bool) {
	feasible := c.scratchGrids[:0]
	if d == 0 {
		if c.InBounds(origin) && (pred == nil || pred(origin)) {
			return origin, true
		}
		return Grid{}, false
	}
	minX, maxX := origin.X-d, origin.X+d
	minY, maxY := origin.Y-d, origin.Y+d
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			g := Grid{x, y}
			if !c.InBounds(g) {
				continue
			}
			var dist int
			if d <= 1 {
				dist = origin.Chebyshev(g)
			} else {
				dist = origin.Exact(g)
			}
			if dist > d {
				continue
			}
			if needLOS && !LineOfSight(c, origin, g) {
				continue
			}
			if pred != nil && !pred(g) {
				continue
			}
			feasible = append(feasible, g)
		}
	}
	c.scratchGrids = feasible[:0]
	if len(feasible) == 0 {
		return Grid{}, false
	}
	return feasible[rng.Intn(len(feasible))], true
}

// ScatterN returns up to n distinct feasible grids via a Fisher-Yates
// partial shuffle of the feasible set, the vectorised variant spec.md
// §4.1 describes.
func (c *Chunk) ScatterN(rng interface{ Intn(int) int }, origin Grid, d, n int, needLOS bool, pred ScatterPredicate) []Grid {
	var feasible []Grid
	if d == 0 {
		if c.InBounds(origin) && (pred == nil || pred(origin)) {
			feasible = append(feasible, origin)
		}
	} else {
		minX, maxX := origin.X-d, origin.X+d
		minY, maxY := origin.Y-d, origin.Y+d
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				g := Grid{x, y}
				if !c.InBounds(g) {
					continue
				}
				var dist int
				if d <= 1 {
					dist = origin.Chebyshev(g)
				} else {
					dist = origin.Exact(g)
				}
				if dist > d {
					continue
				}
				if needLOS && !LineOfSight(c, origin, g) {
					continue
				}
				if pred != nil && !pred(g) {
					continue
				}
				feasible = append(feasible, g)
			}
		}
	}
	if n > len(feasible) {
		n = len(feasible)
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(feasible)-i)
		feasible[i], feasible[j] = feasible[j], feasible[i]
	}
	return feasible[:n]
}

package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/draconisPW/mangband-core/server/world"
)

// expand computes p's affected cells in travel order. Damage falloff
// (distance-based linear/CONST) is applied separately in damage.go;
// Intensity here only carries the cone-shape strength factor spec.md
// §4.3 describes, 1.0 for every other shape.
func expand(c *world.Chunk, p Params) []Cell {
	if p.Flags.Has(FlagJump) {
		return []Cell{{Grid: p.Origin, Dist: 0, Intensity: 1}}
	}
	switch p.Shape {
	case ShapeSpot:
		return expandSpot(p)
	case ShapeBolt:
		return expandBolt(c, p)
	case ShapeBeam:
		return expandBeam(c, p)
	case ShapeBall:
		return expandBall(c, p, p.Target)
	case ShapeBlast:
		return expandBall(c, p, p.Origin)
	case ShapeStar:
		return expandStar(c, p)
	case ShapeCone:
		return expandCone(c, p)
	default:
		return nil
	}
}

func expandSpot(p Params) []Cell {
	return []Cell{{Grid: p.Target, Dist: 0, Intensity: 1}}
}

// expandBolt walks the line from origin to target, stopping at (and
// including) the first LOS-opaque cell: "first obstructing hit ends
// travel" (spec.md §4.3 "Bolt").
func expandBolt(c *world.Chunk, p Params) []Cell {
	path := world.Line(p.Origin, p.Target)
	var out []Cell
	for i, g := range path {
		if i == 0 {
			continue // origin itself is never an affected cell
		}
		out = append(out, Cell{Grid: g, Dist: i, Intensity: 1})
		if !c.InBounds(g) || c.Square(g).Feat.LOSOpaque() {
			break
		}
	}
	return out
}

// expandBeam walks the full line from origin to target; unlike Bolt it
// never stops early, so every cell on the segment is affected (spec.md
// §4.3 "Beam").
func expandBeam(c *world.Chunk, p Params) []Cell {
	path := world.Line(p.Origin, p.Target)
	out := make([]Cell, 0, len(path)-1)
	for i, g := range path {
		if i == 0 {
			continue
		}
		out = append(out, Cell{Grid: g, Dist: i, Intensity: 1})
	}
	return out
}

// expandBall affects every in-bounds cell within p.Radius of centre that
// also has line of sight back to centre: a burst doesn't reach around or
// through a wall to hit a cell it can't see (spec.md §4.3 "Ball",
// §8 "dist(c,T) ≤ r ∧ in_bounds(c) ∧ has_los(T,c)"). With FlagThru the ball
// may pass over actors during its initial travel to centre, a concern for
// the caller applying hooks, not for which cells are in the final
// affected set.
func expandBall(c *world.Chunk, p Params, centre world.Grid) []Cell {
	var out []Cell
	r := p.Radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			g := world.Grid{X: centre.X + dx, Y: centre.Y + dy}
			if !c.InBounds(g) {
				continue
			}
			var dist int
			if r <= 1 {
				dist = centre.Chebyshev(g)
			} else {
				dist = centre.Exact(g)
			}
			if dist > r {
				continue
			}
			if dist > 0 && !world.LineOfSight(c, centre, g) {
				continue
			}
			out = append(out, Cell{Grid: g, Dist: dist, Intensity: 1})
		}
	}
	return out
}

// expandStar fires a beam along each of the eight keypad directions out to
// p.Radius, stopping each ray at the chunk boundary (spec.md §4.3 "Star:
// 8 beams from origin along keypad directions").
func expandStar(c *world.Chunk, p Params) []Cell {
	var out []Cell
	for _, dir := range world.AllDirections {
		g := p.Origin
		for dist := 1; dist <= p.Radius; dist++ {
			g = world.NextGrid(g, dir)
			if !c.InBounds(g) {
				break
			}
			out = append(out, Cell{Grid: g, Dist: dist, Intensity: 1})
			if c.Square(g).Feat.LOSOpaque() {
				break
			}
		}
	}
	return out
}

// expandCone affects every cell within p.Radius of origin whose angle from
// the origin-to-target vector falls within ±p.DegreesOfArc/2, weighting
// each by diameter_of_source/(source_dist + diameter_of_source) (spec.md
// §4.3 "Cone/Arc").
func expandCone(c *world.Chunk, p Params) []Cell {
	axis := mgl64.Vec2{float64(p.Target.X - p.Origin.X), float64(p.Target.Y - p.Origin.Y)}
	axisAngle := math.Atan2(axis.Y(), axis.X())
	halfArc := float64(p.DegreesOfArc) * math.Pi / 360

	diam := p.DiameterOfSource
	if diam <= 0 {
		diam = 1
	}

	var out []Cell
	r := p.Radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			g := world.Grid{X: p.Origin.X + dx, Y: p.Origin.Y + dy}
			if !c.InBounds(g) {
				continue
			}
			dist := p.Origin.Exact(g)
			if dist == 0 || dist > r {
				continue
			}
			ray := mgl64.Vec2{float64(dx), float64(dy)}
			delta := angleDelta(math.Atan2(ray.Y(), ray.X()), axisAngle)
			if delta > halfArc {
				continue
			}
			intensity := float64(diam) / (float64(dist) + float64(diam))
			out = append(out, Cell{Grid: g, Dist: dist, Intensity: intensity})
		}
	}
	return out
}

func angleDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

package generator

import (
	"fmt"

	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// doorOdds is the profile-tunable chance (out of 100) that a tunnel
// crossing an existing floor square gets doored rather than left open
// (spec.md §4.2.1 "intersections are doored ... per profile probabilities").
type doorOdds struct {
	Open   int
	Closed int
	Locked int
	Broken int
	Secret int
}

// classicDoorOdds is the door-kind split classic/modified/moria profiles
// use at a tunnel intersection.
var classicDoorOdds = doorOdds{Open: 30, Closed: 45, Locked: 10, Broken: 10, Secret: 5}

// tunnelBetween carves a corridor from a to b, stepping diagonally-biased
// toward the target and classifying every obstacle it meets along the way
// (spec.md §4.2.1 "Obstacle classification"). It widens the corridor by
// one perpendicular cell when the neighbouring square is still blank rock,
// and occasionally leaves a "hole" marker (InfoStairs) on long straight
// runs through rock. A tunnel that exceeds tunnelIterationCap without
// reaching b fails rather than looping forever.
func tunnelBetween(c *world.Chunk, r *rng.RNG, a, b world.Grid, odds doorOdds) error {
	cur := a
	straight := 0
	for i := 0; i < tunnelIterationCap; i++ {
		if cur == b {
			return nil
		}
		dir := stepToward(cur, b, r)
		next := world.NextGrid(cur, dir)
		if !c.InBoundsFully(next) {
			cur = next
			continue
		}

		sq := c.Square(next)
		carvedRock := false
		switch {
		case sq.Feat.Permanent():
			// impassable: skip this step, retry from cur with a fresh
			// random nudge so the walk doesn't get stuck hugging the wall.
			cur = jitter(cur, r)
			continue
		case sq.Info.Has(world.InfoWallOuter):
			carveDoorOrFloor(c, next, odds, r)
		case sq.Info.Has(world.InfoRoom):
			// interior: cross quickly, no carving needed.
		case sq.Feat.Wall():
			c.SetFeat(next, world.FeatFloor)
			widenPerpendicular(c, cur, next, r)
			carvedRock = true
		case sq.Feat == world.FeatFloor && !sq.Info.Has(world.InfoRoom):
			carveDoorOrFloor(c, next, odds, r)
		default:
			c.SetFeat(next, world.FeatFloor)
		}

		if carvedRock {
			straight++
		} else {
			straight = 0
		}
		if straight > 6 && r.Chance(10) {
			markHole(c, next)
			straight = 0
		}
		cur = next
	}
	return fmt.Errorf("tunnel from %v to %v exceeded %d iterations", a, b, tunnelIterationCap)
}

// stepToward picks the keypad direction that most reduces the remaining
// distance to target, with an 80% bias toward the axis-correct move and a
// 20% chance of a random cardinal nudge (spec.md §4.2.1's corridor walk is
// not a straight line; it wanders).
func stepToward(cur, target world.Grid, r *rng.RNG) world.Direction {
	if r.Chance(20) {
		return world.CardinalDirections[r.Intn(len(world.CardinalDirections))]
	}
	dx, dy := target.X-cur.X, target.Y-cur.Y
	switch {
	case dx == 0 && dy == 0:
		return world.DirNone
	case dx == 0:
		if dy > 0 {
			return world.DirSouth
		}
		return world.DirNorth
	case dy == 0:
		if dx > 0 {
			return world.DirEast
		}
		return world.DirWest
	default:
		switch {
		case dx > 0 && dy > 0:
			return world.DirSouthEast
		case dx > 0 && dy < 0:
			return world.DirNorthEast
		case dx < 0 && dy > 0:
			return world.DirSouthWest
		default:
			return world.DirNorthWest
		}
	}
}

func jitter(cur world.Grid, r *rng.RNG) world.Grid {
	dir := world.CardinalDirections[r.Intn(len(world.CardinalDirections))]
	return world.NextGrid(cur, dir)
}

func carveDoorOrFloor(c *world.Chunk, g world.Grid, odds doorOdds, r *rng.RNG) {
	roll := r.Intn(100)
	switch {
	case roll < odds.Open:
		c.SetFeat(g, world.FeatOpen)
	case roll < odds.Open+odds.Closed:
		c.SetFeat(g, world.FeatClosed)
	case roll < odds.Open+odds.Closed+odds.Locked:
		c.SetFeat(g, world.FeatClosed)
	case roll < odds.Open+odds.Closed+odds.Locked+odds.Broken:
		c.SetFeat(g, world.FeatBroken)
	default:
		c.SetFeat(g, world.FeatSecret)
	}
}

// widenPerpendicular occasionally carves the cell perpendicular to travel
// direction when it is still blank rock (spec.md §4.2.1 "Tunnels may be
// widened by one cell perpendicular where room permits").
func widenPerpendicular(c *world.Chunk, from, to world.Grid, r *rng.RNG) {
	if !r.Chance(15) {
		return
	}
	var side world.Grid
	if to.X-from.X != 0 {
		side = to.Add(0, 1)
	} else {
		side = to.Add(1, 0)
	}
	if c.InBoundsFully(side) && blank(c, side) {
		c.SetFeat(side, world.FeatFloor)
	}
}

// markHole sets InfoStairs on a long straight corridor cell (spec.md
// §4.2.1's corridor "holes"). addStairs does not read InfoStairs; it picks
// stair sites by its own criteria whether or not a cell is marked.
func markHole(c *world.Chunk, g world.Grid) {
	sq := c.Square(g)
	sq.Info = sq.Info.Set(world.InfoStairs)
}

package effect

import (
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
)

// earthquakeOddsDenominator splits a marked player cell three ways
// (dodge/bash/crush), matching the "1 in 3 each" outcome odds.
const earthquakeOddsDenominator = 3

// Destruction implements DESTRUCTION(radius): silently wall every cell
// within radius of p.Origin to granite, except pitfloor-marked cells, and
// remove every monster caught inside (non-pitfloor). Players caught
// inside are blinded if the cell held a light or dark feature before the
// wipe and are otherwise unharmed; this matches spec.md's "remembers
// which players to hurt (blind on light/dark)" framing, where the
// blind-or-not decision depends on what the cell was, not on damage.
func Destruction(ctx *Context, origin world.Grid, radius int) Result {
	c := ctx.Chunk
	noticed := false
	for _, off := range ringsWithin(radius) {
		g := origin.Add(off.X, off.Y)
		if !c.InBoundsFully(g) {
			continue
		}
		sq := c.Square(g)
		if sq.Feat == world.FeatFloorSafe {
			continue // pitfloor: spared by DESTRUCTION
		}
		blinding := sq.Feat == world.FeatFountain || sq.Feat == world.FeatFntDried
		if sq.Occupant() == world.OccupantMonster {
			c.DeleteMonster(sq.MonsterSlot())
			noticed = true
		} else if sq.Occupant() == world.OccupantPlayer && blinding {
			if id, ok := c.PlayerAt(g); ok && ctx.PlayerAt != nil {
				if pl := ctx.PlayerAt(id); pl != nil {
					pl.Timed.Inc(ctx.Status, status.Blind, 10)
				}
			}
		}
		c.SetFeat(g, world.FeatGranite)
		noticed = true
	}
	return Result{Noticed: noticed}
}

// WipeArea implements WIPE_AREA(radius): like Destruction but clears
// every affected cell to floor instead of walling it, and does not
// remove monsters or blind players.
func WipeArea(ctx *Context, origin world.Grid, radius int) Result {
	c := ctx.Chunk
	noticed := false
	for _, off := range ringsWithin(radius) {
		g := origin.Add(off.X, off.Y)
		if !c.InBoundsFully(g) {
			continue
		}
		if c.Square(g).Feat == world.FeatFloor {
			continue
		}
		c.SetFeat(g, world.FeatFloor)
		noticed = true
	}
	return Result{Noticed: noticed}
}

// Earthquake implements EARTHQUAKE(radius, targeted): each cell within
// radius has a 15% chance of being marked; marked monster cells kill or
// relocate the monster to a safe cell, marked player cells dodge, are
// bashed, or are crushed (roughly 1 in 3 each), and marked wall/door
// cells are rubble-mutated.
func Earthquake(ctx *Context, origin world.Grid, radius int, targeted bool) Result {
	c := ctx.Chunk
	noticed := false
	for _, off := range ringsWithin(radius) {
		g := origin.Add(off.X, off.Y)
		if !c.InBoundsFully(g) {
			continue
		}
		if !ctx.RNG.Chance(15) {
			continue
		}
		noticed = true
		sq := c.Square(g)
		switch sq.Occupant() {
		case world.OccupantMonster:
			idx := sq.MonsterSlot()
			if safe, ok := c.Scatter(ctx.RNG, g, radius+1, false, func(s world.Grid) bool {
				return c.Square(s).Feat.Passable() && c.Square(s).Occupant() == world.OccupantNone
			}); ok {
				c.SwapActors(g, safe)
				c.Monsters[idx].Grid = safe
			} else {
				c.DeleteMonster(idx)
			}
		case world.OccupantPlayer:
			if id, ok := c.PlayerAt(g); ok && ctx.PlayerAt != nil {
				pl := ctx.PlayerAt(id)
				switch ctx.RNG.Intn(earthquakeOddsDenominator) {
				case 0:
					// dodge: no effect
				case 1:
					damagePlayer(ctx, pl, 2+ctx.RNG.Die(2, 4), "a shaking wall")
				default:
					damagePlayer(ctx, pl, 10+ctx.RNG.Die(4, 8), "a collapsing ceiling")
				}
			}
		}
		if sq.Feat.Wall() || sq.Feat.Door() {
			c.SetFeat(g, world.FeatRubble)
		}
	}
	_ = targeted
	return Result{Noticed: noticed}
}

// Detonate removes from the chunk every player-controlled monster whose
// race never moves (jellies, molds and the like). No burst or breath is
// fired, and player-controlled monsters that can move, vortices included,
// are left in place.
func Detonate(ctx *Context) Result {
	c := ctx.Chunk
	noticed := false
	for i := 1; i < len(c.Monsters); i++ {
		m := &c.Monsters[i]
		if !m.Alive() || m.Master == 0 {
			continue
		}
		if m.Race.NeverMove {
			c.DeleteMonster(i)
			noticed = true
		}
	}
	return Result{Noticed: noticed}
}

// ringsWithin returns every grid offset within Chebyshev radius r of the
// origin, inclusive, used by the three area effects above. It is a plain
// nested scan rather than projection.RingOffsets since area effects need
// the filled disc, not one exact-distance shell.
func ringsWithin(r int) []world.Grid {
	out := make([]world.Grid, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			out = append(out, world.Grid{X: dx, Y: dy})
		}
	}
	return out
}

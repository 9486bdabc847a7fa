package effect

import (
	"github.com/draconisPW/mangband-core/server/projection"
	"github.com/draconisPW/mangband-core/server/world"
)

// meleeHitChancePct is the flat connect chance MeleeBlows/Sweep roll for
// each attack; no to-hit-versus-AC calculation is made. It stands in for
// spec.md's "if the attack hits" gate.
const meleeHitChancePct = 65

// MeleeBlows implements MELEE_BLOWS(dmg, element): step into an adjacent
// cell and attack it; on a connect, additionally fire a zero-radius
// projection of p.Element at the target, matching spec.md's "if the
// attack hits, fire a secondary zero-radius projection at the target".
func MeleeBlows(ctx *Context, p Params) Result {
	target := p.Target
	if p.Dir != 0 {
		target = world.NextGrid(p.Origin, p.Dir)
	}
	if p.Origin.Chebyshev(target) != 1 {
		return fail(ctx, "that is not adjacent")
	}
	if !ctx.RNG.Chance(meleeHitChancePct) {
		return Result{}
	}
	pp := p
	pp.Target = target
	return project(ctx, pp, projection.ShapeSpot, pp.Flags|projection.FlagKill|projection.FlagPlay)
}

// Sweep implements SWEEP: attack all 8 adjacent cells, each independently
// resolved the way MeleeBlows resolves a single direction.
func Sweep(ctx *Context, p Params) Result {
	noticed := false
	for _, dir := range world.AllDirections {
		pp := p
		pp.Dir = dir
		r := MeleeBlows(ctx, pp)
		noticed = noticed || r.Noticed
	}
	return Result{Noticed: noticed}
}

// lash implements LASH(range): a finite beam from a polymorphed actor
// whose damage is the first blow's max roll plus half of each other
// blow's max roll, and whose element is blow 0's element (spec.md's
// exact wording for LASH). A positive p.Range cuts the beam short at that
// many cells from the origin.
func lash(ctx *Context, p Params) Result {
	if len(p.Blows) == 0 {
		return Result{}
	}
	dam := p.Blows[0].Dice * p.Blows[0].Sides
	for _, b := range p.Blows[1:] {
		dam += (b.Dice * b.Sides) / 2
	}
	pp := p
	if p.Range > 0 {
		if path := world.Line(p.Origin, p.Target); len(path)-1 > p.Range {
			pp.Target = path[p.Range]
		}
	}
	pp.Dam = dam
	pp.Element = p.Blows[0].Element
	return project(ctx, pp, projection.ShapeBeam, pp.Flags|projection.FlagKill|projection.FlagPlay)
}

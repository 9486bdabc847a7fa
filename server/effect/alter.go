package effect

import (
	"github.com/draconisPW/mangband-core/server/projection"
	"github.com/draconisPW/mangband-core/server/world"
)

// Alter implements ALTER: a grid-only projection that replaces the
// terrain at target with newFeat (stone-to-mud, trap disarm, door
// creation and the like all reduce to this one terrain swap; which
// feature to swap to is the caller's decision, since that vocabulary
// lives in server/world's Feature codes, not in effect).
func Alter(ctx *Context, target world.Grid, newFeat world.Feature) Result {
	c := ctx.Chunk
	if !c.InBounds(target) {
		return fail(ctx, "there is nothing there to alter")
	}
	if c.Square(target).Feat == newFeat {
		return Result{}
	}
	c.SetFeat(target, newFeat)
	return Result{Noticed: true}
}

// Touch implements TOUCH: a zero-radius, adjacency-only projection
// applied to whichever monster or player occupies an adjacent cell.
// TouchAware additionally forces awareness of the element on hit
// (spec.md's "TOUCH, TOUCH_AWARE").
func Touch(ctx *Context, p Params, aware bool) Result {
	target := p.Target
	if p.Dir != 0 {
		target = world.NextGrid(p.Origin, p.Dir)
	}
	if p.Origin.Chebyshev(target) != 1 {
		return fail(ctx, "that is not adjacent")
	}
	pp := p
	pp.Target = target
	flags := pp.Flags | projection.FlagKill | projection.FlagPlay
	if aware {
		flags |= projection.FlagAware
	}
	return project(ctx, pp, projection.ShapeSpot, flags)
}

package effect

import (
	"github.com/draconisPW/mangband-core/server/projection"
	"github.com/draconisPW/mangband-core/server/world"
)

// Result reports what a Dispatch call affected, so the caller can decide
// whether to spend a turn, print a "nothing happens" message, or award
// experience (spec.md §4.4 "return whether anything was noticed").
type Result struct {
	Noticed    bool
	Failed     bool // e.g. invalid direction, forbidden level
	FailureMsg string
}

func fail(ctx *Context, msg string) Result {
	ctx.say(msg)
	return Result{Failed: true, FailureMsg: msg}
}

// Dispatch executes one named effect against ctx and reports the result.
// Shape-based effects (BALL, BEAM, BOLT family, BREATH, SPOT, STRIKE,
// SWARM, STAR family, ARC, LINE) all funnel through project, which wraps
// server/projection with the monster/player hooks that apply damage;
// the remaining kinds (area
// effects, heals, curse/tap, ALTER/TOUCH, WONDER, melee) have their own
// entry points in area.go, heal.go, melee.go and wonder.go.
func Dispatch(ctx *Context, p Params) Result {
	switch p.Kind {
	case KindBall:
		return project(ctx, p, projection.ShapeBall, p.Flags|projection.FlagGrid|projection.FlagItem|projection.FlagKill|projection.FlagPlay)
	case KindBeam:
		return project(ctx, p, projection.ShapeBeam, p.Flags)
	case KindBeamObvious:
		return project(ctx, p, projection.ShapeBeam, p.Flags|projection.FlagAware)
	case KindBolt:
		return project(ctx, p, projection.ShapeBolt, p.Flags)
	case KindBoltAware:
		return project(ctx, p, projection.ShapeBolt, p.Flags|projection.FlagAware)
	case KindBoltOrBeam:
		shape := projection.ShapeBolt
		if ctx.RNG.Chance(p.BeamChance) {
			shape = projection.ShapeBeam
		}
		return project(ctx, p, shape, p.Flags)
	case KindBoltMelee:
		if p.Origin.Chebyshev(p.Target) > 1 {
			return fail(ctx, "that is out of range")
		}
		return project(ctx, p, projection.ShapeBolt, p.Flags)
	case KindBreath:
		return project(ctx, p, projection.ShapeCone, p.Flags|projection.FlagArc|projection.FlagGrid|projection.FlagKill|projection.FlagPlay)
	case KindSpot:
		return project(ctx, p, projection.ShapeSpot, p.Flags)
	case KindStrike:
		return project(ctx, p, projection.ShapeBall, p.Flags|projection.FlagGrid|projection.FlagKill|projection.FlagPlay)
	case KindSwarm:
		return swarm(ctx, p)
	case KindStar:
		return project(ctx, p, projection.ShapeStar, p.Flags|projection.FlagGrid|projection.FlagKill|projection.FlagPlay)
	case KindStarBall:
		return starBall(ctx, p)
	case KindArc:
		return project(ctx, p, projection.ShapeCone, p.Flags|projection.FlagArc|projection.FlagGrid|projection.FlagKill|projection.FlagPlay)
	case KindLine:
		return project(ctx, p, projection.ShapeBeam, p.Flags)
	case KindLash:
		return lash(ctx, p)
	case KindProjectLOS, KindProjectLOSAware:
		flags := p.Flags | projection.FlagKill | projection.FlagPlay
		if p.Kind == KindProjectLOSAware {
			flags |= projection.FlagAware
		}
		return projectLOS(ctx, p, flags)
	}
	return Result{}
}

// project is the common shape-dispatch path shared by every simple
// projectile Kind: run server/projection with hooks that apply monster
// and player damage, and fold the hooks' noticed-ness into the returned
// Result.
func project(ctx *Context, p Params, shape projection.Shape, flags projection.Flag) Result {
	pp := projection.Params{
		Shape:            shape,
		Flags:            flags,
		Origin:           p.Origin,
		Target:           p.Target,
		Radius:           p.Radius,
		DegreesOfArc:     p.DegreesOfArc,
		DiameterOfSource: p.DiameterOfSource,
		Element:          p.Element,
	}
	_, noticed := projection.Project(ctx.Chunk, pp, hooksFor(ctx, p))
	return Result{Noticed: noticed}
}

// hooksFor builds the projection.Hooks closure set for p: monster/player
// damage for anything carrying a Dam, gated by the travel flags project
// already set on pp.Flags. No Grid or Object hook is set, so terrain and
// floor items are left unchanged.
func hooksFor(ctx *Context, p Params) projection.Hooks {
	return projection.Hooks{
		Monster: func(g world.Grid, cell projection.Cell) bool {
			idx := ctx.Chunk.Square(g).MonsterSlot()
			if idx <= 0 {
				return false
			}
			dam := projection.DamageAt(p.Dam, cell, p.Radius, p.Flags, p.Resist)
			damageMonster(ctx, idx, dam)
			return dam > 0
		},
		Player: func(g world.Grid, cell projection.Cell) bool {
			id, ok := ctx.Chunk.PlayerAt(g)
			if !ok || ctx.PlayerAt == nil {
				return false
			}
			target := ctx.PlayerAt(id)
			dam := projection.DamageAt(p.Dam, cell, p.Radius, p.Flags, p.Resist)
			damagePlayer(ctx, target, dam, "a projection")
			return dam > 0
		},
	}
}

// swarm fires SWARM(n): n independent bolt casts at the same target,
// each resolved fully (and independently noticed) before the next.
func swarm(ctx *Context, p Params) Result {
	res := Result{}
	for i := 0; i < p.N; i++ {
		r := project(ctx, p, projection.ShapeBolt, p.Flags)
		res.Noticed = res.Noticed || r.Noticed
	}
	return res
}

// starBall fires STAR's eight rays, then a BALL burst at the origin,
// matching spec.md's "STAR_BALL" alias.
func starBall(ctx *Context, p Params) Result {
	r1 := project(ctx, p, projection.ShapeStar, p.Flags|projection.FlagGrid|projection.FlagKill|projection.FlagPlay)
	r2 := project(ctx, p, projection.ShapeBlast, p.Flags|projection.FlagGrid|projection.FlagKill|projection.FlagPlay)
	return Result{Noticed: r1.Noticed || r2.Noticed}
}

// projectLOS applies the element directly to every actor in line of
// sight of p.Origin, skipping shape expansion entirely (spec.md
// "PROJECT_LOS ... apply projection directly to every actor in line of
// sight from the origin").
func projectLOS(ctx *Context, p Params, flags projection.Flag) Result {
	noticed := false
	cell := projection.Cell{Dist: 0, Intensity: 1}
	for y := 0; y < ctx.Chunk.Height; y++ {
		for x := 0; x < ctx.Chunk.Width; x++ {
			g := world.Grid{X: x, Y: y}
			if !world.LineOfSight(ctx.Chunk, p.Origin, g) {
				continue
			}
			switch ctx.Chunk.Square(g).Occupant() {
			case world.OccupantMonster:
				if flags.Has(projection.FlagKill) {
					idx := ctx.Chunk.Square(g).MonsterSlot()
					dam := projection.DamageAt(p.Dam, cell, p.Radius, p.Flags, p.Resist)
					if damageMonster(ctx, idx, dam) {
						noticed = true
					} else if dam > 0 {
						noticed = true
					}
				}
			case world.OccupantPlayer:
				if flags.Has(projection.FlagPlay) && ctx.PlayerAt != nil {
					id, _ := ctx.Chunk.PlayerAt(g)
					target := ctx.PlayerAt(id)
					dam := projection.DamageAt(p.Dam, cell, p.Radius, p.Flags, p.Resist)
					damagePlayer(ctx, target, dam, "a wave of force")
					if dam > 0 {
						noticed = true
					}
				}
			}
		}
	}
	return Result{Noticed: noticed}
}

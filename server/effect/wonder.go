package effect

import (
	"github.com/google/uuid"

	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
)

// wonderBand is one entry of the WONDER dispatch table: a roll at or
// below Max (after the level/5 offset) selects this sub-effect.
type wonderBand struct {
	max int
	run func(ctx *Context, p Params) Result
}

// wonderTable lists WONDER's sub-effects in ascending roll order, the
// same "roughly escalating power" ordering spec.md describes: clone,
// speed, heal, poly, missile, conf, stinking-cloud, line, bolt-or-beam,
// ball, earthquake, destruction, banish, dispel.
var wonderTable = []wonderBand{
	{max: 5, run: cloneBand},
	{max: 10, run: speedBand},
	{max: 15, run: func(ctx *Context, p Params) Result {
		return MonHealHP(ctx, p.SourceMonster, 20)
	}},
	{max: 20, run: polyBand},
	{max: 25, run: func(ctx *Context, p Params) Result {
		pp := p
		pp.Element = world.ElemMissile
		pp.Dam = 2 * ctx.RNG.Die(6, 4)
		return Dispatch(ctx, withKind(pp, KindBolt))
	}},
	{max: 30, run: confBand},
	{max: 35, run: func(ctx *Context, p Params) Result {
		pp := p
		pp.Element = world.ElemPoison
		pp.Dam = 12
		pp.Radius = 2
		return Dispatch(ctx, withKind(pp, KindBall))
	}},
	{max: 40, run: func(ctx *Context, p Params) Result {
		pp := p
		pp.Dam = 3*ctx.RNG.Die(4, 6) + 10
		return Dispatch(ctx, withKind(pp, KindLine))
	}},
	{max: 45, run: func(ctx *Context, p Params) Result {
		pp := p
		pp.Dam = 3*ctx.RNG.Die(3, 8) + 10
		return Dispatch(ctx, withKind(pp, KindBoltOrBeam))
	}},
	{max: 50, run: func(ctx *Context, p Params) Result {
		pp := p
		pp.Dam = 4 * ctx.RNG.Die(8, 8)
		return Dispatch(ctx, withKind(pp, KindBall))
	}},
	{max: 55, run: func(ctx *Context, p Params) Result {
		pp := p
		pp.Radius = 10
		return Earthquake(ctx, pp.Origin, pp.Radius, false)
	}},
	{max: 60, run: destructionBand},
	{max: 65, run: banishBand},
	{max: 70, run: dispelBand},
}

func withKind(p Params, k Kind) Params {
	p.Kind = k
	return p
}

// targetMonster resolves the monster occupying g, or nil if there is
// none, the same Square/MonsterSlot lookup hooksFor uses.
func targetMonster(ctx *Context, g world.Grid) *world.Monster {
	idx := ctx.Chunk.Square(g).MonsterSlot()
	if idx <= 0 {
		return nil
	}
	m := &ctx.Chunk.Monsters[idx]
	if !m.Alive() {
		return nil
	}
	return m
}

// targetPlayer resolves the player occupying g, or nil if there is none
// or ctx has no PlayerAt lookup wired.
func targetPlayer(ctx *Context, g world.Grid) *player.Player {
	id, ok := ctx.Chunk.PlayerAt(g)
	if !ok || ctx.PlayerAt == nil {
		return nil
	}
	return ctx.PlayerAt(id)
}

// cloneBand implements WONDER's clone sub-effect: the casting monster
// spawns an identical copy of itself in a free adjacent cell.
func cloneBand(ctx *Context, p Params) Result {
	m := p.SourceMonster
	if m == nil || !m.Alive() {
		return Result{}
	}
	c := ctx.Chunk
	free, ok := c.Scatter(ctx.RNG, m.Grid, 1, false, func(g world.Grid) bool {
		return c.Square(g).Feat.Passable() && c.Square(g).Occupant() == world.OccupantNone
	})
	if !ok {
		return Result{}
	}
	idx := c.NewMonster(world.Monster{
		ID:     uuid.New(),
		Race:   m.Race,
		Grid:   free,
		HP:     m.MaxHP,
		MaxHP:  m.MaxHP,
		Energy: m.Energy,
		Group:  m.Group,
	})
	if err := c.PlaceMonster(free, idx); err != nil {
		c.DeleteMonster(idx)
		return Result{}
	}
	return Result{Noticed: true}
}

// speedBand implements WONDER's speed sub-effect: the casting monster
// hastes itself.
func speedBand(ctx *Context, p Params) Result {
	m := p.SourceMonster
	if m == nil || !m.Alive() {
		return Result{}
	}
	m.Timed.Inc(ctx.Status, status.Fast, 20)
	return Result{Noticed: true}
}

// polyBand implements WONDER's poly sub-effect. A full race reassignment
// needs the race table, which is not reachable from Context (only
// server/data owns it); until that table is wired here, poly instead
// rerolls the target's hit points from its own race's hit dice, the part
// of "a new body" this package can honestly produce on its own.
func polyBand(ctx *Context, p Params) Result {
	m := targetMonster(ctx, p.Target)
	if m == nil || m.Race == nil {
		return fail(ctx, "there is nothing there to polymorph")
	}
	m.MaxHP = ctx.RNG.Die(m.Race.HitDice, m.Race.HitSides)
	m.HP = m.MaxHP
	return Result{Noticed: true}
}

// confBand implements WONDER's conf sub-effect: the target (monster or
// player) is confused for a short duration.
func confBand(ctx *Context, p Params) Result {
	if m := targetMonster(ctx, p.Target); m != nil {
		m.Timed.Inc(ctx.Status, status.Confusion, 10)
		return Result{Noticed: true}
	}
	if pl := targetPlayer(ctx, p.Target); pl != nil {
		pl.Timed.Inc(ctx.Status, status.Confusion, 10)
		return Result{Noticed: true}
	}
	return fail(ctx, "there is nothing there to confuse")
}

// destructionBand implements WONDER's destruction sub-effect: a
// DESTRUCTION burst centred on the origin.
func destructionBand(ctx *Context, p Params) Result {
	radius := p.Radius
	if radius <= 0 {
		radius = 15
	}
	return Destruction(ctx, p.Origin, radius)
}

// banishBand implements WONDER's banish sub-effect: the targeted monster
// is removed from the level outright, with no death message or corpse,
// matching banishment's "gone, not killed" framing.
func banishBand(ctx *Context, p Params) Result {
	m := targetMonster(ctx, p.Target)
	if m == nil {
		return fail(ctx, "there is nothing there to banish")
	}
	ctx.Chunk.DeleteMonster(m.MIdx)
	return Result{Noticed: true}
}

// dispelBand implements WONDER's dispel sub-effect: direct damage to the
// targeted monster scaled by caster level, the "dispel monster" shape of
// a damage-only WONDER band with no shape/travel of its own.
func dispelBand(ctx *Context, p Params) Result {
	m := targetMonster(ctx, p.Target)
	if m == nil {
		return fail(ctx, "there is nothing there to dispel")
	}
	dam := p.CasterLevel * 3
	damageMonster(ctx, m.MIdx, dam)
	return Result{Noticed: true}
}

// Wonder implements WONDER(die): roll p.WonderDie, offset by
// p.CasterLevel/5, and run the sub-effect whose band the result falls
// into, clamping to the strongest band for any roll beyond the table.
func Wonder(ctx *Context, p Params) Result {
	roll := p.WonderDie + p.CasterLevel/5
	for _, band := range wonderTable {
		if roll <= band.max {
			return band.run(ctx, p)
		}
	}
	return wonderTable[len(wonderTable)-1].run(ctx, p)
}

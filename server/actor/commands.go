package actor

import (
	"github.com/draconisPW/mangband-core/server/effect"
	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/scheduler"
	"github.com/draconisPW/mangband-core/server/world"
)

// normalCost/halfTurnCost/fastCastCost are the three energy charges
// spec.md §4.6 names explicitly ("half-turn = 50, normal = 100, 75% for
// fast-cast").
const (
	normalCost   = 100
	halfTurnCost = 50
	fastCastCost = 75
)

// MoveCommand steps an actor one grid in a fixed direction, implementing
// scheduler.Command. Run reports false (consumes no energy) when the
// destination is occupied or impassable, matching spec.md §4.6
// "Cancellation: commands ... impossible ... consume no energy".
type MoveCommand struct {
	Chunk    *world.Chunk
	From, To world.Grid
	IsPlayer bool
	PlayerID int32
	MonIdx   int
}

func (m MoveCommand) Cost() int { return normalCost }

func (m MoveCommand) Run() bool {
	if !m.Chunk.InBoundsFully(m.To) {
		return false
	}
	sq := m.Chunk.Square(m.To)
	if !sq.Feat.Passable() || sq.Occupant() != world.OccupantNone {
		return false
	}
	m.Chunk.ClearActor(m.From)
	if m.IsPlayer {
		_ = m.Chunk.PlacePlayer(m.To, m.PlayerID)
	} else {
		_ = m.Chunk.PlaceMonster(m.To, m.MonIdx)
		m.Chunk.Monsters[m.MonIdx].Grid = m.To
	}
	return true
}

// AttackCommand resolves a melee attack via server/effect's MeleeBlows,
// and on a killing blow runs the death bookkeeping through MonTakeHit's
// sibling path for whichever side was hit.
type AttackCommand struct {
	Ctx    *effect.Context
	Params effect.Params
}

func (a AttackCommand) Cost() int { return normalCost }

func (a AttackCommand) Run() bool {
	res := effect.MeleeBlows(a.Ctx, a.Params)
	return !res.Failed
}

// SweepCommand resolves SWEEP (attack all 8 adjacent cells) as one
// scheduler.Command.
type SweepCommand struct {
	Ctx    *effect.Context
	Params effect.Params
}

func (s SweepCommand) Cost() int { return normalCost }

func (s SweepCommand) Run() bool {
	res := effect.Sweep(s.Ctx, s.Params)
	return res.Noticed
}

// CastCommand runs any dispatcher-routed effect (bolt, ball, beam, ...)
// as a fast-cast scheduler.Command, costing fastCastCost instead of the
// normal 100 (spec.md §4.6 "75% for fast-cast").
type CastCommand struct {
	Ctx    *effect.Context
	Params effect.Params
}

func (c CastCommand) Cost() int { return fastCastCost }

func (c CastCommand) Run() bool {
	res := effect.Dispatch(c.Ctx, c.Params)
	return !res.Failed
}

// RegisterActor adds a player or monster to sched at its current speed,
// translating the domain speed offset (base 110) the scheduler expects.
func RegisterActor(sched *scheduler.Scheduler, p *player.Player, m *world.Monster) {
	switch {
	case p != nil:
		sched.Register(scheduler.ActorID{Kind: scheduler.KindPlayer, ID: p.ID}, p.BaseSpeed)
	case m != nil:
		sched.Register(scheduler.ActorID{Kind: scheduler.KindMonster, ID: int32(m.MIdx)}, m.Race.Speed-110)
	}
}

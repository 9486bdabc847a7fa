package effect

import (
	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/projection"
	"github.com/draconisPW/mangband-core/server/world"
)

// Kind names one of spec.md §4.4's dispatched effect operations.
type Kind int

const (
	KindBall Kind = iota
	KindBeam
	KindBeamObvious
	KindBolt
	KindBoltAware
	KindBoltOrBeam
	KindBoltMelee
	KindBreath
	KindSpot
	KindStrike
	KindSwarm
	KindStar
	KindStarBall
	KindArc
	KindLine
	KindLash
	KindDestruction
	KindWipeArea
	KindEarthquake
	KindDetonate
	KindHealHP
	KindMonHealHP
	KindMonHealKin
	KindDamage
	KindTapUnlife
	KindCurse
	KindProjectLOS
	KindProjectLOSAware
	KindAlter
	KindTouch
	KindTouchAware
	KindWonder
	KindMeleeBlows
	KindSweep
)

// Params is the full parameter set a caller assembles for one Dispatch
// call. Not every field is meaningful for every Kind; Dispatch reads only
// the ones its Kind needs (spec.md §4.4's per-effect parameter lists).
type Params struct {
	Kind    Kind
	Element world.Element
	Resist  world.ElementFlag // target's resistance to Element, looked up by the caller

	Dam    int // fixed/rolled damage amount for this cast
	Radius int
	Range  int // LASH beam length in cells (0 = runs to Target); BOLT_MELEE reach is fixed at 1
	N      int // SWARM shot count

	DegreesOfArc     int
	DiameterOfSource int
	BeamChance       int // 0-100, for BOLT_OR_BEAM

	HealBase int
	HealPct  int // percent of missing hp, HEAL_HP

	TapAmount int
	CurseDam  int

	// Blows backs LASH: its damage is computed from the attacker's own
	// blow table rather than a flat Dam (MELEE_BLOWS and SWEEP use Dam), per spec.md
	// "LASH ... damage is the first-blow's max roll plus half of each
	// other blow; type is blow 0's element".
	Blows []world.Blow

	Flags  projection.Flag
	Origin world.Grid
	Target world.Grid

	// Dir, when set (non-zero), overrides Target for adjacency-only
	// effects (MELEE_BLOWS, SWEEP, TOUCH) so callers can pass a keypad
	// direction instead of computing the neighbour grid themselves.
	Dir world.Direction

	SourceMonster *world.Monster
	SourcePlayer  *player.Player

	// WonderDie is the raw die roll WONDER dispatches on; required only
	// for KindWonder.
	WonderDie int
	// CasterLevel feeds WONDER's level/5 roll offset.
	CasterLevel int
}

package world

import (
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/google/uuid"
)

// Race is the immutable species record a Monster points to (spec.md §3:
// "race (pointer to immutable species record)"). The full race table is
// data loaded once at startup (see server/data) and never mutated; Race
// values here are shared by every monster of that species.
type Race struct {
	Name        string
	Glyph       rune
	HitDice     int
	HitSides    int
	BaseAC      int
	Speed       int // absolute speed (110 = normal), e.g. 120 = hasted by 10
	Alertness   int
	Blows       []Blow
	Resists     [elementCount]ElementFlag
	Flags       RaceFlag
	NeverMove   bool
	BreathDice  int // used by breath_dam derivation
}

// Blow is one of a race's natural attack routines.
type Blow struct {
	Method  string
	Element Element
	Dice    int
	Sides   int
}

// RaceFlag is a bit-set of race-level behavioural flags.
type RaceFlag uint32

const (
	RaceFlagUndead RaceFlag = 1 << iota
	RaceFlagEvil
	RaceFlagAnimal
	RaceFlagUnique
	RaceFlagGroup
	RaceFlagCamouflage
	RaceFlagNoDeathMsg
)

// MonsterFlag is a bit-set of per-instance monster state.
type MonsterFlag uint32

const (
	MonFlagAwake MonsterFlag = 1 << iota
	MonFlagVisible
	MonFlagCamouflaged
	MonFlagInvisible
	MonFlagHeld
	MonFlagDecoy
)

// Monster is a live monster instance occupying a slot in a Chunk's monster
// table (spec.md §3 "Monster"). A Monster whose Race is nil is a freed
// slot, never a live one (spec.md §3 invariant 4).
type Monster struct {
	ID     uuid.UUID
	Race   *Race
	Grid   Grid
	HP     int
	MaxHP  int
	Energy int
	Timed  status.Timers
	MIdx   int   // index into the owning chunk's monster table; self-referential
	Master int32 // player id if charmed/summoned, 0 if independent
	Flags  MonsterFlag
	Group  int // index into the chunk's monster-group table, 0 if solo
	Decoy  bool
}

// Alive reports whether this slot holds a live monster.
func (m *Monster) Alive() bool { return m != nil && m.Race != nil }

// HasFlag reports whether all bits in mask are set on the monster's flags.
func (m *Monster) HasFlag(mask MonsterFlag) bool { return m.Flags&mask == mask }

// SetFlag sets mask on the monster's flags.
func (m *Monster) SetFlag(mask MonsterFlag) { m.Flags |= mask }

// ClearFlag clears mask from the monster's flags.
func (m *Monster) ClearFlag(mask MonsterFlag) { m.Flags &^= mask }

// Group is the per-chunk pack-AI bookkeeping for a cluster of related
// monsters (spec.md §3 "monster_groups[idx]").
type Group struct {
	Leader   int // monster slot index of the pack leader, 0 if none
	Members  []int
	HomeGrid Grid
}

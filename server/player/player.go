package player

import (
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
	"github.com/google/uuid"
)

// Stat indexes a player's five base attributes (spec.md §4.8 "base
// stats"). Order matches world.Modifier's leading five entries so an
// equipped item's Mods vector lines up directly against Stats without a
// translation table.
type Stat int

const (
	StatStr Stat = iota
	StatInt
	StatWis
	StatDex
	StatCon
	statCount
)

// EquipSlot identifies one equipment slot a Player can fill.
type EquipSlot int

const (
	SlotWeapon EquipSlot = iota
	SlotBow
	SlotRing1
	SlotRing2
	SlotAmulet
	SlotLight
	SlotBody
	SlotCloak
	SlotShield
	SlotHeadgear
	SlotGloves
	SlotBoots
	slotCount
)

// RaceDef is the immutable per-race baseline a Player points to (spec.md
// §4.8 "Start from race+class baselines"). Shared by every player of that
// race, loaded once at startup by server/data.
type RaceDef struct {
	Name         string
	StatBonus    [statCount]int
	Resists      [world.ElementCount]world.ElementFlag // indexed by world.Element
	HitDieBonus  int
	InfraRadius  int
	ExtraBlows   int // race-level blows-per-round bonus
	ExtraMana    int // capped contribution toward the +15 race/class mana cap, spec.md §4.8 step 6
	StealthBonus int
}

// ClassDef is the immutable per-class baseline.
type ClassDef struct {
	Name           string
	StatBonus      [statCount]int
	SpellStat      Stat // stat used for average_spell_stat, -1 if the class casts no spells
	HitDieBonus    int
	ExtraBlows     int
	ExtraMana      int
	SkillBonus     [SkillCount]int
	DeviceBonus    int
	MaxManaPerLvl  int
}

// Skill indexes one of the derived skill values spec.md §4.8 names.
type Skill int

const (
	SkillDevice Skill = iota
	SkillSave
	SkillStealth
	SkillSearch
	SkillDigging
	SkillDisarmPhys
	SkillDisarmMagic
	SkillCount
)

// Equipment is the object slot (into a world.Arena, typically the
// player's own inventory arena) occupying each EquipSlot; zero means
// empty.
type Equipment [slotCount]world.ObjectSlot

// Player is one connected character (spec.md §3 "Player"). World
// position/grid occupancy lives on the square itself (a negated player id,
// see world.Square); Player holds everything else.
type Player struct {
	ID    int32
	UUID  uuid.UUID
	Name  string
	Race  *RaceDef
	Class *ClassDef
	Level int

	Stats     [statCount]int // base, pre-equipment
	BaseSpeed int            // before timed haste/slow, normally 0 (offset from 110)

	Equip   Equipment
	Arena   *world.Arena // owns the Objects Equip indexes into
	Timed   status.Timers

	CHP, MaxHP int
	CSP, MaxSP int
	Energy     int

	WPos world.Pos
	Grid world.Grid

	// Dead and DiedFrom record spec.md §4.5's "mark dead, record
	// died_from" take_hit step; the chunk-freeze and move-out-at-next-
	// scheduler-pass handling that follows belongs to server/actor, not
	// to the Player record itself.
	Dead     bool
	DiedFrom string

	PolyRace  *RaceDef // non-nil while polymorphed, spec.md §4.8 step 5
	Meditate  bool     // spec.md step 5/6 "meditation" halves/scales derived max hp/mana
	Shapechanger bool  // spec.md step 6 "halved if shapechanger"

	Upkeep Flags
}

// Flags is the PR_* upkeep redraw bitset spec.md §4.7 describes; Player
// owns the raw bits, server/visibility drains them.
type Flags uint32

const (
	FlagHP Flags = 1 << iota
	FlagMana
	FlagView
	FlagDistance
	FlagMonsters
	FlagBonus
	FlagSpells
	FlagHeavyWield
	FlagHeavyShoot
	FlagArmorCumber
	FlagBlessWield
)

// Set raises the given flags.
func (p *Player) SetFlag(f Flags) { p.Upkeep |= f }

// Clear lowers the given flags.
func (p *Player) ClearFlag(f Flags) { p.Upkeep &^= f }

// Has reports whether all bits in f are currently raised.
func (p *Player) Has(f Flags) bool { return p.Upkeep&f == f }

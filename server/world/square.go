package world

// Square is one cell of a Chunk's grid (spec.md §3 "Square"). Actor
// occupancy is held directly on the square as a signed index: 0 is empty,
// a positive value is an index into the chunk's monster table, and a
// negative value is a negated player id (spec.md §3 invariant 3).
type Square struct {
	Feat Feature
	Info Info
	Mon  int32 // 0 = empty, >0 = monsters[Mon], <0 = player id -Mon
	Obj  ObjectSlot
	Trap TrapSlot
}

// Occupant describes what (if anything) occupies a square.
type Occupant int

const (
	OccupantNone Occupant = iota
	OccupantMonster
	OccupantPlayer
)

// Occupant classifies the square's Mon field.
func (s Square) Occupant() Occupant {
	switch {
	case s.Mon == 0:
		return OccupantNone
	case s.Mon > 0:
		return OccupantMonster
	default:
		return OccupantPlayer
	}
}

// MonsterSlot returns the monster table index occupying the square, valid
// only when Occupant() == OccupantMonster.
func (s Square) MonsterSlot() int { return int(s.Mon) }

// PlayerID returns the player id occupying the square, valid only when
// Occupant() == OccupantPlayer.
func (s Square) PlayerID() int32 { return -s.Mon }

// TrapSlot indexes a chunk's trap table; 0 means "no trap".
type TrapSlot int32

// Trap is a single trap instance at a square (trap lists are rare enough
// in practice that the core keeps them in a flat per-chunk slice rather
// than an arena with a freelist, unlike objects).
type Trap struct {
	Kind    string
	Visible bool
	Next    TrapSlot
}

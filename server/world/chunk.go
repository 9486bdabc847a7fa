package world

import "fmt"

// Join records the canonical stair/rally grids a chunk exposes to its
// neighbours for the level-transition protocol (spec.md §3 "join.up,
// join.down, join.rand", §4.6 "Level transition protocol").
type Join struct {
	Up   []Grid
	Down []Grid
	Rand []Grid
}

// Chunk is the unit of allocation: one level at one world position
// (spec.md §3 "Chunk (level)"). All grid/object/monster bookkeeping a
// level needs lives here; a Chunk never reaches into another Chunk.
type Chunk struct {
	WPos   Pos
	Height int
	Width  int

	squares [][]Square // [y][x], dense

	Monsters []Monster // slot 0 reserved, unused
	MonMax   int       // one past the highest slot ever used
	MonCnt   int        // current live count

	Groups []Group // slot 0 reserved, unused

	Traps []Trap // slot 0 reserved, unused

	Objects *Arena

	FeatCount map[Feature]int

	Join  Join
	Decoy *Grid

	Profile    Profile
	LightLevel bool
	GoodItem   bool
	ObjRating  int

	// OnSquareChanged, when non-nil, is invoked after SetFeat for any
	// square (spec.md §4.1 "set_feat ... may trigger per-observer redraw
	// if any player currently views the grid"). No package in this module
	// sets it.
	OnSquareChanged func(g Grid, old, new Feature)

	// scratch* slices are reused across calls to keep hot paths (scatter,
	// flood-fill) allocation-free, the same GC-avoidance idiom the
	// teacher example applies to its own per-tick scratch buffers.
	scratchGrids []Grid
}

// New allocates a zero-initialised chunk of the given extent. Every square
// starts as FeatNone; the caller (a generator profile) is responsible for
// filling rock and walling the border per spec.md §3 invariants 1-2 — New
// deliberately does not wall the border itself, matching spec.md §4.1's
// contract ("border remains un-walled; generator must wall it").
func New(wpos Pos, height, width int) *Chunk {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("world: New: invalid extent %dx%d", height, width))
	}
	squares := make([][]Square, height)
	for y := range squares {
		squares[y] = make([]Square, width)
	}
	return &Chunk{
		WPos:      wpos,
		Height:    height,
		Width:     width,
		squares:   squares,
		Monsters:  make([]Monster, 1, 64),
		Groups:    make([]Group, 1, 8),
		Traps:     make([]Trap, 1, 16),
		Objects:   NewArena(),
		FeatCount: make(map[Feature]int),
	}
}

// Free releases the chunk's resources. Free does not touch players: a
// chunk is never responsible for relocating the players that were in it,
// that is the World registry's job during unload (spec.md §3 "Entity
// lifecycle").
func (c *Chunk) Free() {
	c.squares = nil
	c.Monsters = nil
	c.Groups = nil
	c.Traps = nil
	c.Objects = nil
	c.FeatCount = nil
}

// InBounds reports whether g lies strictly within the chunk's grid,
// including the border row/column. This predicate is total, per spec.md
// §4.1's failure semantics.
func (c *Chunk) InBounds(g Grid) bool {
	return g.X >= 0 && g.X < c.Width && g.Y >= 0 && g.Y < c.Height
}

// InBoundsFully reports whether g lies strictly inside the border, i.e.
// excludes row/col 0 and the last row/col. Also total.
func (c *Chunk) InBoundsFully(g Grid) bool {
	return g.X > 0 && g.X < c.Width-1 && g.Y > 0 && g.Y < c.Height-1
}

// Square returns a pointer to the square at g. g must be in-bounds: this
// is a programmer-bug boundary per spec.md §4.1/§7, not a recoverable
// error, so out-of-bounds access panics with chunk context rather than
// silently clamping.
func (c *Chunk) Square(g Grid) *Square {
	if !c.InBounds(g) {
		panic(fmt.Sprintf("world: Square: %v out of bounds for chunk %v (%dx%d)", g, c.WPos, c.Width, c.Height))
	}
	return &c.squares[g.Y][g.X]
}

// SetFeat replaces the terrain at g, updates the feature histogram, and
// invokes OnSquareChanged if installed (spec.md §4.1 "set_feat").
func (c *Chunk) SetFeat(g Grid, feat Feature) {
	sq := c.Square(g)
	old := sq.Feat
	if old == feat {
		return
	}
	if old != FeatNone {
		c.FeatCount[old]--
		if c.FeatCount[old] <= 0 {
			delete(c.FeatCount, old)
		}
	}
	sq.Feat = feat
	c.FeatCount[feat]++
	if c.OnSquareChanged != nil {
		c.OnSquareChanged(g, old, feat)
	}
}

// ActorAt reports the occupant kind and raw Mon value at g.
func (c *Chunk) ActorAt(g Grid) (Occupant, int32) {
	sq := c.Square(g)
	return sq.Occupant(), sq.Mon
}

// MonsterAt returns the live monster at g, or nil if none/a player is
// there.
func (c *Chunk) MonsterAt(g Grid) *Monster {
	sq := c.Square(g)
	if sq.Occupant() != OccupantMonster {
		return nil
	}
	idx := sq.MonsterSlot()
	if idx <= 0 || idx >= len(c.Monsters) {
		return nil
	}
	return &c.Monsters[idx]
}

// PlayerAt returns the negated player id occupying g and true, or
// (0, false) if no player is there.
func (c *Chunk) PlayerAt(g Grid) (int32, bool) {
	sq := c.Square(g)
	if sq.Occupant() != OccupantPlayer {
		return 0, false
	}
	return sq.PlayerID(), true
}

// PlaceMonster writes idx into the square's occupancy, enforcing the
// at-most-one-actor invariant by refusing to overwrite an existing
// occupant (spec.md §3 invariant 3: "swaps are atomic").
func (c *Chunk) PlaceMonster(g Grid, idx int) error {
	sq := c.Square(g)
	if sq.Mon != 0 {
		return fmt.Errorf("world: PlaceMonster: %v already occupied", g)
	}
	sq.Mon = int32(idx)
	return nil
}

// PlacePlayer writes a negated player id into the square's occupancy.
func (c *Chunk) PlacePlayer(g Grid, playerID int32) error {
	if playerID <= 0 {
		panic("world: PlacePlayer: playerID must be positive")
	}
	sq := c.Square(g)
	if sq.Mon != 0 {
		return fmt.Errorf("world: PlacePlayer: %v already occupied", g)
	}
	sq.Mon = -playerID
	return nil
}

// ClearActor empties the occupancy of g.
func (c *Chunk) ClearActor(g Grid) {
	c.Square(g).Mon = 0
}

// SwapActors atomically exchanges the occupants of a and b (used by
// movement and decoy/teleport-swap effects); at most one actor per square
// is preserved throughout since the two assignments happen without any
// intervening read by another caller in the single-writer model.
func (c *Chunk) SwapActors(a, b Grid) {
	sa, sb := c.Square(a), c.Square(b)
	sa.Mon, sb.Mon = sb.Mon, sa.Mon
}

// NewMonster allocates a monster slot, reusing a freed slot if one is
// outstanding (spec.md §3 invariant 4: "Reuse of slots is allowed only
// after explicit deletion").
func (c *Chunk) NewMonster(m Monster) int {
	for i := 1; i < len(c.Monsters); i++ {
		if c.Monsters[i].Race == nil {
			m.MIdx = i
			c.Monsters[i] = m
			c.MonCnt++
			return i
		}
	}
	m.MIdx = len(c.Monsters)
	c.Monsters = append(c.Monsters, m)
	c.MonMax = len(c.Monsters)
	c.MonCnt++
	return m.MIdx
}

// DeleteMonster frees the monster slot and clears its square, satisfying
// spec.md §3 invariant 4 ("race != null iff slot is live") and invariant 5
// (mon_cnt tracks live slots; mon_max is monotone).
func (c *Chunk) DeleteMonster(idx int) {
	if idx <= 0 || idx >= len(c.Monsters) {
		return
	}
	m := &c.Monsters[idx]
	if m.Race == nil {
		return
	}
	if c.InBounds(m.Grid) {
		sq := c.Square(m.Grid)
		if sq.Occupant() == OccupantMonster && sq.MonsterSlot() == idx {
			sq.Mon = 0
		}
	}
	*m = Monster{}
	c.MonCnt--
}

// CheckInvariants validates the structural invariants of spec.md §8
// ("Generator invariants") that are cheap enough to assert at any time:
// every live monster slot's grid points back to that slot, and mon_cnt
// matches the number of live slots. Intended for tests and debug builds,
// not the hot path.
func (c *Chunk) CheckInvariants() error {
	live := 0
	for i := 1; i < len(c.Monsters); i++ {
		m := &c.Monsters[i]
		if m.Race == nil {
			continue
		}
		live++
		if !c.InBounds(m.Grid) {
			return fmt.Errorf("world: monster slot %d has out-of-bounds grid %v", i, m.Grid)
		}
		sq := c.Square(m.Grid)
		if sq.Occupant() != OccupantMonster || sq.MonsterSlot() != i {
			return fmt.Errorf("world: monster slot %d grid %v does not point back to itself", i, m.Grid)
		}
	}
	if live != c.MonCnt {
		return fmt.Errorf("world: mon_cnt %d does not match live slot count %d", c.MonCnt, live)
	}
	return nil
}

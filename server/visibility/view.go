package visibility

import (
	"encoding/binary"

	"github.com/segmentio/fasthash/fnv1a"

	"github.com/draconisPW/mangband-core/server/world"
)

// Bit is one per-square knowledge flag a player's View tracks (spec.md
// §4.7 "seen ever / currently visible / has light memory").
type Bit uint8

const (
	BitSeenEver Bit = 1 << iota
	BitCurrentlyVisible
	BitLightMemory
)

func (b Bit) has(mask Bit) bool { return b&mask == mask }

// ShadowObject is what a player believes occupies a square's item pile,
// independent of the chunk's actual current object arena state — a
// player who has not revisited a square keeps believing whatever it last
// saw there (spec.md "A shadow object list per square recording what the
// player believes is there").
type ShadowObject struct {
	Kind   string
	Number int
}

// MonsterPerception names how a player currently perceives a monster it
// has registered in its shadow table.
type MonsterPerception int

const (
	PerceiveNone MonsterPerception = iota
	PerceiveVisible
	PerceiveTelepathed
	PerceiveCamouflaged
	PerceiveInvisible
)

// View is one player's knowledge of one chunk: per-square bits, a
// believed-object shadow table, and a monster perception table (spec.md
// §4.7 "Per-player knowledge"). A View is scoped to exactly one chunk;
// moving chunks means building a new View, not mutating this one in
// place.
type View struct {
	WPos    world.Pos
	Height  int
	Width   int
	bits    [][]Bit
	shadows map[world.Grid][]ShadowObject
	monsters map[int]MonsterPerception // keyed by monster MIdx

	// dirty holds the squares whose Bit set changed since the last
	// Drain, the per-square delta spec.md's "light-spot" update batches.
	dirty []world.Grid

	// lastDirtyHash is the fasthash digest of the previous batch
	// DrainDirtyDeduped returned, letting a caller skip re-sending a
	// light-spot update that is identical to the one already sent.
	lastDirtyHash uint64
}

// New allocates an empty View for a chunk of the given extent.
func New(wpos world.Pos, height, width int) *View {
	bits := make([][]Bit, height)
	for y := range bits {
		bits[y] = make([]Bit, width)
	}
	return &View{
		WPos:     wpos,
		Height:   height,
		Width:    width,
		bits:     bits,
		shadows:  make(map[world.Grid][]ShadowObject),
		monsters: make(map[int]MonsterPerception),
	}
}

// Bits returns g's current knowledge bits. Out-of-bounds reads return 0
// rather than panicking, since a stale View (player just transitioned
// chunks) querying a now-invalid grid is routine, not a programmer bug.
func (v *View) Bits(g world.Grid) Bit {
	if !v.inBounds(g) {
		return 0
	}
	return v.bits[g.Y][g.X]
}

func (v *View) inBounds(g world.Grid) bool {
	return g.X >= 0 && g.X < v.Width && g.Y >= 0 && g.Y < v.Height
}

func (v *View) set(g world.Grid, bits Bit) {
	before := v.bits[g.Y][g.X]
	after := before | bits
	if after == before {
		return
	}
	v.bits[g.Y][g.X] = after
	v.dirty = append(v.dirty, g)
}

func (v *View) clear(g world.Grid, bits Bit) {
	before := v.bits[g.Y][g.X]
	after := before &^ bits
	if after == before {
		return
	}
	v.bits[g.Y][g.X] = after
	v.dirty = append(v.dirty, g)
}

// Shadow returns the believed object list at g.
func (v *View) Shadow(g world.Grid) []ShadowObject { return v.shadows[g] }

// SetShadow overwrites the believed object list at g.
func (v *View) SetShadow(g world.Grid, objs []ShadowObject) {
	if len(objs) == 0 {
		delete(v.shadows, g)
		return
	}
	v.shadows[g] = objs
}

// MonsterPerceptionOf returns how the player currently perceives the
// monster at midx, or PerceiveNone if it is not in the shadow table.
func (v *View) MonsterPerceptionOf(midx int) MonsterPerception { return v.monsters[midx] }

// SetMonsterPerception records how the player perceives the monster at
// midx, or forgets it entirely when p is PerceiveNone.
func (v *View) SetMonsterPerception(midx int, p MonsterPerception) {
	if p == PerceiveNone {
		delete(v.monsters, midx)
		return
	}
	v.monsters[midx] = p
}

// DrainDirty removes and returns every square whose bits changed since
// the last DrainDirty, the per-square delta spec.md's view update feeds
// to "light-spot" client messages.
func (v *View) DrainDirty() []world.Grid {
	out := v.dirty
	v.dirty = nil
	return out
}

// DrainDirtyDeduped behaves like DrainDirty but also reports whether the
// batch names the same squares, in the same order of first appearance, as
// the previous call's batch (a square listed more than once counts once), so a
// caller pushing light-spot updates to a player connection can skip a
// redundant send when nothing actually changed about which squares are
// dirty (e.g. a square's bits flip and flip back within one tick).
func (v *View) DrainDirtyDeduped() (batch []world.Grid, unchanged bool) {
	batch = v.DrainDirty()
	h := hashDirty(batch)
	unchanged = h == v.lastDirtyHash && v.lastDirtyHash != 0
	v.lastDirtyHash = h
	return batch, unchanged
}

func hashDirty(batch []world.Grid) uint64 {
	if len(batch) == 0 {
		return 0
	}
	var buf [8]byte
	h := fnv1a.Init64
	seen := make(map[world.Grid]bool, len(batch))
	for _, g := range batch {
		if seen[g] {
			continue
		}
		seen[g] = true
		binary.LittleEndian.PutUint32(buf[0:4], uint32(g.X))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(g.Y))
		h = fnv1a.AddBytes64(h, buf[:])
	}
	return h
}

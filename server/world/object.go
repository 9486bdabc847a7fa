package world

import (
	"github.com/brentp/intintmap"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Element identifies a projection/resistance element (spec.md §4.3).
type Element uint8

const (
	ElemFire Element = iota
	ElemCold
	ElemAcid
	ElemPoison
	ElemDark
	ElemLight
	ElemDisintegrate
	ElemTime
	ElemGravity
	ElemPlasma
	ElemNexus
	ElemChaos
	ElemInertia
	ElemSound
	ElemShards
	ElemForce
	ElemWater
	ElemLava
	ElemIce
	ElemMissile
	elementCount
)

// ElementFlag records resistance/vulnerability/immunity for one element on
// an object or actor.
type ElementFlag uint8

const (
	ElementNormal ElementFlag = iota
	ElementResist
	ElementVulnerable
	ElementImmune
)

// Modifier indexes the object modifier vector (STR/INT/.../SPEED/BLOWS/...).
type Modifier int

const (
	ModStr Modifier = iota
	ModInt
	ModWis
	ModDex
	ModCon
	ModStealth
	ModSearch
	ModInfra
	ModDigging
	ModSpeed
	ModBlows
	ModShots
	ModMight
	ModLight
	modifierCount
)

// ElementCount and ModifierCount expose the sizes of the Elements/Mods
// vectors to other packages that need to declare same-shaped arrays (e.g.
// server/player's race/class baselines) without duplicating the element
// or modifier list.
const (
	ElementCount  = int(elementCount)
	ModifierCount = int(modifierCount)
)

// ObjectSlot is an index into a Chunk's object arena. Zero is reserved to
// mean "no object", mirroring the monster table's reserved slot 0
// (spec.md §3 invariant 4).
type ObjectSlot int32

// Object is an item: a floor drop, a monster's carried gear, or a piece of
// a player's inventory (spec.md §3 "Object"). Object identity is global
// (the UUID), while an Object's *location* is exactly one of: the floor
// pile of one square, a monster's inventory, or a player's gear — enforced
// by the arena's single-owner invariant rather than by the Object itself.
type Object struct {
	ID       uuid.UUID
	Kind     string
	TVal     int
	SVal     int
	Number   int // stack count
	Weight   int // tenths of a pound, single item
	Artifact string // artifact record name, "" if not an artifact
	Ego      string
	Curses   []string
	ToHit    int
	ToDam    int
	ToAC     int
	Mods     [modifierCount]int
	Elements [elementCount]ElementFlag
	Timeout  int
	PVal     int
	Note     string
	Owner    int32 // player id owning this object in inventory, 0 if none
	Origin   string
	LevelReq int

	next ObjectSlot // pile/inventory linkage; 0 means end of list
}

// Arena owns the per-chunk object pool: a dense, freelist-backed vector of
// Objects plus a fast id->slot index (spec.md §9 "Pointer graphs": object
// piles are indices into the chunk's object arena linked by next_slot").
type Arena struct {
	slots []Object
	free  []ObjectSlot
	index *intintmap.Map // xxhash(uuid) -> slot
}

// NewArena creates an empty object arena. Slot 0 is reserved as the "none"
// sentinel, matching the monster table's convention.
func NewArena() *Arena {
	a := &Arena{
		slots: make([]Object, 1), // slot 0 reserved
		index: intintmap.New(64, 0.75),
	}
	return a
}

func objectKey(id uuid.UUID) int64 {
	return int64(xxhash.Sum64(id[:]))
}

// New allocates a fresh object in the arena and returns its slot.
func (a *Arena) New(obj Object) ObjectSlot {
	if obj.ID == uuid.Nil {
		obj.ID = uuid.New()
	}
	obj.next = 0
	var slot ObjectSlot
	if n := len(a.free); n > 0 {
		slot = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[slot] = obj
	} else {
		slot = ObjectSlot(len(a.slots))
		a.slots = append(a.slots, obj)
	}
	a.index.Put(objectKey(obj.ID), int64(slot))
	return slot
}

// Get returns a pointer to the object at slot, or nil if slot is 0 (the
// "none" sentinel) or out of range.
func (a *Arena) Get(slot ObjectSlot) *Object {
	if slot <= 0 || int(slot) >= len(a.slots) {
		return nil
	}
	return &a.slots[slot]
}

// SlotByID resolves an object's global identity to its arena slot via the
// xxhash-backed index, returning false if the object is not resident in
// this arena.
func (a *Arena) SlotByID(id uuid.UUID) (ObjectSlot, bool) {
	v, ok := a.index.Get(objectKey(id))
	if !ok {
		return 0, false
	}
	return ObjectSlot(v), true
}

// Free releases slot back to the freelist. The caller must have already
// unlinked it from whatever pile/inventory referenced it.
func (a *Arena) Free(slot ObjectSlot) {
	if slot <= 0 || int(slot) >= len(a.slots) {
		return
	}
	a.index.Del(objectKey(a.slots[slot].ID))
	a.slots[slot] = Object{}
	a.free = append(a.free, slot)
}

// PushPile prepends slot to the singly-linked pile rooted at *head and
// returns the new head. Piles are acyclic by construction: a slot is never
// pushed onto a pile it already belongs to by the arena's single-owner
// discipline (spec.md §3 invariant 6).
func (a *Arena) PushPile(head ObjectSlot, slot ObjectSlot) ObjectSlot {
	a.slots[slot].next = head
	return slot
}

// RemoveFromPile unlinks slot from the pile rooted at head and returns the
// new head. Returns the unchanged head if slot is not found.
func (a *Arena) RemoveFromPile(head ObjectSlot, slot ObjectSlot) ObjectSlot {
	if head == slot {
		return a.slots[slot].next
	}
	cur := head
	for cur != 0 {
		next := a.slots[cur].next
		if next == slot {
			a.slots[cur].next = a.slots[slot].next
			return head
		}
		cur = next
	}
	return head
}

// Pile returns the slots in the pile rooted at head, in list order.
func (a *Arena) Pile(head ObjectSlot) []ObjectSlot {
	var out []ObjectSlot
	cur := head
	for cur != 0 {
		out = append(out, cur)
		cur = a.slots[cur].next
	}
	return out
}

package world

// maintenance.go holds the per-tick chunk passes spec.md §4.6 step 3 calls
// for after every live actor has had a turn: object recharging, corpse
// decay, and light-source fuel burn. Per-player regen and timed-condition
// decrement are not done here, since they need player state this package
// does not have; Chunk.Tick below only drives the passes that are pure
// functions of a Chunk. The pass-per-category shape (one sweep per
// concern rather than one sweep doing everything) follows the teacher
// example's tick loop, which keeps TPS accounting separate from the work
// it measures.

// Corpse age and light fuel are read/written directly on Object via PVal,
// so the arena needs no extra bookkeeping for decay-capable objects.
const (
	corpseDecayTurns = 100 // corpse lifetime in ticks; DecayCorpses counts the corpse's own PVal down and does not read this
)

// Recharge ticks down the timeout of every charging object in the chunk's
// arena (rods, staves between uses) by one tick, per spec.md §4.6 "object
// recharging (rods tick down timeout)". Objects with Timeout <= 0 are
// unaffected.
func (c *Chunk) Recharge() {
	for i := range c.Objects.slots {
		o := &c.Objects.slots[i]
		if o.Timeout > 0 {
			o.Timeout--
		}
	}
}

// DecayCorpses ages every corpse-kind object in the chunk's floor piles by
// one tick and removes it from its pile once fully decayed, per spec.md
// §4.6 "corpse decay". head is the square's current pile head; DecayCorpses
// returns the (possibly updated) head.
func (c *Chunk) DecayCorpses(head ObjectSlot) ObjectSlot {
	slot := head
	for slot != 0 {
		o := c.Objects.Get(slot)
		next := o.next
		if o.Kind == "corpse" {
			if o.PVal > 0 {
				o.PVal--
			}
			if o.PVal <= 0 {
				head = c.Objects.RemoveFromPile(head, slot)
				c.Objects.Free(slot)
			}
		}
		slot = next
	}
	return head
}

// BurnFuel depletes the fuel counter (held in PVal) of every equipped-light
// object kind in the chunk's arena by one tick, per spec.md §4.6
// "light-source fuel burn" / §4.8 step 7 ("lights without fuel contribute
// 0"). Fuel never goes negative; a lantern or torch at PVal == 0 stops
// contributing light but is not destroyed.
func (c *Chunk) BurnFuel() {
	for i := range c.Objects.slots {
		o := &c.Objects.slots[i]
		if o.Kind != "light" {
			continue
		}
		if o.PVal > 0 {
			o.PVal--
		}
	}
}

// Tick runs every chunk-local per-tick pass: recharge, then fuel burn,
// then corpse decay (the passes touch disjoint objects, so the order has
// no effect on the result). server/scheduler does not call it directly;
// its Maintenance hook is where a caller runs it once per tick.
func (c *Chunk) Tick() {
	c.Recharge()
	c.BurnFuel()
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			sq := &c.squares[y][x]
			sq.Obj = c.DecayCorpses(sq.Obj)
		}
	}
}

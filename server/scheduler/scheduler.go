package scheduler

import "sort"

// Kind distinguishes the two actor classes spec.md §4.6 orders separately
// within a tick: "players by id, then monsters by slot".
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
)

// ActorID identifies one scheduled actor. Ordering compares Kind first
// (players before monsters) then ID, matching spec.md §4.6's tie-break
// rule for actors that reach the energy threshold in the same pass.
type ActorID struct {
	Kind Kind
	ID   int32
}

func (a ActorID) less(b ActorID) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.ID < b.ID
}

// Command is one queued action for an actor. Cost is the energy spent on
// success; Run performs the action and reports whether it actually
// consumed the turn (spec.md §4.6 "Cancellation": impossible actions
// consume no energy and are reported back, not charged).
type Command interface {
	Cost() int
	Run() (ok bool)
}

type entry struct {
	id          ActorID
	speedOffset int
	energy      int
	queue       []Command
}

// Scheduler drives the energy-based turn order for a single chunk's live
// actors. One Scheduler instance corresponds to one loaded chunk; the
// caller (server/world.World plus whatever owns the player list) is
// responsible for routing a Step call to every resident chunk once per
// global tick.
type Scheduler struct {
	entries map[ActorID]*entry
	order   []ActorID
	dirty   bool

	// Maintenance runs once per Step after every actor able to act has
	// had a chance, implementing spec.md §4.6 step 3's per-tick passes.
	// Nil is a valid no-op.
	Maintenance func()
}

// New creates an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{entries: make(map[ActorID]*entry)}
}

// Register adds an actor at the given speed offset from 110 (spec.md
// §4.6 "speed_energy[] is a lookup keyed by integer speed offset from
// 110"). Re-registering an existing id updates its speed offset without
// resetting accumulated energy or its pending queue.
func (s *Scheduler) Register(id ActorID, speedOffset int) {
	if e, ok := s.entries[id]; ok {
		e.speedOffset = speedOffset
		return
	}
	s.entries[id] = &entry{id: id, speedOffset: speedOffset}
	s.order = append(s.order, id)
	s.dirty = true
}

// Unregister removes an actor (death, chunk departure) and discards any
// queued commands.
func (s *Scheduler) Unregister(id ActorID) {
	if _, ok := s.entries[id]; !ok {
		return
	}
	delete(s.entries, id)
	s.dirty = true
}

// Enqueue appends cmd to id's pending command queue, pulled off in
// arrival order the next time id has sufficient energy (spec.md §4.6
// "Pending commands issued by players are queued per-player and pulled
// off in arrival order").
func (s *Scheduler) Enqueue(id ActorID, cmd Command) {
	if e, ok := s.entries[id]; ok {
		e.queue = append(e.queue, cmd)
	}
}

// Energy returns id's currently banked energy, or 0 if id is not
// registered.
func (s *Scheduler) Energy(id ActorID) int {
	if e, ok := s.entries[id]; ok {
		return e.energy
	}
	return 0
}

// Pending reports how many commands are queued for id.
func (s *Scheduler) Pending(id ActorID) int {
	if e, ok := s.entries[id]; ok {
		return len(e.queue)
	}
	return 0
}

// Step runs one scheduler tick (spec.md §4.6):
//  1. every actor gains speed_energy[speed].
//  2. actors at or above EnergyThreshold, visited in deterministic
//     (players-then-monsters, id order) order, run their next queued
//     command if one is waiting; an actor may act more than once per
//     Step if it is fast enough to cross the threshold repeatedly from
//     one tick's energy gain and the commands it runs are cheap.
//  3. Maintenance runs once, after every actor has had its turns.
func (s *Scheduler) Step() {
	if s.dirty {
		s.rebuildOrder()
	}
	for _, id := range s.order {
		e := s.entries[id]
		e.energy += EnergyPerTick(speedBase + e.speedOffset)
	}
	for _, id := range s.order {
		e := s.entries[id]
		for e.energy >= EnergyThreshold && len(e.queue) > 0 {
			cmd := e.queue[0]
			e.queue = e.queue[1:]
			if cmd.Run() {
				e.energy -= cmd.Cost()
			}
		}
	}
	if s.Maintenance != nil {
		s.Maintenance()
	}
}

func (s *Scheduler) rebuildOrder() {
	sort.Slice(s.order, func(i, j int) bool { return s.order[i].less(s.order[j]) })
	s.dirty = false
}

// Package rng provides the engine's two pseudo-random generators: the main
// game RNG, which drives dungeon-level variability and is never
// save/restored, and a "simple" RNG used for deterministic regions (town
// and wilderness layout, flavour assignment) that is explicitly snapshotted
// and restored around those sections so it never leaks determinism into the
// rest of the simulation (spec.md §4.2.4, §9 "Seeding discipline").
//
// The derivation scheme follows the teacher example's stage-RNG pattern
// (dshills-dungo/pkg/rng): a sub-seed is derived per stage/region by hashing
// the master seed together with a label and a config fingerprint, so the
// same (seed, config) pair always reproduces the same sequence while
// distinct stages stay independent of one another.
package rng

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// RNG is a single deterministic pseudo-random stream.
type RNG struct {
	seed   uint64
	label  string
	source *rand.Rand
}

// New creates an RNG seeded directly from seed. Used for the main game RNG,
// which is never snapshotted.
func New(seed uint64) *RNG {
	return &RNG{seed: seed, source: rand.New(rand.NewSource(int64(seed)))}
}

// Derive creates a sub-stream for a named stage by hashing the master seed,
// the stage label and a config fingerprint together with xxhash. Two calls
// with identical arguments always produce identical streams.
func Derive(masterSeed uint64, label string, configFingerprint []byte) *RNG {
	h := xxhash.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(label))
	_, _ = h.Write(configFingerprint)
	derived := h.Sum64()
	return &RNG{seed: derived, label: label, source: rand.New(rand.NewSource(int64(derived)))}
}

// Seed returns the concrete seed backing this stream.
func (r *RNG) Seed() uint64 { return r.seed }

// Label returns the stage label this stream was derived for, or "" for the
// main game RNG.
func (r *RNG) Label() string { return r.label }

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (r *RNG) Intn(n int) int { return r.source.Intn(n) }

// IntRange returns a pseudo-random integer in [min, max]. Panics if min > max.
func (r *RNG) IntRange(min, max int) int {
	if min > max {
		panic("rng: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + r.source.Intn(max-min+1)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 { return r.source.Float64() }

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool { return r.source.Intn(2) == 1 }

// Chance reports true with probability pct/100 (e.g. Chance(15) ~ 15%).
func (r *RNG) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return r.source.Intn(100) < pct
}

// Die rolls dice d sides and returns the sum, e.g. Die(8, 8) is "8d8".
func (r *RNG) Die(dice, sides int) int {
	if sides <= 0 || dice <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < dice; i++ {
		total += 1 + r.source.Intn(sides)
	}
	return total
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) { r.source.Shuffle(n, swap) }

// Uint64 returns a pseudo-random 64-bit unsigned integer, used to seed
// further derived streams (e.g. per-room or per-monster-group sub-seeds).
func (r *RNG) Uint64() uint64 { return r.source.Uint64() }

// Simple is the "simple" PRNG: a splitmix64 generator whose entire state is
// one uint64 value. Value semantics are deliberate — math/rand.Rand wraps
// its Source behind a pointer, so copying a Rand struct would still share
// the same mutable backing array and could not serve as an independent
// snapshot. Simple's single-word state can be copied by value, which is
// what makes Stack's Push/Pop below correct.
type Simple struct {
	state uint64
}

// NewSimple creates a Simple generator seeded directly from seed.
func NewSimple(seed uint64) *Simple {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &Simple{state: seed}
}

// Uint64 returns the next pseudo-random value and advances the state.
func (s *Simple) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (s *Simple) Intn(n int) int {
	if n <= 0 {
		panic("rng: Simple.Intn argument must be positive")
	}
	return int(s.Uint64() % uint64(n))
}

// IntRange returns a pseudo-random integer in [min, max].
func (s *Simple) IntRange(min, max int) int {
	if min > max {
		panic("rng: Simple.IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Chance reports true with probability pct/100.
func (s *Simple) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return s.Intn(100) < pct
}

// Stack is a stackable snapshot holder for the "simple" PRNG. Dungeon and
// wilderness/town generation swap the simple PRNG in, run a deterministic
// layout routine, then pop back to whatever state was active before the
// swap (spec.md §4.2.4, §9 "Seeding discipline"). Because Simple's state is
// a single uint64, Push/Pop are plain value copies with no aliasing.
type Stack struct {
	simple *Simple
	saved  []uint64
}

// NewStack creates a Stack wrapping the given Simple generator instance.
// The simple RNG is normally seeded once at process start from a world seed
// and reused across many town/wilderness generations.
func NewStack(simple *Simple) *Stack {
	return &Stack{simple: simple}
}

// Simple returns the wrapped simple generator for direct use inside a
// deterministic region.
func (s *Stack) Simple() *Simple { return s.simple }

// Push snapshots the simple RNG's current state onto the stack. Must be
// paired with a later Pop.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.simple.state)
}

// Pop restores the simple RNG to the state captured by the most recent
// Push. Panics if the stack is empty, since an unbalanced push/pop pair is
// a programmer bug (spec.md §7 "Programmer bug").
func (s *Stack) Pop() {
	if len(s.saved) == 0 {
		panic("rng: Stack.Pop called without a matching Push")
	}
	top := s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.simple.state = top
}

// Depth returns the number of outstanding (unpopped) snapshots.
func (s *Stack) Depth() int { return len(s.saved) }

// WorldSeed derives the deterministic town/wilderness seed for a world
// position, following spec.md §4.2.3's formula:
// seed_wild + world_index*600 + depth*37.
func WorldSeed(seedWild uint64, worldIndex, depth int) uint64 {
	return seedWild + uint64(worldIndex)*600 + uint64(depth)*37
}

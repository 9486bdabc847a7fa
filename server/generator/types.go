package generator

import (
	"fmt"

	"github.com/draconisPW/mangband-core/server/world"
)

// Request names the one chunk to build: where, how deep, which strategy,
// and the seed that makes the build reproducible (spec.md §4.2.4
// "Seeding").
type Request struct {
	WPos    world.Pos
	Profile world.Profile
	Seed    uint64

	// WorldIndex feeds the town seed formula (spec.md §4.2.3:
	// "seed_wild + world_index*600 + depth*37"); unused by dungeon-style
	// profiles.
	WorldIndex int
}

// GenerationError reports a failed build attempt, carrying the profile and
// stage so the dispatcher's retry loop and any caller-side logging can
// report which strategy and step failed (spec.md §7 "Generation failures
// propagate up the generator dispatcher").
type GenerationError struct {
	Profile world.Profile
	Stage   string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generator: %s: %s: %v", e.Profile, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func fail(profile world.Profile, stage string, err error) error {
	return &GenerationError{Profile: profile, Stage: stage, Err: err}
}

// roomAttemptCap and storeAttemptCap are the per-level bounds spec.md §4.2.1
// names ("~500 room attempts; ~100 store-placement attempts for towns").
const (
	roomAttemptCap  = 500
	storeAttemptCap = 100

	// tunnelIterationCap is the hard loop guard on a single tunnel dig
	// (spec.md §4.2.1 "hard cap of 2000 iterations per tunnel").
	tunnelIterationCap = 2000

	// minRegionSize is the connectedness pass's small-region erase
	// threshold (spec.md §4.2.2 "< 9 cells").
	minRegionSize = 9
)

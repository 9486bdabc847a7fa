package generator

import "errors"

// Sentinel causes wrapped by GenerationError. The dispatcher's retry loop
// (spec.md §7 "Generation failures propagate up the generator dispatcher,
// which retries ... a bounded number of times before escalating") retries
// on any error without distinguishing between them; callers can tell the
// causes apart with errors.Is.
var (
	errNoRoomsPlaced    = errors.New("generator: no rooms could be placed")
	errNoStairsPlaced   = errors.New("generator: no down stairs could be placed")
	errRetriesExhausted = errors.New("generator: retries exhausted for every candidate profile")
)

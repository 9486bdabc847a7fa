// Package rng implements the engine's deterministic random number sources.
//
// Two independent generators are exposed, matching spec.md §9's "Seeding
// discipline": the long-period main game RNG (RNG, backed by math/rand) for
// dungeon-level variability, and a single-word "simple" generator (Simple)
// used for deterministic regions such as town and wilderness layout. Stack
// wraps Simple with save/restore snapshots so a caller can swap the simple
// PRNG in, run a fully deterministic routine, and restore exactly the state
// that was active beforehand.
package rng

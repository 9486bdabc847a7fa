// Package world implements the grid/chunk data model of spec.md §3 and §4.1:
// world positions, the per-cell square grid, the object-pile and monster
// tables a chunk owns, and the World registry that loads and frees chunks
// on demand as players move between them.
//
// World keeps the registry-of-spatial-units-keyed-by-position shape common
// to server simulations, guarded by a single logical writer, but carries no
// transaction-queue machinery: spec.md §5 specifies a single-threaded
// cooperative simulation with no per-player goroutines, so there is no
// concurrent-writer hazard to arbitrate with a Tx abstraction.
package world

// Package scheduler implements the energy-based turn order of spec.md
// §4.6 "Scheduler and Turn Order": a fixed-rate tick counter, a
// speed-to-energy lookup, per-actor command queues, and the ordered
// per-tick sweep (players by id, then monsters by slot) that hands each
// sufficiently-energised actor its turn before running the chunk-level
// maintenance passes.
//
// The deterministic-order-rebuild-on-change shape and the Step()
// entry point follow the teacher example's redstone scheduler
// (server/world/redstone), adapted from a per-chunk circuit-worker budget
// model to a per-actor energy model — the core engine here has no
// per-unit goroutine workers, matching spec.md §5's single-threaded
// cooperative core.
package scheduler

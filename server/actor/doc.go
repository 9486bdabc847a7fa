// Package actor supplies the concrete scheduler.Command implementations
// (move, melee attack, cast) and the take_hit/mon_take_hit/death
// bookkeeping of spec.md §4.6-§4.7 that server/scheduler's Command
// interface and server/effect's damage application leave to their
// caller. It is the layer that ties a Player or Monster, a Chunk, and the
// energy scheduler together into one actionable turn.
package actor

// Package generator implements the dungeon-level generator (spec.md §4.2):
// eleven profile strategies (classic, modified, moria, labyrinth, cavern,
// hard-centre, lair, gauntlet, town, mang-town, arena) sharing a common
// pipeline of carve, room-placement, tunnel, connectedness, streamer and
// stair passes, dispatched through a single bounded-retry entry point.
package generator

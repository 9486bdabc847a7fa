// Package player implements the player-facing half of the simulation:
// the Player record itself and the pure state-derivation procedure
// (spec.md §4.8 "Player State Derivation") that turns base stats, race,
// class, equipment and timed effects into the adjusted State a turn
// actually uses (to-hit, to-ac, speed, blows, skills, resists, ...).
//
// CalcBonuses is a pure function of its inputs and touches no RNG, no
// world grid, and no I/O — the same separation the teacher example draws
// between entity state and the World/Tx layer that mutates it.
package player

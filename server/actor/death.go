package actor

import "github.com/draconisPW/mangband-core/server/player"

// DeathQueue tracks chunks frozen for death processing (spec.md §4.5
// "freeze the player's chunk until death processing", §4.6 "Death
// scheduling: a dead player's chunk is marked; the player is moved out at
// the next scheduler pass"). It is deliberately tiny: a set of pending
// player ids, drained once per scheduler Maintenance pass.
type DeathQueue struct {
	pending []*player.Player
}

// Mark freezes p for death processing at the next scheduler pass. A
// player already marked is not added twice.
func (q *DeathQueue) Mark(p *player.Player) {
	for _, existing := range q.pending {
		if existing == p {
			return
		}
	}
	q.pending = append(q.pending, p)
}

// Drain removes and returns every player currently marked, in the order
// they were marked, for the caller (server/world's chunk maintenance
// hook) to move out of their chunk and into the respawn/unstatic path.
func (q *DeathQueue) Drain() []*player.Player {
	out := q.pending
	q.pending = nil
	return out
}

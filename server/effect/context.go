package effect

import (
	"log/slog"

	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
)

// Context bundles the mutable state and hooks an effect needs to apply
// itself. It is assembled fresh by the caller for each dispatch rather than stored on the Chunk, since it also carries
// the per-dispatch RNG stage and player lookup that spec.md keeps out of
// the core data model (spec.md §9 "Global state").
type Context struct {
	Chunk  *world.Chunk
	RNG    *rng.RNG
	Status status.Table
	Log    *slog.Logger

	// PlayerAt resolves a player id to its live record, or nil if the
	// player has logged out or is not present in this context. Effects
	// never walk a global player table directly; the owning server does.
	PlayerAt func(id int32) *player.Player

	// OnMonsterDeath is invoked after a monster's HP reaches 0 and it has
	// been removed from the chunk, letting the caller award experience,
	// drop a corpse or schedule respawn without effect owning any of
	// that bookkeeping.
	OnMonsterDeath func(race *world.Race, at world.Grid)

	// OnPlayerDeath is invoked after a player's HP reaches 0, before
	// death is otherwise handled (server/actor schedules the respawn).
	OnPlayerDeath func(p *player.Player, cause string)

	// Message surfaces a single line of feedback text to whichever
	// actor(s) an effect decides are the audience (spec.md §4.4
	// "Failures ... fail with a message"). Nil is valid and silently
	// drops the message, matching HIDE-flagged effects.
	Message func(text string)
}

func (ctx *Context) say(text string) {
	if ctx.Message != nil {
		ctx.Message(text)
	}
}

// damageMonster applies amount of HP loss to the monster at idx, reporting
// whether it died, and if so removing it from the chunk and firing
// OnMonsterDeath. Pain/fear/confusion-waking follow-on effects are not
// applied here; server/actor's MonTakeHit is a separate path that does its
// own HP arithmetic and does not call this. This is the HP arithmetic and
// death bookkeeping shared by every effect path that can kill a monster
// (BALL, BOLT, CURSE, MELEE_BLOWS, ...).
func damageMonster(ctx *Context, idx int, amount int) (died bool) {
	if idx <= 0 || idx >= len(ctx.Chunk.Monsters) {
		return false
	}
	m := &ctx.Chunk.Monsters[idx]
	if !m.Alive() {
		return false
	}
	if amount <= 0 {
		return false
	}
	m.HP -= amount
	if m.HP > 0 {
		return false
	}
	race, at := m.Race, m.Grid
	ctx.Chunk.DeleteMonster(idx)
	if ctx.OnMonsterDeath != nil {
		ctx.OnMonsterDeath(race, at)
	}
	return true
}

// damagePlayer applies amount of HP loss to p, firing OnPlayerDeath if it
// brings the player to 0 or below. Player HP is never clamped below 0
// here: spec.md's negative-hp-on-death bookkeeping belongs to whatever
// death-message/respawn code consumes OnPlayerDeath, not to effect.
func damagePlayer(ctx *Context, p *player.Player, amount int, cause string) (died bool) {
	if p == nil || amount <= 0 {
		return false
	}
	p.CHP -= amount
	if p.CHP > 0 {
		return false
	}
	if ctx.OnPlayerDeath != nil {
		ctx.OnPlayerDeath(p, cause)
	}
	return true
}

func healMonster(m *world.Monster, amount int) {
	if m == nil || !m.Alive() || amount <= 0 {
		return
	}
	m.HP += amount
	if m.HP > m.MaxHP {
		m.HP = m.MaxHP
	}
}

func healPlayer(p *player.Player, amount int) {
	if p == nil || amount <= 0 {
		return
	}
	p.CHP += amount
	if p.CHP > p.MaxHP {
		p.CHP = p.MaxHP
	}
}

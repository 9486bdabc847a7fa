package effect

import (
	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
)

// HealHP implements HEAL_HP{base, m_bonus%}: heal the target player for
// at least base and at least m_bonus percent of their missing hp,
// whichever is larger, and report a no-op when already at full health
// (spec.md §7 "HEAL_HP{base, m_bonus} with player at full hp is a
// no-op").
func HealHP(ctx *Context, target *world.Monster, p *player.Player, base, pct int) Result {
	if p != nil {
		missing := p.MaxHP - p.CHP
		if missing <= 0 {
			return Result{}
		}
		amount := base
		if fromPct := missing * pct / 100; fromPct > amount {
			amount = fromPct
		}
		healPlayer(p, amount)
		return Result{Noticed: true}
	}
	if target != nil {
		missing := target.MaxHP - target.HP
		if missing <= 0 {
			return Result{}
		}
		amount := base
		if fromPct := missing * pct / 100; fromPct > amount {
			amount = fromPct
		}
		healMonster(target, amount)
		return Result{Noticed: true}
	}
	return Result{}
}

// MonHealHP implements MON_HEAL_HP: a monster heals itself for amount,
// clearing pain, fear, poison and bleed timers on success, matching
// spec.md's "pain/fear/poison/bleed clears" wording.
func MonHealHP(ctx *Context, m *world.Monster, amount int) Result {
	if m == nil || !m.Alive() {
		return Result{}
	}
	healMonster(m, amount)
	delete(m.Timed, status.Fear)
	delete(m.Timed, status.Poison)
	delete(m.Timed, status.Cut)
	return Result{Noticed: true}
}

// MonHealKin implements MON_HEAL_KIN: every monster sharing m's Group
// heals amount, with the same clears MON_HEAL_HP applies.
func MonHealKin(ctx *Context, m *world.Monster, amount int) Result {
	if m == nil || !m.Alive() || m.Group == 0 {
		return Result{}
	}
	noticed := false
	for i := 1; i < len(ctx.Chunk.Monsters); i++ {
		kin := &ctx.Chunk.Monsters[i]
		if kin.Alive() && kin.Group == m.Group {
			MonHealHP(ctx, kin, amount)
			noticed = true
		}
	}
	return Result{Noticed: noticed}
}

// Damage implements DAMAGE: a flat, shapeless damage application to
// whichever single target the caller names (used by traps and scripted
// triggers that already know their target, with no geometry to expand).
func Damage(ctx *Context, m *world.Monster, p *player.Player, amount int) Result {
	if p != nil {
		return Result{Noticed: damagePlayer(ctx, p, amount, "a trap")}
	}
	if m != nil && m.Alive() {
		damageMonster(ctx, m.MIdx, amount)
		return Result{Noticed: amount > 0}
	}
	return Result{}
}

// TapUnlife implements TAP_UNLIFE(amount): drain hp from an undead
// target and grant the caster amount/4 mana. Fails with a message if the
// target is not undead.
func TapUnlife(ctx *Context, m *world.Monster, caster *player.Player, amount int) Result {
	if m == nil || !m.Alive() || m.Race.Flags&world.RaceFlagUndead == 0 {
		return fail(ctx, "you can only tap the unlife of the undead")
	}
	damageMonster(ctx, m.MIdx, amount)
	if caster != nil {
		caster.CSP += amount / 4
		if caster.CSP > caster.MaxSP {
			caster.CSP = caster.MaxSP
		}
	}
	return Result{Noticed: true}
}

// Curse implements CURSE(dam): direct damage to a targeted actor at
// range, bypassing shape expansion (the "target" is already resolved).
// Fails with a message if there is no target.
func Curse(ctx *Context, m *world.Monster, p *player.Player, dam int) Result {
	if m == nil && p == nil {
		return fail(ctx, "you sense no target for your curse")
	}
	return Damage(ctx, m, p, dam)
}

package actor

import (
	"fmt"

	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
)

// nonPhysicalCapPct bounds how much of a single non-physical hit a flat
// reduction pass may absorb, so high-AC characters are never fully immune
// to elemental/status damage the way they can be to melee.
const nonPhysicalCapPct = 80

// HitGrade labels the severity message take_hit posts, chosen from the
// hit points left after the hit as a percentage of maximum (spec.md §4.5 "Post
// per-graded messages").
type HitGrade int

const (
	HitMinor HitGrade = iota
	HitModerate
	HitSevere
	HitFatal
)

func gradeFor(chp, maxhp int) HitGrade {
	if chp <= 0 {
		return HitFatal
	}
	frac := chp * 100 / maxhp
	switch {
	case frac < 10:
		return HitSevere
	case frac < 35:
		return HitModerate
	default:
		return HitMinor
	}
}

// Message returns the graded feedback line for a HitGrade, or "" for
// HitMinor: Angband only posts a low-hp warning at the Moderate/Severe/
// Fatal thresholds, not on every scratch.
func (g HitGrade) Message() string {
	switch g {
	case HitFatal:
		return "Death."
	case HitSevere:
		return "ARGH!"
	case HitModerate:
		return "Ouch!"
	default:
		return ""
	}
}

// TakeHitResult reports the outcome of a take_hit call.
type TakeHitResult struct {
	Died  bool
	Grade HitGrade
}

// TakeHit applies dmg to p following spec.md §4.5's five numbered steps:
// reduce, subtract, grade-message, redraw (raises player.FlagHP), and
// report death. dmg == 0 is a documented
// no-op (spec.md §7 "take_hit(dmg=0) does not mark dead and does not emit
// messages").
func TakeHit(p *player.Player, dmg, flatReduction int, physical bool, killer string, say func(string)) TakeHitResult {
	if dmg <= 0 {
		return TakeHitResult{}
	}
	reduced := dmg - flatReduction
	if !physical {
		cap := dmg * nonPhysicalCapPct / 100
		if reduced < dmg-cap {
			reduced = dmg - cap
		}
	}
	if reduced < 0 {
		reduced = 0
	}

	p.CHP -= reduced
	grade := gradeFor(p.CHP, p.MaxHP)
	if say != nil {
		if msg := grade.Message(); msg != "" {
			say(msg)
		}
	}
	p.SetFlag(player.FlagHP)
	if p.CHP > 0 {
		return TakeHitResult{Grade: grade}
	}

	p.Dead = true
	p.DiedFrom = killer
	return TakeHitResult{Died: true, Grade: HitFatal}
}

// MonTakeHitResult reports the outcome of a mon_take_hit call.
type MonTakeHitResult struct {
	Died bool
	Fear bool
}

// MonTakeHit applies dmg to m following spec.md §4.5's mon_take_hit steps:
// subtract, then either free the slot and report death, or maybe frighten
// it based on its remaining health fraction. The caller supplies the RNG
// stage and the death-message/xp-award/loot-roll side effects via onDeath
// since those depend on data tables this package does not own.
func MonTakeHit(c *world.Chunk, idx int, dmg int, r *rng.RNG, table status.Table, onDeath func(race *world.Race, at world.Grid)) MonTakeHitResult {
	if idx <= 0 || idx >= len(c.Monsters) {
		return MonTakeHitResult{}
	}
	m := &c.Monsters[idx]
	if !m.Alive() || dmg <= 0 {
		return MonTakeHitResult{}
	}
	m.HP -= dmg
	if m.HP <= 0 {
		race, at := m.Race, m.Grid
		c.DeleteMonster(idx)
		if onDeath != nil {
			onDeath(race, at)
		}
		return MonTakeHitResult{Died: true}
	}

	frac := m.HP * 100 / m.MaxHP
	fearChance := 100 - frac
	if fearChance > 0 && r.Chance(fearChance/2) {
		m.Flags |= world.MonFlagAwake
		m.Timed.Inc(table, status.Fear, 10+r.Intn(10))
		return MonTakeHitResult{Fear: true}
	}
	return MonTakeHitResult{}
}

// DeathScene formats the death-scene record line spec.md §4.5 calls for
// ("record death scene") — a short, stable summary rather than a full
// replay log, since the replay itself lives with whatever persistence
// layer server/data eventually owns.
func DeathScene(p *player.Player, killer string, depth int) string {
	return fmt.Sprintf("%s was slain by %s at depth %d", p.Name, killer, depth)
}

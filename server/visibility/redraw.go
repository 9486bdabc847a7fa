package visibility

import "github.com/draconisPW/mangband-core/server/player"

// upkeepOrder lists player.Flags bits grouped into spec.md §4.7's
// required processing order ("inventory/bonus/spells before view/
// distance/monsters"). Flags within one group carry no further ordering
// requirement between each other.
var upkeepOrder = []player.Flags{
	player.FlagBonus,
	player.FlagSpells,
	player.FlagHeavyWield,
	player.FlagHeavyShoot,
	player.FlagArmorCumber,
	player.FlagBlessWield,
	player.FlagView,
	player.FlagDistance,
	player.FlagMonsters,
	player.FlagHP,
	player.FlagMana,
}

// DrainUpkeep returns p's currently-raised flags in spec.md's required
// processing order and clears them from p, implementing "the upkeep
// processor is idempotent and ordered". A flag not present in
// upkeepOrder (there are none today, but a future addition would
// otherwise be silently dropped) is deliberately not special-cased: add
// it to upkeepOrder, don't patch around this function.
func DrainUpkeep(p *player.Player) []player.Flags {
	var out []player.Flags
	for _, f := range upkeepOrder {
		if p.Has(f) {
			out = append(out, f)
			p.ClearFlag(f)
		}
	}
	return out
}

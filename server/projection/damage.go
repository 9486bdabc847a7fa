package projection

import (
	"github.com/draconisPW/mangband-core/internal/mathx"
	"github.com/draconisPW/mangband-core/server/world"
)

// resistFactor expresses spec.md §4.3's "minus per-element resistance" as
// a multiplier: immune cells take no damage at all, resisted cells take
// half, vulnerable cells take one and a half times, normal cells are
// unaffected.
func resistFactor(r world.ElementFlag) (num, den int) {
	switch r {
	case world.ElementImmune:
		return 0, 1
	case world.ElementResist:
		return 1, 2
	case world.ElementVulnerable:
		return 3, 2
	default:
		return 1, 1
	}
}

// coneFalloff is the single rounding point for a cone cell's fractional
// intensity factor, using banker's rounding (round-half-to-even) so the
// result is reproducible across platforms regardless of float rounding
// mode (spec.md §9).
func coneFalloff(nominal int, intensity float64) int {
	return mathx.RoundHalfEven(float64(nominal) * intensity)
}

// DamageAt computes the damage one affected cell receives (spec.md §4.3
// "Damage scaling"): nominal damage scaled by the cone intensity factor
// (1.0 for every non-cone shape), reduced by element resistance, then
// scaled by linear distance falloff unless flags carries FlagConst.
// Integer arithmetic throughout; the result is never negative.
func DamageAt(nominal int, cell Cell, radius int, flags Flag, resist world.ElementFlag) int {
	dmg := coneFalloff(nominal, cell.Intensity)

	num, den := resistFactor(resist)
	dmg = dmg * num / den

	if !flags.Has(FlagConst) && radius > 0 {
		dmg = dmg * (radius - cell.Dist + 1) / radius
	}

	if dmg < 0 {
		return 0
	}
	return dmg
}

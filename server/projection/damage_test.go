package projection

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/world"
)

func TestDamageAtAppliesConstFlag(t *testing.T) {
	cell := Cell{Dist: 3, Intensity: 1}
	withConst := DamageAt(100, cell, 5, FlagConst, world.ElementNormal)
	withoutConst := DamageAt(100, cell, 5, 0, world.ElementNormal)
	if withConst != 100 {
		t.Fatalf("CONST damage = %d, want 100 (no distance falloff)", withConst)
	}
	if withoutConst >= withConst {
		t.Fatalf("non-CONST damage %d should fall off below CONST damage %d", withoutConst, withConst)
	}
}

func TestDamageAtImmuneIsZero(t *testing.T) {
	cell := Cell{Dist: 0, Intensity: 1}
	if got := DamageAt(100, cell, 5, FlagConst, world.ElementImmune); got != 0 {
		t.Fatalf("immune damage = %d, want 0", got)
	}
}

func TestDamageAtResistHalves(t *testing.T) {
	cell := Cell{Dist: 0, Intensity: 1}
	normal := DamageAt(100, cell, 5, FlagConst, world.ElementNormal)
	resisted := DamageAt(100, cell, 5, FlagConst, world.ElementResist)
	if resisted != normal/2 {
		t.Fatalf("resisted damage = %d, want %d (half of %d)", resisted, normal/2, normal)
	}
}

func TestDamageAtVulnerableIncreasesDamage(t *testing.T) {
	cell := Cell{Dist: 0, Intensity: 1}
	normal := DamageAt(100, cell, 5, FlagConst, world.ElementNormal)
	vulnerable := DamageAt(100, cell, 5, FlagConst, world.ElementVulnerable)
	if vulnerable <= normal {
		t.Fatalf("vulnerable damage %d should exceed normal damage %d", vulnerable, normal)
	}
}

func TestDamageAtNeverNegative(t *testing.T) {
	cell := Cell{Dist: 100, Intensity: 0}
	if got := DamageAt(5, cell, 1, 0, world.ElementNormal); got < 0 {
		t.Fatalf("damage = %d, want >= 0", got)
	}
}

func TestConeFalloffUsesBankersRounding(t *testing.T) {
	// 0.5 exactly should round to the nearest even integer.
	if got := coneFalloff(1, 0.5); got != 0 {
		t.Fatalf("coneFalloff(1, 0.5) = %d, want 0 (round to even)", got)
	}
	if got := coneFalloff(3, 0.5); got != 2 {
		t.Fatalf("coneFalloff(3, 0.5) = %d, want 2 (round to even)", got)
	}
}

package player

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
)

var testHPTable = func() []int {
	t := make([]int, 50)
	for i := range t {
		t[i] = 10 + i*8
	}
	return t
}()

func newTestPlayer() *Player {
	return &Player{
		ID:     1,
		Name:   "tester",
		Race:   &RaceDef{Name: "human"},
		Class:  &ClassDef{Name: "warrior", SpellStat: -1},
		Level:  5,
		Stats:  [statCount]int{16, 10, 10, 14, 14},
		Arena:  world.NewArena(),
		Timed:  status.Timers{},
	}
}

func TestCalcBonusesBaselineNoEquipment(t *testing.T) {
	p := newTestPlayer()
	st := CalcBonuses(p, status.Table{}, testHPTable, State{})

	if st.Stats[StatStr] != 16 {
		t.Fatalf("StatStr = %d, want 16", st.Stats[StatStr])
	}
	if st.MaxHP <= 0 {
		t.Fatalf("MaxHP = %d, want > 0", st.MaxHP)
	}
	if st.Blows < minBlows {
		t.Fatalf("Blows = %d, want >= %d", st.Blows, minBlows)
	}
	if st.MaxSP != 0 {
		t.Fatalf("MaxSP = %d, want 0 for a non-casting class", st.MaxSP)
	}
}

func TestCalcBonusesAppliesEquipmentMods(t *testing.T) {
	p := newTestPlayer()
	ring := p.Arena.New(world.Object{Kind: "ring", Mods: [world.ModifierCount]int{world.ModStr: 2}})
	p.Equip[SlotRing1] = ring

	st := CalcBonuses(p, status.Table{}, testHPTable, State{})
	if st.Stats[StatStr] != 18 {
		t.Fatalf("StatStr = %d, want 18 with +2 STR ring equipped", st.Stats[StatStr])
	}
}

func TestCalcBonusesAppliesTimedSpeedOnTopOfBase(t *testing.T) {
	p := newTestPlayer()
	p.BaseSpeed = 5
	p.Timed[status.Fast] = 10

	table := status.Table{
		status.Fast: {
			Effect: status.Fast,
			Grades: []status.Grade{
				{Threshold: 1, StatDeltas: map[string]int{"speed": 10}},
			},
		},
	}

	st := CalcBonuses(p, table, testHPTable, State{})
	if want := 125; st.Speed != want {
		t.Fatalf("Speed = %d, want %d (base 5 + hasted 10 + 110)", st.Speed, want)
	}
}

func TestCalcBonusesClampsStatsToRange(t *testing.T) {
	p := newTestPlayer()
	p.Stats[StatStr] = 99
	st := CalcBonuses(p, status.Table{}, testHPTable, State{})
	if st.Stats[StatStr] != statClampMax {
		t.Fatalf("StatStr = %d, want clamp max %d", st.Stats[StatStr], statClampMax)
	}
}

func TestCalcBonusesSetsUpkeepFlagOnMaxHPChange(t *testing.T) {
	p := newTestPlayer()
	prev := CalcBonuses(p, status.Table{}, testHPTable, State{})
	p.Upkeep = 0

	p.Level = 10
	next := CalcBonuses(p, status.Table{}, testHPTable, prev)
	if next.MaxHP == prev.MaxHP {
		t.Fatal("expected MaxHP to change after a level change")
	}
	if !p.Has(FlagHP) {
		t.Fatal("expected FlagHP to be set after a MaxHP change")
	}
}

func TestCalcBonusesTimedEffectAppliesStatDelta(t *testing.T) {
	p := newTestPlayer()
	p.Timed[status.Fear] = 10
	table := status.Table{
		status.Fear: {
			Effect: status.Fear,
			Grades: []status.Grade{
				{Threshold: 1, Label: "afraid", StatDeltas: map[string]int{"to_hit": -4}},
			},
		},
	}
	st := CalcBonuses(p, table, testHPTable, State{})
	baseline := CalcBonuses(newTestPlayer(), status.Table{}, testHPTable, State{})
	if st.ToHit != baseline.ToHit-4 {
		t.Fatalf("ToHit = %d, want %d (baseline %d minus fear penalty)", st.ToHit, baseline.ToHit-4, baseline.ToHit)
	}
}

func TestCalcBonusesArmorCumberWithTwoHandedAndShield(t *testing.T) {
	p := newTestPlayer()
	weapon := p.Arena.New(world.Object{Kind: "weapon", Mods: [world.ModifierCount]int{world.ModBlows: 2}})
	shield := p.Arena.New(world.Object{Kind: "shield"})
	p.Equip[SlotWeapon] = weapon
	p.Equip[SlotShield] = shield

	st := CalcBonuses(p, status.Table{}, testHPTable, State{})
	if !st.ArmorCumber {
		t.Fatal("expected ArmorCumber with a two-handed weapon and a shield equipped")
	}
}

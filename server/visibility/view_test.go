package visibility

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/world"
)

func TestSetMarksDirtyOnlyOnChange(t *testing.T) {
	v := New(world.Pos{}, 5, 5)
	g := world.Grid{X: 1, Y: 1}

	v.set(g, BitSeenEver)
	if len(v.DrainDirty()) != 1 {
		t.Fatal("expected the first set to mark dirty")
	}
	v.set(g, BitSeenEver)
	if len(v.DrainDirty()) != 0 {
		t.Fatal("expected a redundant set to not mark dirty again")
	}
}

func TestDrainDirtyDedupedFlagsRepeatedBatch(t *testing.T) {
	v := New(world.Pos{}, 5, 5)
	g := world.Grid{X: 1, Y: 1}

	v.set(g, BitSeenEver)
	if _, unchanged := v.DrainDirtyDeduped(); unchanged {
		t.Fatal("expected the first batch to not be flagged unchanged")
	}

	v.set(g, BitSeenEver)
	v.clear(g, BitSeenEver)
	v.set(g, BitSeenEver)
	if _, unchanged := v.DrainDirtyDeduped(); !unchanged {
		t.Fatal("expected a repeat of the same dirty square to be flagged unchanged")
	}

	other := world.Grid{X: 2, Y: 3}
	v.set(other, BitLightMemory)
	if _, unchanged := v.DrainDirtyDeduped(); unchanged {
		t.Fatal("expected a batch touching a different square to not be flagged unchanged")
	}
}

func TestBitsOutOfBoundsReturnsZero(t *testing.T) {
	v := New(world.Pos{}, 5, 5)
	if v.Bits(world.Grid{X: 99, Y: 99}) != 0 {
		t.Fatal("expected out-of-bounds Bits to return 0, not panic")
	}
}

func TestShadowObjectRoundTrip(t *testing.T) {
	v := New(world.Pos{}, 5, 5)
	g := world.Grid{X: 2, Y: 2}
	v.SetShadow(g, []ShadowObject{{Kind: "dagger", Number: 1}})
	if got := v.Shadow(g); len(got) != 1 || got[0].Kind != "dagger" {
		t.Fatalf("Shadow(%v) = %v, want one dagger", g, got)
	}
	v.SetShadow(g, nil)
	if got := v.Shadow(g); got != nil {
		t.Fatal("expected SetShadow(nil) to forget the square")
	}
}

func TestMonsterPerceptionForgetsOnPerceiveNone(t *testing.T) {
	v := New(world.Pos{}, 5, 5)
	v.SetMonsterPerception(7, PerceiveTelepathed)
	if v.MonsterPerceptionOf(7) != PerceiveTelepathed {
		t.Fatal("expected telepathed perception to be recorded")
	}
	v.SetMonsterPerception(7, PerceiveNone)
	if v.MonsterPerceptionOf(7) != PerceiveNone {
		t.Fatal("expected PerceiveNone to forget the monster")
	}
}

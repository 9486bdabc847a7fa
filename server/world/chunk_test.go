package world

import "testing"

func newTestChunk(h, w int) *Chunk {
	c := New(Pos{X: 0, Y: 0, Depth: 1}, h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				c.SetFeat(Grid{x, y}, FeatPerm)
			} else {
				c.SetFeat(Grid{x, y}, FeatFloor)
			}
		}
	}
	return c
}

func TestNewRejectsNonPositiveExtent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-positive extent")
		}
	}()
	New(Pos{}, 0, 10)
}

func TestSetFeatUpdatesHistogramAndFiresHook(t *testing.T) {
	c := newTestChunk(5, 5)
	var gotOld, gotNew Feature
	var fired bool
	c.OnSquareChanged = func(g Grid, old, new Feature) {
		fired = true
		gotOld, gotNew = old, new
	}

	before := c.FeatCount[FeatFloor]
	c.SetFeat(Grid{2, 2}, FeatRubble)
	if !fired {
		t.Fatal("expected OnSquareChanged to fire")
	}
	if gotOld != FeatFloor || gotNew != FeatRubble {
		t.Fatalf("got old=%v new=%v, want old=%v new=%v", gotOld, gotNew, FeatFloor, FeatRubble)
	}
	if c.FeatCount[FeatFloor] != before-1 {
		t.Fatalf("FeatFloor count = %d, want %d", c.FeatCount[FeatFloor], before-1)
	}
	if c.FeatCount[FeatRubble] != 1 {
		t.Fatalf("FeatRubble count = %d, want 1", c.FeatCount[FeatRubble])
	}
}

func TestSetFeatNoopOnSameFeature(t *testing.T) {
	c := newTestChunk(5, 5)
	called := false
	c.SetFeat(Grid{2, 2}, FeatFloor) // already floor, set hook after
	c.OnSquareChanged = func(Grid, Feature, Feature) { called = true }
	c.SetFeat(Grid{2, 2}, FeatFloor)
	if called {
		t.Fatal("OnSquareChanged must not fire when feature is unchanged")
	}
}

func TestSquarePanicsOutOfBounds(t *testing.T) {
	c := newTestChunk(5, 5)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds Square access")
		}
	}()
	c.Square(Grid{99, 99})
}

func TestPlaceMonsterRefusesOccupiedSquare(t *testing.T) {
	c := newTestChunk(5, 5)
	g := Grid{2, 2}
	if err := c.PlaceMonster(g, 1); err != nil {
		t.Fatalf("first placement: %v", err)
	}
	if err := c.PlaceMonster(g, 2); err == nil {
		t.Fatal("expected error placing monster onto occupied square")
	}
}

func TestPlacePlayerRefusesOccupiedSquare(t *testing.T) {
	c := newTestChunk(5, 5)
	g := Grid{2, 2}
	if err := c.PlaceMonster(g, 1); err != nil {
		t.Fatalf("PlaceMonster: %v", err)
	}
	if err := c.PlacePlayer(g, 7); err == nil {
		t.Fatal("expected error placing player onto occupied square")
	}
}

func TestSwapActorsExchangesOccupants(t *testing.T) {
	c := newTestChunk(5, 5)
	a, b := Grid{1, 1}, Grid{2, 2}
	if err := c.PlaceMonster(a, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.PlacePlayer(b, 9); err != nil {
		t.Fatal(err)
	}
	c.SwapActors(a, b)

	occA, idA := c.ActorAt(a)
	if occA != OccupantPlayer || idA != -9 {
		t.Fatalf("after swap, a = (%v, %d), want (player, -9)", occA, idA)
	}
	occB, idB := c.ActorAt(b)
	if occB != OccupantMonster || idB != 1 {
		t.Fatalf("after swap, b = (%v, %d), want (monster, 1)", occB, idB)
	}
}

func TestNewMonsterReusesFreedSlot(t *testing.T) {
	c := newTestChunk(10, 10)
	c.Monsters[0] = Monster{} // slot 0 reserved, stays empty

	idx1 := c.NewMonster(Monster{Race: &Race{Name: "rat"}, Grid: Grid{1, 1}})
	idx2 := c.NewMonster(Monster{Race: &Race{Name: "bat"}, Grid: Grid{2, 2}})
	if idx2 != idx1+1 {
		t.Fatalf("expected sequential slots, got %d then %d", idx1, idx2)
	}

	c.DeleteMonster(idx1)
	if c.Monsters[idx1].Race != nil {
		t.Fatal("expected freed slot's Race to be nil")
	}

	idx3 := c.NewMonster(Monster{Race: &Race{Name: "newt"}, Grid: Grid{3, 3}})
	if idx3 != idx1 {
		t.Fatalf("expected freed slot %d to be reused, got %d", idx1, idx3)
	}
	if c.MonMax != idx2+1 {
		t.Fatalf("MonMax must stay monotone: got %d, want %d", c.MonMax, idx2+1)
	}
}

func TestDeleteMonsterClearsSquareAndCheckInvariants(t *testing.T) {
	c := newTestChunk(10, 10)
	g := Grid{4, 4}
	idx := c.NewMonster(Monster{Race: &Race{Name: "rat"}, Grid: g})
	if err := c.PlaceMonster(g, idx); err != nil {
		t.Fatal(err)
	}
	if err := c.CheckInvariants(); err != nil {
		t.Fatalf("unexpected invariant failure: %v", err)
	}

	c.DeleteMonster(idx)
	if occ, _ := c.ActorAt(g); occ != OccupantNone {
		t.Fatalf("expected square to be cleared after delete, got %v", occ)
	}
	if err := c.CheckInvariants(); err != nil {
		t.Fatalf("unexpected invariant failure after delete: %v", err)
	}
}

func TestCheckInvariantsCatchesDanglingBackpointer(t *testing.T) {
	c := newTestChunk(10, 10)
	g := Grid{4, 4}
	idx := c.NewMonster(Monster{Race: &Race{Name: "rat"}, Grid: g})
	// Deliberately skip PlaceMonster: the monster's Grid field now claims a
	// square that does not point back to it.
	if err := c.CheckInvariants(); err == nil {
		t.Fatal("expected CheckInvariants to catch the missing back-pointer")
	}
	_ = idx
}

package visibility

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/world"
)

func newLitChunk(h, w int) *world.Chunk {
	c := world.New(world.Pos{}, h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetFeat(world.Grid{X: x, Y: y}, world.FeatFloor)
		}
	}
	return c
}

func TestUpdateMarksOriginAndNearbyVisible(t *testing.T) {
	c := newLitChunk(15, 15)
	v := New(world.Pos{}, 15, 15)
	origin := world.Grid{X: 7, Y: 7}

	Update(v, c, origin, 3)

	if !v.Bits(origin).has(BitCurrentlyVisible) {
		t.Fatal("expected the origin to be visible")
	}
	if !v.Bits(world.Grid{X: 8, Y: 7}).has(BitCurrentlyVisible) {
		t.Fatal("expected an adjacent open floor cell to be visible")
	}
	if v.Bits(world.Grid{X: 14, Y: 14}).has(BitCurrentlyVisible) {
		t.Fatal("expected a cell far beyond light radius to stay unseen")
	}
}

func TestUpdateStopsAtWalls(t *testing.T) {
	c := newLitChunk(15, 15)
	origin := world.Grid{X: 7, Y: 7}
	// Wall off everything east of x=8.
	for y := 0; y < 15; y++ {
		c.SetFeat(world.Grid{X: 9, Y: y}, world.FeatGranite)
	}
	v := New(world.Pos{}, 15, 15)

	Update(v, c, origin, 10)

	if !v.Bits(world.Grid{X: 9, Y: 7}).has(BitCurrentlyVisible) {
		t.Fatal("a wall cell right at the boundary should still be seen (its face is visible)")
	}
	if v.Bits(world.Grid{X: 10, Y: 7}).has(BitCurrentlyVisible) {
		t.Fatal("expected cells beyond the wall to stay unseen")
	}
}

func TestUpdateClearsStaleVisibility(t *testing.T) {
	c := newLitChunk(15, 15)
	v := New(world.Pos{}, 15, 15)
	Update(v, c, world.Grid{X: 2, Y: 2}, 3)
	if !v.Bits(world.Grid{X: 2, Y: 2}).has(BitCurrentlyVisible) {
		t.Fatal("expected the first origin to be visible")
	}

	Update(v, c, world.Grid{X: 12, Y: 12}, 3)
	if v.Bits(world.Grid{X: 2, Y: 2}).has(BitCurrentlyVisible) {
		t.Fatal("expected stale visibility from the old origin to clear")
	}
	if v.Bits(world.Grid{X: 2, Y: 2}).has(BitSeenEver) == false {
		t.Fatal("expected BitSeenEver to persist after visibility moves on")
	}
}

package world

import (
	"math/rand"
	"testing"
)

func TestLineOfSightBlockedByWall(t *testing.T) {
	c := newTestChunk(10, 10)
	c.SetFeat(Grid{5, 5}, FeatGranite)
	if LineOfSight(c, Grid{1, 5}, Grid{9, 5}) {
		t.Fatal("expected LOS to be blocked by intervening granite")
	}
}

func TestLineOfSightClearOpenRoom(t *testing.T) {
	c := newTestChunk(10, 10)
	if !LineOfSight(c, Grid{1, 1}, Grid{8, 8}) {
		t.Fatal("expected LOS across an open room")
	}
}

func TestLineOfSightEndpointsNeverTestedForOpacity(t *testing.T) {
	c := newTestChunk(10, 10)
	a, b := Grid{5, 5}, Grid{6, 5}
	c.SetFeat(a, FeatGranite)
	c.SetFeat(b, FeatGranite)
	if !LineOfSight(c, a, b) {
		t.Fatal("expected LOS to ignore opacity of the endpoints themselves")
	}
}

func TestLineOfSightSameGridIsTrivial(t *testing.T) {
	c := newTestChunk(10, 10)
	if !LineOfSight(c, Grid{3, 3}, Grid{3, 3}) {
		t.Fatal("a grid always has LOS to itself")
	}
}

func TestScatterZeroDistanceReturnsOriginIffPredicateHolds(t *testing.T) {
	c := newTestChunk(10, 10)
	rng := rand.New(rand.NewSource(1))
	origin := Grid{5, 5}

	g, ok := c.Scatter(rng, origin, 0, false, nil)
	if !ok || g != origin {
		t.Fatalf("Scatter(d=0, no predicate) = (%v, %v), want (%v, true)", g, ok, origin)
	}

	_, ok = c.Scatter(rng, origin, 0, false, func(Grid) bool { return false })
	if ok {
		t.Fatal("Scatter(d=0) must fail when the predicate rejects origin")
	}
}

func TestScatterRespectsDistanceAndLOS(t *testing.T) {
	c := newTestChunk(12, 12)
	c.SetFeat(Grid{6, 5}, FeatGranite) // wall directly east of origin, blocking LOS that way
	rng := rand.New(rand.NewSource(7))
	origin := Grid{5, 5}

	for i := 0; i < 50; i++ {
		g, ok := c.Scatter(rng, origin, 3, true, nil)
		if !ok {
			continue
		}
		if origin.Chebyshev(g) > 3 {
			t.Fatalf("Scatter returned %v, farther than d=3 from %v", g, origin)
		}
		if !LineOfSight(c, origin, g) {
			t.Fatalf("Scatter returned %v without LOS from %v", g, origin)
		}
	}
}

func TestScatterNReturnsDistinctGrids(t *testing.T) {
	c := newTestChunk(12, 12)
	rng := rand.New(rand.NewSource(3))
	got := c.ScatterN(rng, Grid{6, 6}, 4, 5, false, nil)
	if len(got) != 5 {
		t.Fatalf("got %d grids, want 5", len(got))
	}
	seen := make(map[Grid]bool)
	for _, g := range got {
		if seen[g] {
			t.Fatalf("ScatterN returned duplicate grid %v", g)
		}
		seen[g] = true
	}
}

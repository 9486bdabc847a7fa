package projection

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/world"
)

func TestExpandBoltStopsAtWall(t *testing.T) {
	c := newTestChunk(10, 10)
	c.SetFeat(world.Grid{X: 5, Y: 5}, world.FeatGranite)

	cells := expand(c, Params{Shape: ShapeBolt, Origin: world.Grid{X: 1, Y: 5}, Target: world.Grid{X: 9, Y: 5}})
	last := cells[len(cells)-1]
	if last.Grid != (world.Grid{X: 5, Y: 5}) {
		t.Fatalf("bolt should stop at the wall, last cell = %v", last.Grid)
	}
	for _, cell := range cells {
		if cell.Grid.X > 5 {
			t.Fatalf("bolt travelled past the wall to %v", cell.Grid)
		}
	}
}

func TestExpandBeamPassesThroughWalls(t *testing.T) {
	c := newTestChunk(10, 10)
	c.SetFeat(world.Grid{X: 5, Y: 5}, world.FeatGranite)

	cells := expand(c, Params{Shape: ShapeBeam, Origin: world.Grid{X: 1, Y: 5}, Target: world.Grid{X: 9, Y: 5}})
	last := cells[len(cells)-1]
	if last.Grid != (world.Grid{X: 9, Y: 5}) {
		t.Fatalf("beam should reach the target regardless of walls, last cell = %v", last.Grid)
	}
}

func TestExpandBallWithinRadius(t *testing.T) {
	c := newTestChunk(15, 15)
	centre := world.Grid{X: 7, Y: 7}
	cells := expand(c, Params{Shape: ShapeBall, Origin: world.Grid{X: 1, Y: 1}, Target: centre, Radius: 2})
	for _, cell := range cells {
		if centre.Exact(cell.Grid) > 2 {
			t.Fatalf("ball cell %v exceeds radius 2 from %v", cell.Grid, centre)
		}
	}
	if _, ok := containsGrid(cells, centre); !ok {
		t.Fatal("ball should include its own centre")
	}
}

func TestExpandBallExcludesCellsBlockedByWall(t *testing.T) {
	c := newTestChunk(15, 15)
	centre := world.Grid{X: 7, Y: 7}
	blocked := world.Grid{X: 7, Y: 9}
	c.SetFeat(world.Grid{X: 7, Y: 8}, world.FeatGranite)

	cells := expand(c, Params{Shape: ShapeBall, Origin: world.Grid{X: 1, Y: 1}, Target: centre, Radius: 3})
	if _, ok := containsGrid(cells, blocked); ok {
		t.Fatalf("ball cell %v is within radius but behind a wall from centre %v", blocked, centre)
	}
}

func TestExpandBlastCentresOnOrigin(t *testing.T) {
	c := newTestChunk(15, 15)
	origin := world.Grid{X: 7, Y: 7}
	cells := expand(c, Params{Shape: ShapeBlast, Origin: origin, Radius: 2})
	for _, cell := range cells {
		if origin.Exact(cell.Grid) > 2 {
			t.Fatalf("blast cell %v exceeds radius 2 from origin %v", cell.Grid, origin)
		}
	}
}

func TestExpandStarFiresEightRays(t *testing.T) {
	c := newTestChunk(15, 15)
	origin := world.Grid{X: 7, Y: 7}
	cells := expand(c, Params{Shape: ShapeStar, Origin: origin, Radius: 3})
	if len(cells) != 8*3 {
		t.Fatalf("expected 8 rays of length 3 in an open room, got %d cells", len(cells))
	}
}

func TestExpandConeStaysWithinArc(t *testing.T) {
	c := newTestChunk(15, 15)
	origin := world.Grid{X: 7, Y: 7}
	target := world.Grid{X: 12, Y: 7} // due east
	cells := expand(c, Params{
		Shape: ShapeCone, Origin: origin, Target: target,
		Radius: 4, DegreesOfArc: 60, DiameterOfSource: 10,
	})
	for _, cell := range cells {
		if cell.Grid.X < origin.X {
			t.Fatalf("cone cell %v lies behind the origin for an eastward cone", cell.Grid)
		}
	}
}

func TestExpandConeIntensityDecreasesWithDistance(t *testing.T) {
	c := newTestChunk(15, 15)
	origin := world.Grid{X: 7, Y: 7}
	target := world.Grid{X: 12, Y: 7}
	cells := expand(c, Params{
		Shape: ShapeCone, Origin: origin, Target: target,
		Radius: 4, DegreesOfArc: 60, DiameterOfSource: 10,
	})
	near, far := findByX(cells, 8), findByX(cells, 11)
	if near == nil || far == nil {
		t.Fatal("expected cone cells at both x=8 and x=11")
	}
	if far.Intensity >= near.Intensity {
		t.Fatalf("intensity should decrease with distance: near=%v far=%v", near.Intensity, far.Intensity)
	}
}

func TestExpandJumpIgnoresShapeAndTravel(t *testing.T) {
	c := newTestChunk(10, 10)
	origin := world.Grid{X: 3, Y: 3}
	cells := expand(c, Params{Shape: ShapeBall, Flags: FlagJump, Origin: origin, Target: world.Grid{X: 9, Y: 9}, Radius: 5})
	if len(cells) != 1 || cells[0].Grid != origin {
		t.Fatalf("JUMP must affect only the origin, got %v", cells)
	}
}

func containsGrid(cells []Cell, g world.Grid) (Cell, bool) {
	for _, c := range cells {
		if c.Grid == g {
			return c, true
		}
	}
	return Cell{}, false
}

func findByX(cells []Cell, x int) *Cell {
	for i := range cells {
		if cells[i].Grid.X == x && cells[i].Grid.Y == 7 {
			return &cells[i]
		}
	}
	return nil
}

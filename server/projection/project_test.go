package projection

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/world"
)

func TestProjectInvokesOnlyFlaggedHooks(t *testing.T) {
	c := newTestChunk(10, 10)
	var gridCalls, playerCalls int

	_, _ = Project(c, Params{
		Shape:  ShapeBolt,
		Flags:  FlagGrid,
		Origin: world.Grid{X: 1, Y: 1},
		Target: world.Grid{X: 5, Y: 1},
	}, Hooks{
		Grid:   func(world.Grid, Cell) bool { gridCalls++; return false },
		Player: func(world.Grid, Cell) bool { playerCalls++; return false },
	})

	if gridCalls == 0 {
		t.Fatal("expected Grid hook to run for FlagGrid")
	}
	if playerCalls != 0 {
		t.Fatal("Player hook must not run without FlagPlay")
	}
}

func TestProjectNoticedPropagatesFromHook(t *testing.T) {
	c := newTestChunk(10, 10)
	_, noticed := Project(c, Params{
		Shape:  ShapeSpot,
		Flags:  FlagPlay,
		Origin: world.Grid{X: 1, Y: 1},
		Target: world.Grid{X: 4, Y: 4},
	}, Hooks{
		Player: func(world.Grid, Cell) bool { return true },
	})
	if !noticed {
		t.Fatal("expected noticed=true when a hook reports true")
	}
}

func TestProjectNotNoticedWithNoHooks(t *testing.T) {
	c := newTestChunk(10, 10)
	_, noticed := Project(c, Params{
		Shape:  ShapeSpot,
		Flags:  FlagPlay,
		Origin: world.Grid{X: 1, Y: 1},
		Target: world.Grid{X: 4, Y: 4},
	}, Hooks{})
	if noticed {
		t.Fatal("expected noticed=false with no hooks installed")
	}
}

package generator

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

func isConnected(c *world.Chunk) bool {
	colors, reps := floodColor(c)
	if len(reps) == 0 {
		return true
	}
	counts := make(map[int]int)
	for _, color := range colors {
		counts[color]++
	}
	live := 0
	for _, n := range counts {
		if n > 0 {
			live++
		}
	}
	return live <= 1
}

func hasStair(c *world.Chunk, feat world.Feature) bool {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.Square(world.Grid{X: x, Y: y}).Feat == feat {
				return true
			}
		}
	}
	return false
}

func TestClassicProducesConnectedChunkWithStairs(t *testing.T) {
	req := Request{WPos: world.Pos{Depth: 3}, Profile: world.ProfileClassic, Seed: 12345}
	c, err := Classic(req)
	if err != nil {
		t.Fatalf("Classic: %v", err)
	}
	if !isConnected(c) {
		t.Fatal("expected a single connected passable region")
	}
	if !hasStair(c, world.FeatMore) {
		t.Fatal("expected at least one down stair")
	}
	if !hasStair(c, world.FeatLess) {
		t.Fatal("expected at least one up stair")
	}
}

func TestCavernProducesConnectedChunk(t *testing.T) {
	req := Request{WPos: world.Pos{Depth: 5}, Profile: world.ProfileCavern, Seed: 999}
	c, err := Cavern(req)
	if err != nil {
		t.Fatalf("Cavern: %v", err)
	}
	if !isConnected(c) {
		t.Fatal("expected a single connected passable region")
	}
}

func TestLabyrinthHasDoubledDimensions(t *testing.T) {
	req := Request{WPos: world.Pos{Depth: 7}, Profile: world.ProfileLabyrinth, Seed: 42}
	c, err := Labyrinth(req)
	if err != nil {
		t.Fatalf("Labyrinth: %v", err)
	}
	if c.Height != 32 || c.Width != 104 {
		t.Fatalf("Labyrinth dimensions = %dx%d, want 32x104", c.Height, c.Width)
	}
	if !c.LightLevel {
		t.Fatal("expected Labyrinth to set LightLevel")
	}
}

func TestLabyrinthWidenPropagatesInfoToAllThreeNeighbours(t *testing.T) {
	maze := [][]bool{
		{true, false, true},
		{false, false, false},
		{true, false, true},
	}
	c := world.New(world.Pos{}, 10, 10)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			anchor := world.Grid{X: 1 + x*2, Y: 1 + y*2}
			c.Square(anchor).Info = c.Square(anchor).Info.Set(world.InfoGlow)
		}
	}
	doubleMazeInto(c, maze, 3, 3)

	anchor := world.Grid{X: 1, Y: 1}
	for _, off := range [3]world.Grid{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		g := anchor.Add(off.X, off.Y)
		if !c.Square(g).Info.Has(world.InfoGlow) {
			t.Fatalf("expected widened neighbour %v to inherit InfoGlow", g)
		}
	}
}

func TestAddStairsRespectsMinimumSeparation(t *testing.T) {
	c := world.New(world.Pos{}, 20, 20)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			c.SetFeat(world.Grid{X: x, Y: y}, world.FeatFloor)
		}
	}
	r := rng.New(1)
	n := addStairs(c, r, world.FeatMore, 4)
	if n == 0 {
		t.Fatal("expected at least one stair placed")
	}
	var placed []world.Grid
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.Square(world.Grid{X: x, Y: y}).Feat == world.FeatMore {
				placed = append(placed, world.Grid{X: x, Y: y})
			}
		}
	}
	minSep := 20 / 4
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			if placed[i].Chebyshev(placed[j]) < minSep {
				t.Fatalf("stairs %v and %v are closer than min separation %d", placed[i], placed[j], minSep)
			}
		}
	}
}

func TestDispatcherGenerateReturnsARegisteredProfile(t *testing.T) {
	d := NewDispatcher()
	req := Request{WPos: world.Pos{Depth: 1}, Profile: world.ProfileClassic, Seed: 7}
	c, err := d.Generate(req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, ok := registry[c.Profile]; !ok {
		t.Fatalf("Generate returned chunk tagged with unregistered profile %v", c.Profile)
	}
}

func TestDispatcherDeduplicatesConcurrentSameWPos(t *testing.T) {
	d := NewDispatcher()
	wpos := world.Pos{Depth: 2}
	done := make(chan *world.Chunk, 4)
	for i := 0; i < 4; i++ {
		go func() {
			c, err := d.Generate(Request{WPos: wpos, Profile: world.ProfileClassic, Seed: 55})
			if err != nil {
				t.Error(err)
				done <- nil
				return
			}
			done <- c
		}()
	}
	var chunks []*world.Chunk
	for i := 0; i < 4; i++ {
		chunks = append(chunks, <-done)
	}
	for _, c := range chunks {
		if c == nil {
			t.Fatal("unexpected nil chunk")
		}
		if c != chunks[0] {
			t.Fatal("expected singleflight to return the same chunk to every concurrent caller")
		}
	}
}

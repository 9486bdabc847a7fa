package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// Streamer names one mineral vein kind and how many veins of what length
// to lay (spec.md §4.2 "Add streamers (magma/quartz/lava/water/sand)
// respecting dungeon flags").
type Streamer struct {
	Feat   world.Feature
	Count  int
	Length int
}

// DefaultStreamers is the classic/moria vein mix: a couple of magma and
// quartz seams, with a chance of a short lava or water vein.
func DefaultStreamers(r *rng.RNG) []Streamer {
	s := []Streamer{
		{Feat: world.FeatMagma, Count: 2, Length: 40},
		{Feat: world.FeatQuartz, Count: 2, Length: 30},
	}
	if r.Chance(25) {
		s = append(s, Streamer{Feat: world.FeatLava, Count: 1, Length: 20})
	}
	if r.Chance(15) {
		s = append(s, Streamer{Feat: world.FeatWater, Count: 1, Length: 20})
	}
	return s
}

// addStreamers carves each streamer as a short biased random walk through
// existing rock, only ever replacing granite: floors, doors and permanent
// walls are never touched, but a room's granite wall can be replaced.
func addStreamers(c *world.Chunk, r *rng.RNG, streamers []Streamer) {
	for _, s := range streamers {
		for i := 0; i < s.Count; i++ {
			walkStreamer(c, r, s.Feat, s.Length)
		}
	}
}

func walkStreamer(c *world.Chunk, r *rng.RNG, feat world.Feature, length int) {
	g := world.Grid{X: 1 + r.Intn(c.Width-2), Y: 1 + r.Intn(c.Height-2)}
	dir := world.AllDirections[r.Intn(len(world.AllDirections))]
	for i := 0; i < length; i++ {
		if c.InBoundsFully(g) && c.Square(g).Feat == world.FeatGranite {
			c.SetFeat(g, feat)
		}
		if r.Chance(20) {
			dir = world.AllDirections[r.Intn(len(world.AllDirections))]
		}
		next := world.NextGrid(g, dir)
		if !c.InBoundsFully(next) {
			break
		}
		g = next
	}
}

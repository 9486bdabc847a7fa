package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// MangTown builds spec.md §4.2.3's "Mang-town" profile: a central block of
// stores surrounded by a ring of houses, with a pond and a patch of forest
// dropped outside that ring, seeded the same deterministic way as Town.
func MangTown(req Request) (*world.Chunk, error) {
	const height, width = 60, 90
	seed := rng.WorldSeed(req.Seed, req.WorldIndex, req.WPos.Depth)
	simple := rng.NewSimple(seed)
	stack := rng.NewStack(simple)
	stack.Push()
	defer stack.Pop()

	c := world.New(req.WPos, height, width)
	c.Profile = req.Profile
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.SetFeat(world.Grid{X: x, Y: y}, world.FeatLooseDirt)
		}
	}
	for x := 0; x < width; x++ {
		c.SetFeat(world.Grid{X: x, Y: 0}, world.FeatPermStatic)
		c.SetFeat(world.Grid{X: x, Y: height - 1}, world.FeatPermStatic)
	}
	for y := 0; y < height; y++ {
		c.SetFeat(world.Grid{X: 0, Y: y}, world.FeatPermStatic)
		c.SetFeat(world.Grid{X: width - 1, Y: y}, world.FeatPermStatic)
	}

	centre := world.Grid{X: width / 2, Y: height / 2}
	placeCentralStoreBlock(c, centre)
	placeHouseRing(c, simple.Intn, centre)
	placePond(c, centre.Add(-width/3, 0))
	placeForestPatch(c, centre.Add(width/3, 0))

	stair := centre.Add(0, 8)
	c.SetFeat(stair, world.FeatMore)
	c.RegisterStair(stair, world.FeatMore)
	return c, nil
}

func placeCentralStoreBlock(c *world.Chunk, centre world.Grid) {
	const h, w = 7, 15
	topLeft := centre.Add(-w/2, -h/2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := topLeft.Add(x, y)
			if !c.InBoundsFully(g) {
				continue
			}
			if y == 0 || y == h-1 || x == 0 || x == w-1 {
				c.SetFeat(g, world.FeatPermStatic)
			} else {
				c.SetFeat(g, world.FeatFloorSafe)
			}
		}
	}
	for i := 0; i < 3; i++ {
		door := topLeft.Add(2+i*5, h-1)
		if c.InBoundsFully(door) {
			c.SetFeat(door, world.FeatStoreEntry)
		}
	}
}

// houseTarget is how many houses the ring tries to place; placeHouseRing
// retries random positions up to storeAttemptCap times (spec.md §4.2.1's
// "~100 store-placement attempts for towns" bound applies just as well to
// mang-town's house lots) to reach it, stopping early if the ring fills up
// before the cap is spent.
const houseTarget = 10

func placeHouseRing(c *world.Chunk, intn func(int) int, centre world.Grid) {
	const ringRadius = 18
	placed := 0
	for attempt := 0; attempt < storeAttemptCap && placed < houseTarget; attempt++ {
		offsetX := intn(ringRadius*2) - ringRadius
		offsetY := intn(ringRadius*2) - ringRadius
		origin := centre.Add(offsetX, offsetY)
		if placeHouse(c, origin) {
			placed++
		}
	}
}

// placeHouse carves a single house at origin if every cell it needs is
// still untouched dirt, returning whether it was placed.
func placeHouse(c *world.Chunk, origin world.Grid) bool {
	const h, w = 4, 5
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := origin.Add(x, y)
			if !c.InBoundsFully(g) || c.Square(g).Feat != world.FeatLooseDirt {
				return false
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := origin.Add(x, y)
			if y == 0 || y == h-1 || x == 0 || x == w-1 {
				c.SetFeat(g, world.FeatHomeClosed)
			} else {
				c.SetFeat(g, world.FeatFloorSafe)
			}
		}
	}
	return true
}

func placePond(c *world.Chunk, origin world.Grid) {
	for y := -3; y <= 3; y++ {
		for x := -4; x <= 4; x++ {
			if x*x+2*y*y > 16 {
				continue
			}
			g := origin.Add(x, y)
			if c.InBoundsFully(g) {
				c.SetFeat(g, world.FeatWater)
			}
		}
	}
}

func placeForestPatch(c *world.Chunk, origin world.Grid) {
	for y := -4; y <= 4; y++ {
		for x := -4; x <= 4; x++ {
			g := origin.Add(x, y)
			if c.InBoundsFully(g) && c.Square(g).Feat == world.FeatLooseDirt {
				c.SetFeat(g, world.FeatLogs)
			}
		}
	}
}

package generator

import (
	"math"

	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// storeCount is how many store entries a town lays out around its
// crossroads.
const storeCount = 8

// Town builds spec.md §4.2.3's "Town" profile: seeded by
// seed_wild + world_index*600 + depth*37 for a stable layout across
// restarts, lots laid out around a central crossroads with one store
// building per lot, and one down staircase two cells south of the
// crossroads. That staircase is placed at every depth, persistent
// WPos.Depth == 0 towns included; no separate exit staircase is placed,
// and the tavern lot is built the same way as every other store.
func Town(req Request) (*world.Chunk, error) {
	const height, width = 44, 66
	seed := rng.WorldSeed(req.Seed, req.WorldIndex, req.WPos.Depth)
	simple := rng.NewSimple(seed)
	stack := rng.NewStack(simple)
	stack.Push()
	defer stack.Pop()

	c := world.New(req.WPos, height, width)
	c.Profile = req.Profile
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.SetFeat(world.Grid{X: x, Y: y}, world.FeatStreet)
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

	crossroad := world.Grid{X: width / 2, Y: height / 2}
	lots := townLots(crossroad, storeCount)
	for i, lot := range lots {
		placeStoreLot(c, lot, i == 0)
	}

	c.RegisterStair(world.Grid{X: crossroad.X, Y: crossroad.Y + 2}, world.FeatMore)
	c.SetFeat(world.Grid{X: crossroad.X, Y: crossroad.Y + 2}, world.FeatMore)
	return c, nil
}

// townLots arranges n store lots in a ring around the crossroads, evenly
// spaced by angle; Town passes lot 0 to placeStoreLot as the tavern lot.
func townLots(centre world.Grid, n int) []world.Grid {
	lots := make([]world.Grid, n)
	const radius = 12
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		dx := int(radius * math.Cos(angle))
		dy := int(radius * math.Sin(angle))
		lots[i] = centre.Add(dx, dy)
	}
	return lots
}

// placeStoreLot carves a single small building with one store-entry door
// facing the crossroads. The tavern flag does not change the building.
func placeStoreLot(c *world.Chunk, origin world.Grid, tavern bool) {
	const h, w = 5, 7
	topLeft := origin.Add(-w/2, -h/2)
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
	door := topLeft.Add(w/2, h-1)
	if c.InBoundsFully(door) {
		c.SetFeat(door, world.FeatStoreEntry)
	}
	_ = tavern
}

package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// Gauntlet builds spec.md §4.2.3's profile: two cavern caverns joined by a
// single unmappable bridge corridor, with the upstair on the entry side
// and the downstair on the far side and the bridge itself marked
// InfoLimitedTele|InfoNoMap.
func Gauntlet(req Request) (*world.Chunk, error) {
	const height, width = 44, 160
	r := rng.Derive(req.Seed, req.Profile.String(), fingerprint(req))
	c := world.New(req.WPos, height, width)
	c.Profile = req.Profile
	carveAndWall(c)

	third := width / 3
	carveCavern(c, r, 1, 1, third, height-1)
	carveCavern(c, r, width-1-third, 1, width-1, height-1)

	bridgeY := height / 2
	carveBridge(c, third, width-1-third, bridgeY)

	entry := world.Grid{X: third / 2, Y: bridgeY}
	far := world.Grid{X: width - 1 - third/2, Y: bridgeY}
	c.SetFeat(entry, world.FeatLess)
	c.RegisterStair(entry, world.FeatLess)
	c.SetFeat(far, world.FeatMore)
	c.RegisterStair(far, world.FeatMore)

	if err := ensureConnectedness(c, r, classicDoorOdds); err != nil {
		return nil, fail(req.Profile, "connectedness", err)
	}
	addStreamers(c, r, DefaultStreamers(r))
	return c, nil
}

// carveBridge cuts a single-width corridor at row y between the two
// cavern halves and marks it InfoLimitedTele|InfoNoMap (spec.md §4.2.3
// "stairs placed asymmetrically ... with LIMITED_TELE and NO_MAP marks on
// the bridge").
func carveBridge(c *world.Chunk, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		g := world.Grid{X: x, Y: y}
		if !c.InBoundsFully(g) {
			continue
		}
		c.SetFeat(g, world.FeatFloor)
		sq := c.Square(g)
		sq.Info = sq.Info.Set(world.InfoLimitedTele | world.InfoNoMap)
	}
}

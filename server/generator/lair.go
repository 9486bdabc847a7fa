package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// Lair builds spec.md §4.2.3's profile: a modified-style half (rooms and
// tunnels) joined to a cavern half. The cavern half is the level's "pit"
// — a themed monster nest — but population is left to the caller (the
// race table a pit theme draws from is one of §4.9's content tables, not
// yet wired to this package); Lair only shapes the terrain and flags the
// cavern half InfoMonRestrict so a populate pass knows where the themed
// monsters belong.
func Lair(req Request) (*world.Chunk, error) {
	const height, width = 60, 160
	r := rng.Derive(req.Seed, req.Profile.String(), fingerprint(req))
	c := world.New(req.WPos, height, width)
	c.Profile = req.Profile
	carveAndWall(c)

	half := width / 2
	blocks := partitionBlocksIn(1, 1, half-1, height-2, 13, 15)
	centres := placeRoomsIn(c, r, ClassicTemplates(), req.WPos.Depth, blocks)
	if len(centres) == 0 {
		return nil, fail(req.Profile, "place-rooms", errNoRoomsPlaced)
	}
	connectRoomCentres(c, r, centres, classicDoorOdds)

	carveCavern(c, r, half, 1, width-1, height-1)
	flagPit(c, half, 1, width-1, height-1)

	if err := ensureConnectedness(c, r, classicDoorOdds); err != nil {
		return nil, fail(req.Profile, "connectedness", err)
	}
	addStreamers(c, r, DefaultStreamers(r))
	if n := addStairs(c, r, world.FeatMore, 2); n == 0 {
		return nil, fail(req.Profile, "stairs", errNoStairsPlaced)
	}
	addStairs(c, r, world.FeatLess, 1)
	return c, nil
}

func flagPit(c *world.Chunk, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g := world.Grid{X: x, Y: y}
			if !c.InBounds(g) || !c.Square(g).Feat.Passable() {
				continue
			}
			sq := c.Square(g)
			sq.Info = sq.Info.Set(world.InfoMonRestrict)
		}
	}
}

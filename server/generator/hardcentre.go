package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// HardCentre builds spec.md §4.2.3's profile: a single greater-vault chunk
// (a large rectangular room flagged InfoVault, standing in for the data-
// driven greater vault the full content tables would supply) surrounded
// by four cavern quadrants, stitched together by ensure_connectedness.
func HardCentre(req Request) (*world.Chunk, error) {
	const height, width = 66, 132
	r := rng.Derive(req.Seed, req.Profile.String(), fingerprint(req))
	c := world.New(req.WPos, height, width)
	c.Profile = req.Profile
	carveAndWall(c)

	midY, midX := height/2, width/2
	vx0, vy0, vx1, vy1 := placeGreaterVault(c, midX, midY)

	// Each quadrant stops two cells short of the vault's bounding box so
	// the cavern carve can never touch a vault-flagged square.
	carveCavern(c, r, 1, 1, vx0-2, vy0-2)
	carveCavern(c, r, vx1+2, 1, width-1, vy0-2)
	carveCavern(c, r, 1, vy1+2, vx0-2, height-1)
	carveCavern(c, r, vx1+2, vy1+2, width-1, height-1)

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

// placeGreaterVault carves the central vault room and returns its
// bounding box (x0, y0, x1, y1) so the caller can keep the surrounding
// cavern carve from ever touching a vault-flagged square.
func placeGreaterVault(c *world.Chunk, midX, midY int) (x0, y0, x1, y1 int) {
	const h, w = 15, 25
	topLeft := world.Grid{X: midX - w/2, Y: midY - h/2}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := topLeft.Add(x, y)
			if !c.InBoundsFully(g) {
				continue
			}
			if y == 0 || y == h-1 || x == 0 || x == w-1 {
				c.SetFeat(g, world.FeatGranite)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoWallOuter | world.InfoVault)
			} else {
				c.SetFeat(g, world.FeatFloor)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoRoom | world.InfoVault)
			}
		}
	}
	return topLeft.X, topLeft.Y, topLeft.X + w, topLeft.Y + h
}

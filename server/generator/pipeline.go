package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// dungeonSpec parameterises the common pipeline of spec.md §4.2 across
// the profiles that share it (classic, modified, moria): extent, the room
// template list, door odds at intersections, and how many up/down stairs
// to place.
type dungeonSpec struct {
	Height, Width        int
	Templates            []RoomTemplate
	DoorOdds             doorOdds
	DownStairs, UpStairs int
	Customize            func(c *world.Chunk, r *rng.RNG)
}

// buildDungeon runs spec.md §4.2's eight-step "Common pipeline" against
// spec: carve rock and wall the border, place rooms, connect them with
// tunnels, ensure global connectedness, add streamers, place stairs, then
// run the profile's own terrain customisation pass.
func buildDungeon(req Request, spec dungeonSpec) (*world.Chunk, error) {
	r := rng.Derive(req.Seed, req.Profile.String(), fingerprint(req))

	c := world.New(req.WPos, spec.Height, spec.Width)
	c.Profile = req.Profile

	carveAndWall(c)

	centres := placeRooms(c, r, spec.Templates, req.WPos.Depth)
	if len(centres) == 0 {
		return nil, fail(req.Profile, "place-rooms", errNoRoomsPlaced)
	}
	connectRoomCentres(c, r, centres, spec.DoorOdds)

	if err := ensureConnectedness(c, r, spec.DoorOdds); err != nil {
		return nil, fail(req.Profile, "connectedness", err)
	}

	addStreamers(c, r, DefaultStreamers(r))

	if n := addStairs(c, r, world.FeatMore, spec.DownStairs); n == 0 && spec.DownStairs > 0 {
		return nil, fail(req.Profile, "stairs", errNoStairsPlaced)
	}
	if spec.UpStairs > 0 {
		addStairs(c, r, world.FeatLess, spec.UpStairs)
	}

	if spec.Customize != nil {
		spec.Customize(c, r)
	}
	return c, nil
}

// carveAndWall fills the whole chunk with solid rock, then replaces the
// outermost ring with permanent wall (spec.md §3 invariants 1-2; New
// itself deliberately leaves the border un-walled so every generator
// decides its own permanent-wall variant here).
func carveAndWall(c *world.Chunk) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			c.SetFeat(world.Grid{X: x, Y: y}, world.FeatGranite)
		}
	}
	for x := 0; x < c.Width; x++ {
		c.SetFeat(world.Grid{X: x, Y: 0}, world.FeatPerm)
		c.SetFeat(world.Grid{X: x, Y: c.Height - 1}, world.FeatPerm)
	}
	for y := 0; y < c.Height; y++ {
		c.SetFeat(world.Grid{X: 0, Y: y}, world.FeatPerm)
		c.SetFeat(world.Grid{X: c.Width - 1, Y: y}, world.FeatPerm)
	}
}

// connectRoomCentres tunnels each room to the nearest room already
// connected, building a minimum-spanning chain rather than a full mesh so
// the corridor count stays proportional to room count (spec.md §4.2
// "Connect rooms with tunnels").
func connectRoomCentres(c *world.Chunk, r *rng.RNG, centres []world.Grid, odds doorOdds) {
	connected := []world.Grid{centres[0]}
	remaining := append([]world.Grid(nil), centres[1:]...)
	for len(remaining) > 0 {
		bestI, bestJ, bestDist := 0, 0, -1
		for i, from := range connected {
			for j, to := range remaining {
				d := from.Chebyshev(to)
				if bestDist < 0 || d < bestDist {
					bestI, bestJ, bestDist = i, j, d
				}
			}
		}
		_ = tunnelBetween(c, r, connected[bestI], remaining[bestJ], odds)
		connected = append(connected, remaining[bestJ])
		remaining = append(remaining[:bestJ], remaining[bestJ+1:]...)
	}
}

func fingerprint(req Request) []byte {
	return []byte(req.WPos.String())
}

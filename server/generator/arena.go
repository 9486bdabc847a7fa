package generator

import "github.com/draconisPW/mangband-core/server/world"

// Arena builds spec.md §4.2's "arena" profile: a single enclosed combat
// room with no stairs, walled in FeatPermArena rather than ordinary
// permanent rock so it is never mistaken for a regular dungeon boundary.
func Arena(req Request) (*world.Chunk, error) {
	const height, width = 21, 21
	c := world.New(req.WPos, height, width)
	c.Profile = req.Profile

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g := world.Grid{X: x, Y: y}
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				c.SetFeat(g, world.FeatPermArena)
			} else {
				c.SetFeat(g, world.FeatFloor)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoRoom)
			}
		}
	}
	return c, nil
}

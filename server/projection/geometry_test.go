package projection

import "github.com/draconisPW/mangband-core/server/world"

func newTestChunk(h, w int) *world.Chunk {
	c := world.New(world.Pos{X: 0, Y: 0, Depth: 1}, h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetFeat(world.Grid{X: x, Y: y}, world.FeatFloor)
		}
	}
	return c
}

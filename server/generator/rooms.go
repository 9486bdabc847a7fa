package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// RoomTemplate is one entry of a profile's room template list (spec.md
// §4.2 "profile supplies a list of room templates with cutoff and
// rarity"). Cutoff gates a template out below a minimum depth; Rarity is
// the denominator of a 1/Rarity weighted pick among templates that pass
// the cutoff and fit the block.
type RoomTemplate struct {
	Name   string
	Height int
	Width  int
	Cutoff int
	Rarity int

	// Build carves the room into c with its top-left corner at origin. It
	// returns false if the squares it would need are already occupied by
	// another room, in which case the caller discards the attempt without
	// mutating c.
	Build func(c *world.Chunk, r *rng.RNG, origin world.Grid) bool
}

// ClassicTemplates is the default room list shared by classic, modified
// and moria-style profiles: a plain rectangle, a pillared hall, and a
// small overlapping-circle room, ordered cheapest-to-rarest.
func ClassicTemplates() []RoomTemplate {
	return applyRoomProfileOverride([]RoomTemplate{
		{Name: "plain", Height: 7, Width: 11, Cutoff: 0, Rarity: 1, Build: buildPlainRoom},
		{Name: "pillared", Height: 9, Width: 13, Cutoff: 5, Rarity: 3, Build: buildPillaredRoom},
		{Name: "overlap-circle", Height: 11, Width: 11, Cutoff: 10, Rarity: 6, Build: buildCircleRoom},
	})
}

// RoomProfileOverride lets server/data's authored rarity/cutoff table
// rescale the named templates above after they are built, without this
// package importing server/data (which itself imports server/generator to
// reach RoomTemplate). Nil, the default, leaves ClassicTemplates' numbers
// as the built-in baseline; server/data's Install sets it once at startup.
var RoomProfileOverride func(templates []RoomTemplate) []RoomTemplate

func applyRoomProfileOverride(templates []RoomTemplate) []RoomTemplate {
	if RoomProfileOverride == nil {
		return templates
	}
	return RoomProfileOverride(templates)
}

// blank is the carve pass's starting terrain: solid rock with no Info bits
// set. A square still reading as blank is fair game for a room template;
// anything else (prior room, tunnel, or border wall) is not.
func blank(c *world.Chunk, g world.Grid) bool {
	sq := c.Square(g)
	return sq.Feat == world.FeatGranite && sq.Info == 0
}

func fitsEmpty(c *world.Chunk, origin world.Grid, h, w int) bool {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := origin.Add(x, y)
			if !c.InBoundsFully(g) {
				return false
			}
			if !blank(c, g) {
				return false
			}
		}
	}
	return true
}

func buildPlainRoom(c *world.Chunk, r *rng.RNG, origin world.Grid) bool {
	h, w := 7, 11
	if !fitsEmpty(c, origin, h, w) {
		return false
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := origin.Add(x, y)
			if y == 0 || y == h-1 || x == 0 || x == w-1 {
				c.SetFeat(g, world.FeatGranite)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoWallOuter)
			} else {
				c.SetFeat(g, world.FeatFloor)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoRoom)
			}
		}
	}
	return true
}

func buildPillaredRoom(c *world.Chunk, r *rng.RNG, origin world.Grid) bool {
	h, w := 9, 13
	if !fitsEmpty(c, origin, h, w) {
		return false
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := origin.Add(x, y)
			if y == 0 || y == h-1 || x == 0 || x == w-1 {
				c.SetFeat(g, world.FeatGranite)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoWallOuter)
			} else {
				c.SetFeat(g, world.FeatFloor)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoRoom)
			}
		}
	}
	for y := 3; y <= h-4; y += 2 {
		for x := 3; x <= w-4; x += 2 {
			c.SetFeat(origin.Add(x, y), world.FeatGranite)
		}
	}
	return true
}

func buildCircleRoom(c *world.Chunk, r *rng.RNG, origin world.Grid) bool {
	h, w := 11, 11
	if !fitsEmpty(c, origin, h, w) {
		return false
	}
	cx, cy := w/2, h/2
	radius := w / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := origin.Add(x, y)
			d := (world.Grid{X: x, Y: y}).Exact(world.Grid{X: cx, Y: cy})
			switch {
			case d > radius:
				// leave blank: outside the circle stays uncarved rock
			case d == radius:
				c.SetFeat(g, world.FeatGranite)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoWallOuter)
			default:
				c.SetFeat(g, world.FeatFloor)
				c.Square(g).Info = c.Square(g).Info.Set(world.InfoRoom)
			}
		}
	}
	return true
}

// partitionBlocks divides the carveable interior of an h x w chunk into a
// grid of equally sized blocks, the "partition into blocks" step of
// spec.md §4.2's common pipeline. Block extent is sized so the largest
// template in ClassicTemplates still fits with a one-cell gutter.
func partitionBlocks(height, width, blockH, blockW int) []world.Grid {
	return partitionBlocksIn(1, 1, width, height, blockH, blockW)
}

// partitionBlocksIn is partitionBlocks restricted to the rectangle
// [x0,y0)-(x0+w,y0+h), used by the lair profile, which only wants the
// common room-and-tunnel pipeline to run across part of the chunk.
func partitionBlocksIn(x0, y0, w, h, blockH, blockW int) []world.Grid {
	var blocks []world.Grid
	for y := y0; y+blockH < y0+h; y += blockH {
		for x := x0; x+blockW < x0+w; x += blockW {
			blocks = append(blocks, world.Grid{X: x, Y: y})
		}
	}
	return blocks
}

// pickTemplate performs the "random-key plus depth-driven rarity roll"
// selection spec.md §4.2 names: templates below their Cutoff are excluded,
// then a 1/Rarity weighted roll picks among the rest; the rarest tried
// template never loses to a commoner one once it clears its own roll, so
// ties favor whichever is scanned first.
func pickTemplate(r *rng.RNG, templates []RoomTemplate, depth int) (RoomTemplate, bool) {
	order := shuffledIndices(r, len(templates))
	for _, i := range order {
		t := templates[i]
		if depth < t.Cutoff {
			continue
		}
		if t.Rarity <= 1 || r.Chance(100/t.Rarity) {
			return t, true
		}
	}
	return RoomTemplate{}, false
}

// placeRooms runs the room-attempt loop: up to roomAttemptCap tries,
// one per partitioned block in shuffled order, each making a single
// depth-driven template pick and a single build attempt; a block whose
// pick or build fails is left empty. It returns the centre grid of every room it
// placed, in placement order, for the tunnel-connection pass that follows.
func placeRooms(c *world.Chunk, r *rng.RNG, templates []RoomTemplate, depth int) []world.Grid {
	return placeRoomsIn(c, r, templates, depth, partitionBlocks(c.Height, c.Width, 13, 15))
}

// placeRoomsIn is placeRooms against a caller-supplied block list, letting
// composite profiles confine the room-and-tunnel pipeline to part of the
// chunk (spec.md §4.2.3 "Lair").
func placeRoomsIn(c *world.Chunk, r *rng.RNG, templates []RoomTemplate, depth int, blocks []world.Grid) []world.Grid {
	order := shuffledIndices(r, len(blocks))
	var centres []world.Grid
	attempts := 0
	for _, bi := range order {
		if attempts >= roomAttemptCap {
			break
		}
		attempts++
		tmpl, ok := pickTemplate(r, templates, depth)
		if !ok {
			continue
		}
		origin := blocks[bi]
		if tmpl.Build(c, r, origin) {
			centres = append(centres, origin.Add(tmpl.Width/2, tmpl.Height/2))
		}
	}
	return centres
}

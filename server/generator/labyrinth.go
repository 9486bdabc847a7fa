package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// Labyrinth builds spec.md §8 example 4 exactly: an odd-sized 51x15 maze
// area Kruskal-carved cell-by-cell, then doubled so every logical maze
// cell occupies a 2x2 block of the final chunk (dimensions
// (15*2+2, 51*2+2) = (32, 104)), lit throughout.
func Labyrinth(req Request) (*world.Chunk, error) {
	const mazeW, mazeH = 51, 15
	r := rng.Derive(req.Seed, req.Profile.String(), fingerprint(req))

	maze := kruskalMaze(r, mazeW, mazeH)

	chunkH, chunkW := mazeH*2+2, mazeW*2+2
	c := world.New(req.WPos, chunkH, chunkW)
	c.Profile = req.Profile
	c.LightLevel = true
	carveAndWall(c)

	doubleMazeInto(c, maze, mazeW, mazeH)

	if n := addStairs(c, r, world.FeatMore, 1); n == 0 {
		return nil, fail(req.Profile, "stairs", errNoStairsPlaced)
	}
	addStairs(c, r, world.FeatLess, 1)
	return c, nil
}

// kruskalMaze carves a perfect maze into a w x h odd-sized grid using
// randomized Kruskal's algorithm: cells sit at even (x,y), walls between
// adjacent cells sit at the odd coordinate between them, and a wall is
// removed only when doing so joins two not-yet-connected cells (spec.md §8
// example 4 "the odd-sized area is Kruskal-carved").
func kruskalMaze(r *rng.RNG, w, h int) [][]bool {
	grid := make([][]bool, h)
	for y := range grid {
		grid[y] = make([]bool, w)
	}
	cellsX, cellsY := (w+1)/2, (h+1)/2
	for cy := 0; cy < cellsY; cy++ {
		for cx := 0; cx < cellsX; cx++ {
			x, y := cx*2, cy*2
			if x < w && y < h {
				grid[y][x] = true
			}
		}
	}

	uf := newUnionFind(cellsX * cellsY)
	type edge struct{ cx, cy, dx, dy int } // wall between (cx,cy) and (cx+dx,cy+dy)
	var edges []edge
	for cy := 0; cy < cellsY; cy++ {
		for cx := 0; cx < cellsX; cx++ {
			if cx+1 < cellsX {
				edges = append(edges, edge{cx, cy, 1, 0})
			}
			if cy+1 < cellsY {
				edges = append(edges, edge{cx, cy, 0, 1})
			}
		}
	}
	order := shuffledIndices(r, len(edges))
	for _, i := range order {
		e := edges[i]
		a := e.cy*cellsX + e.cx
		b := (e.cy+e.dy)*cellsX + (e.cx + e.dx)
		if uf.union(a, b) {
			wx, wy := e.cx*2+e.dx, e.cy*2+e.dy
			if wx < w && wy < h {
				grid[wy][wx] = true
			}
		}
	}
	return grid
}

type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union joins the sets containing a and b, returning true if they were
// previously distinct (i.e. the edge was actually needed).
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	u.parent[ra] = rb
	return true
}

// doubleMazeInto replicates each maze cell's floor/wall state (and, per
// SPEC_FULL's resolution of the "wide" open question, its full Info
// bitset) to the three extra neighbour cells the doubling introduces, so
// a lit maze cell reads as uniformly lit across its doubled footprint.
func doubleMazeInto(c *world.Chunk, maze [][]bool, mazeW, mazeH int) {
	for my := 0; my < mazeH; my++ {
		for mx := 0; mx < mazeW; mx++ {
			anchor := world.Grid{X: 1 + mx*2, Y: 1 + my*2}
			feat := world.FeatGranite
			if maze[my][mx] {
				feat = world.FeatFloor
			}
			c.SetFeat(anchor, feat)
			info := c.Square(anchor).Info
			for _, off := range [3]world.Grid{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
				g := anchor.Add(off.X, off.Y)
				if !c.InBoundsFully(g) {
					continue
				}
				c.SetFeat(g, feat)
				c.Square(g).Info = info
			}
		}
	}
}

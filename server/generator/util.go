package generator

import "github.com/draconisPW/mangband-core/server/rng"

// shuffledIndices returns a pseudo-random permutation of 0..n-1, the
// "random-key" part of spec.md §4.2's "random-key plus depth-driven
// rarity roll" template selection and the block/store attempt ordering.
func shuffledIndices(r *rng.RNG, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	return idx
}

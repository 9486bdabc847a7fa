package projection

import "github.com/draconisPW/mangband-core/server/world"

// maxRingDistance bounds the precomputed ring table; nothing in spec.md's
// shapes needs a radius beyond this (the largest named radius is a
// greater-vault-scale ball, well under 9).
const maxRingDistance = 9

// ringOffsets[d] holds every grid offset at exactly Chebyshev distance d
// from the origin, sorted for a stable, deterministic iteration order.
// Generated once at init() rather than hand-maintained (spec.md §9
// "dist_offsets precomputed rings").
var ringOffsets [maxRingDistance + 1][]world.Grid

func init() {
	for d := 0; d <= maxRingDistance; d++ {
		ringOffsets[d] = generateRing(d)
	}
}

func generateRing(d int) []world.Grid {
	if d == 0 {
		return []world.Grid{{X: 0, Y: 0}}
	}
	var ring []world.Grid
	for dy := -d; dy <= d; dy++ {
		for dx := -d; dx <= d; dx++ {
			g := world.Grid{X: dx, Y: dy}
			if (world.Grid{}).Chebyshev(g) == d {
				ring = append(ring, g)
			}
		}
	}
	return ring
}

// RingOffsets returns the offsets at exactly Chebyshev distance d from any
// origin, or nil if d exceeds maxRingDistance. Callers translate by adding
// the origin grid themselves.
func RingOffsets(d int) []world.Grid {
	if d < 0 || d > maxRingDistance {
		return nil
	}
	return ringOffsets[d]
}

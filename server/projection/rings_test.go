package projection

import (
	"testing"

	"github.com/draconisPW/mangband-core/server/world"
)

func TestRingOffsetsAllAtExactDistance(t *testing.T) {
	for d := 0; d <= maxRingDistance; d++ {
		for _, off := range RingOffsets(d) {
			if (world.Grid{}).Chebyshev(off) != d {
				t.Fatalf("ring %d contains offset %v at distance %d", d, off, (world.Grid{}).Chebyshev(off))
			}
		}
	}
}

func TestRingOffsetsCountMatchesChebyshevShell(t *testing.T) {
	// The number of cells at Chebyshev distance exactly d from the origin
	// is 8*d for d > 0 (the square ring minus the inner square), 1 for d=0.
	for d := 0; d <= maxRingDistance; d++ {
		want := 8 * d
		if d == 0 {
			want = 1
		}
		if got := len(RingOffsets(d)); got != want {
			t.Fatalf("RingOffsets(%d) has %d entries, want %d", d, got, want)
		}
	}
}

func TestRingOffsetsOutOfRangeReturnsNil(t *testing.T) {
	if RingOffsets(-1) != nil {
		t.Fatal("expected nil for negative distance")
	}
	if RingOffsets(maxRingDistance+1) != nil {
		t.Fatal("expected nil beyond maxRingDistance")
	}
}

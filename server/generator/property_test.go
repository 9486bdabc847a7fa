package generator

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/draconisPW/mangband-core/server/world"
)

// dungeonProfiles are the profiles spec.md §8's "Generator invariants"
// apply to directly: "∀ C except town and quest levels: the set of
// floor/passable cells is connected ... ∀ non-town C: ≥ 1 downstair ...
// ≥ 1 upstair".
var dungeonProfiles = []world.Profile{
	world.ProfileClassic,
	world.ProfileModified,
	world.ProfileMoria,
	world.ProfileCavern,
	world.ProfileLabyrinth,
}

func TestGeneratorInvariantsHoldAcrossSeeds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		profile := dungeonProfiles[rapid.IntRange(0, len(dungeonProfiles)-1).Draw(rt, "profile")]
		seed := rapid.Uint64().Draw(rt, "seed")
		depth := rapid.IntRange(1, 50).Draw(rt, "depth")

		req := Request{WPos: world.Pos{Depth: depth}, Profile: profile, Seed: seed}
		fn := registry[profile]
		c, err := fn(req)
		if err != nil {
			// Generation failure is an expected, propagated outcome (spec.md
			// §7); it is not an invariant violation on its own.
			return
		}

		if !isConnected(c) {
			rt.Fatalf("profile %v seed %d: passable cells are not all connected", profile, seed)
		}
		if profile != world.ProfileLabyrinth {
			if !hasStair(c, world.FeatMore) {
				rt.Fatalf("profile %v seed %d: no down stair placed", profile, seed)
			}
			if !hasStair(c, world.FeatLess) {
				rt.Fatalf("profile %v seed %d: no up stair placed", profile, seed)
			}
		}
	})
}

func TestHardCentreLairGauntletStayConnectedAcrossSeeds(t *testing.T) {
	composite := map[world.Profile]profileFn{
		world.ProfileHardCentre: HardCentre,
		world.ProfileLair:       Lair,
		world.ProfileGauntlet:   Gauntlet,
	}
	rapid.Check(t, func(rt *rapid.T) {
		profiles := []world.Profile{world.ProfileHardCentre, world.ProfileLair, world.ProfileGauntlet}
		profile := profiles[rapid.IntRange(0, len(profiles)-1).Draw(rt, "profile")]
		seed := rapid.Uint64().Draw(rt, "seed")

		req := Request{WPos: world.Pos{Depth: 10}, Profile: profile, Seed: seed}
		c, err := composite[profile](req)
		if err != nil {
			return
		}
		if !isConnected(c) {
			rt.Fatalf("profile %v seed %d: passable cells are not all connected", profile, seed)
		}
	})
}

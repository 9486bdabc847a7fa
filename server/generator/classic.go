package generator

import (
	"github.com/draconisPW/mangband-core/server/rng"
	"github.com/draconisPW/mangband-core/server/world"
)

// Classic is spec.md §4.2's baseline dungeon profile: the common pipeline
// with no special terrain customisation.
func Classic(req Request) (*world.Chunk, error) {
	return buildDungeon(req, dungeonSpec{
		Height:     66,
		Width:      198,
		Templates:  ClassicTemplates(),
		DoorOdds:   classicDoorOdds,
		DownStairs: 3,
		UpStairs:   2,
	})
}

// Modified is Classic with every room template's depth Cutoff removed, so
// all templates are eligible from the first level (spec.md §4.2.3
// "Modified" is named alongside classic as a common-pipeline variant).
func Modified(req Request) (*world.Chunk, error) {
	templates := ClassicTemplates()
	for i := range templates {
		templates[i].Cutoff = 0
	}
	return buildDungeon(req, dungeonSpec{
		Height:     66,
		Width:      198,
		Templates:  templates,
		DoorOdds:   classicDoorOdds,
		DownStairs: 3,
		UpStairs:   2,
	})
}

// Moria favours fewer, larger rooms connected by long corridors; the
// pillared template's rarity is loosened so moria levels read as roomier
// than classic ones, and one fewer stair pair is placed (moria-style
// levels are built shallower per spec.md §4.2.3's profile table).
func Moria(req Request) (*world.Chunk, error) {
	templates := ClassicTemplates()
	templates[1].Rarity = 1
	return buildDungeon(req, dungeonSpec{
		Height:     44,
		Width:      132,
		Templates:  templates,
		DoorOdds:   doorOdds{Open: 20, Closed: 60, Locked: 10, Broken: 5, Secret: 5},
		DownStairs: 2,
		UpStairs:   1,
		Customize:  scatterMoriaRubble,
	})
}

// scatterMoriaRubble is moria's per-dungeon terrain customisation pass
// (spec.md §4.2 step 8, "Customise terrain per-dungeon"): a scattering of
// passable rubble across open floor, the profile's signature rough-hewn
// texture.
func scatterMoriaRubble(c *world.Chunk, r *rng.RNG) {
	for y := 1; y < c.Height-1; y++ {
		for x := 1; x < c.Width-1; x++ {
			g := world.Grid{X: x, Y: y}
			if c.Square(g).Feat == world.FeatFloor && r.Chance(3) {
				c.SetFeat(g, world.FeatPassRubble)
			}
		}
	}
}

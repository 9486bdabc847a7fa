// Command gen_preview generates a single chunk with server/generator and
// prints it as an ASCII map, the inspection-tool analogue of the teacher's
// cmd/inspect_palette (which dumped a Minecraft block-state palette to the
// console for a human to eyeball): here there is no palette file to decode,
// so the thing worth eyeballing directly is a generated level's layout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/draconisPW/mangband-core/server/generator"
	"github.com/draconisPW/mangband-core/server/world"
)

func main() {
	var (
		profileName = flag.String("profile", "classic", "profile to generate (classic, modified, moria, labyrinth, cavern, hard-centre, lair, gauntlet, town, mang-town, arena)")
		seed        = flag.Uint64("seed", 1, "master seed")
		depth       = flag.Int("depth", 5, "dungeon depth")
	)
	flag.Parse()

	profile, ok := parseProfile(*profileName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown profile %q\n", *profileName)
		os.Exit(1)
	}

	d := generator.NewDispatcher()
	c, err := d.Generate(generator.Request{
		WPos:    world.Pos{X: 0, Y: 0, Depth: *depth},
		Profile: profile,
		Seed:    *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(render(c))
}

func render(c *world.Chunk) string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			b.WriteRune(glyph(c.Square(world.Grid{X: x, Y: y}).Feat))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(f world.Feature) rune {
	switch f {
	case world.FeatNone, world.FeatGranite:
		return ' '
	case world.FeatPerm, world.FeatPermStatic, world.FeatPermClear, world.FeatPermHouse, world.FeatPermArena:
		return '#'
	case world.FeatFloor, world.FeatFloorSafe:
		return '.'
	case world.FeatMagma, world.FeatQuartz:
		return '%'
	case world.FeatRubble, world.FeatPassRubble:
		return ':'
	case world.FeatLava:
		return '~'
	case world.FeatWater:
		return '='
	case world.FeatLess:
		return '<'
	case world.FeatMore:
		return '>'
	case world.FeatClosed, world.FeatHomeClosed:
		return '+'
	case world.FeatOpen, world.FeatBroken:
		return '\''
	case world.FeatSecret:
		return '#'
	case world.FeatStreet, world.FeatLooseDirt:
		return ','
	case world.FeatLogs:
		return 't'
	case world.FeatStoreEntry:
		return '&'
	default:
		return '?'
	}
}

func parseProfile(name string) (world.Profile, bool) {
	switch strings.ToLower(name) {
	case "classic":
		return world.ProfileClassic, true
	case "modified":
		return world.ProfileModified, true
	case "moria":
		return world.ProfileMoria, true
	case "labyrinth":
		return world.ProfileLabyrinth, true
	case "cavern":
		return world.ProfileCavern, true
	case "hard-centre", "hardcentre":
		return world.ProfileHardCentre, true
	case "lair":
		return world.ProfileLair, true
	case "gauntlet":
		return world.ProfileGauntlet, true
	case "town":
		return world.ProfileTown, true
	case "mang-town", "mangtown":
		return world.ProfileMangTown, true
	case "arena":
		return world.ProfileArena, true
	}
	return 0, false
}

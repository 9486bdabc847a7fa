package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/draconisPW/mangband-core/server/generator"
	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/world"
)

func writeTable(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadRacesParsesStatBonusAndResistsByName(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "races.jsonc", `{
		// a dwarf leans tough and wise
		"dwarf": {
			"stat_bonus": {"con": 2, "wis": 1},
			"resists": {"dark": "resist", "poison": "vulnerable"},
			"hit_die_bonus": 2,
			"infra_radius": 5
		}
	}`)

	races, err := LoadRaces(path)
	if err != nil {
		t.Fatalf("LoadRaces: %v", err)
	}
	dwarf, ok := races["dwarf"]
	if !ok {
		t.Fatalf("missing dwarf entry")
	}
	if dwarf.StatBonus[player.StatCon] != 2 || dwarf.StatBonus[player.StatWis] != 1 {
		t.Fatalf("stat bonus mismatch: %+v", dwarf.StatBonus)
	}
	if dwarf.Resists[world.ElemDark] != world.ElementResist {
		t.Fatalf("expected dark resist, got %v", dwarf.Resists[world.ElemDark])
	}
	if dwarf.Resists[world.ElemPoison] != world.ElementVulnerable {
		t.Fatalf("expected poison vulnerable, got %v", dwarf.Resists[world.ElemPoison])
	}
	if dwarf.HitDieBonus != 2 || dwarf.InfraRadius != 5 {
		t.Fatalf("scalar fields mismatch: %+v", dwarf)
	}
}

func TestLoadClassesRejectsUnknownSpellStat(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "classes.jsonc", `{
		"mage": {"spell_stat": "luck"}
	}`)
	if _, err := LoadClasses(path); err == nil {
		t.Fatalf("expected error for unknown spell stat")
	}
}

func TestLoadAllMissingFilesYieldEmptyTables(t *testing.T) {
	tables, err := LoadAll(t.TempDir())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(tables.Races) != 0 || len(tables.Classes) != 0 || len(tables.RoomProfiles) != 0 || len(tables.PitThemes) != 0 {
		t.Fatalf("expected empty tables, got %+v", tables)
	}
}

func TestApplyRoomProfilesOverridesMatchingNamesOnly(t *testing.T) {
	templates := generator.ClassicTemplates()
	overrides := map[string]RoomProfileOverride{
		"pillared": {Cutoff: 1, Rarity: 9},
	}
	out := ApplyRoomProfiles(templates, overrides)
	for _, tmpl := range out {
		if tmpl.Name == "pillared" {
			if tmpl.Cutoff != 1 || tmpl.Rarity != 9 {
				t.Fatalf("pillared not overridden: %+v", tmpl)
			}
			continue
		}
		var want generator.RoomTemplate
		for _, orig := range templates {
			if orig.Name == tmpl.Name {
				want = orig
			}
		}
		if tmpl.Cutoff != want.Cutoff || tmpl.Rarity != want.Rarity {
			t.Fatalf("unrelated template %q changed: %+v", tmpl.Name, tmpl)
		}
	}
}

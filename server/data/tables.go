package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df-mc/jsonc"

	"github.com/draconisPW/mangband-core/server/player"
	"github.com/draconisPW/mangband-core/server/world"
)

// RoomProfileOverride supplies the rarity/cutoff half of spec.md §6's
// "dungeon profiles (room templates with rarity/cutoff)" data file: the
// room shapes themselves stay Go code in server/generator (a shape is a
// carving algorithm, not data), but how common and how deep each one
// becomes available is an authored table.
type RoomProfileOverride struct {
	Cutoff int `json:"cutoff"`
	Rarity int `json:"rarity"`
}

// PitTheme is one themed monster pit entry keyed by name, the "pit themes"
// table spec.md §6 names. Nothing populates a pit from these yet (lair.go's
// flagPit marks the area InfoMonRestrict pending a monster-placement pass),
// but the table is loaded and available so that pass has data to read
// rather than inventing a theme list of its own later.
type PitTheme struct {
	Monsters []string `json:"monsters"`
	Weight   int      `json:"weight"`
}

// Tables is the immutable, process-wide bundle of everything LoadAll reads,
// the §9 "Global state... gather these into an immutable World context"
// design note. Only the PRNG and per-chunk mutable state are exempt from
// this immutability, and neither lives here.
type Tables struct {
	Races        map[string]*player.RaceDef
	Classes      map[string]*player.ClassDef
	RoomProfiles map[string]RoomProfileOverride
	PitThemes    map[string]PitTheme
}

// LoadAll reads the conventional table filenames (races.jsonc,
// classes.jsonc, room-profiles.jsonc, pit-themes.jsonc) out of dir. A
// missing file yields an empty (not nil) table rather than an error, so a
// deployment may ship only the tables it wants to customise.
func LoadAll(dir string) (*Tables, error) {
	races, err := LoadRaces(filepath.Join(dir, "races.jsonc"))
	if err != nil {
		return nil, err
	}
	classes, err := LoadClasses(filepath.Join(dir, "classes.jsonc"))
	if err != nil {
		return nil, err
	}
	profiles, err := LoadRoomProfiles(filepath.Join(dir, "room-profiles.jsonc"))
	if err != nil {
		return nil, err
	}
	pits, err := LoadPitThemes(filepath.Join(dir, "pit-themes.jsonc"))
	if err != nil {
		return nil, err
	}
	return &Tables{Races: races, Classes: classes, RoomProfiles: profiles, PitThemes: pits}, nil
}

// readJSONC reads path, strips its comments via jsonc.ToJSON, and unmarshals
// the result into v. A missing file leaves v untouched and returns no error.
func readJSONC(path string, v any) error {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("data: read %s: %w", path, err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(b), v); err != nil {
		return fmt.Errorf("data: parse %s: %w", path, err)
	}
	return nil
}

// raceFile/classFile are the on-disk shapes; StatBonus/Resists are authored
// by name rather than by the in-memory [5]int/[ElementCount]ElementFlag
// arrays server/player actually uses, so a table author never needs to know
// array index order.
type raceFile struct {
	StatBonus    map[string]int    `json:"stat_bonus"`
	Resists      map[string]string `json:"resists"`
	HitDieBonus  int               `json:"hit_die_bonus"`
	InfraRadius  int               `json:"infra_radius"`
	ExtraBlows   int               `json:"extra_blows"`
	ExtraMana    int               `json:"extra_mana"`
	StealthBonus int               `json:"stealth_bonus"`
}

type classFile struct {
	StatBonus     map[string]int `json:"stat_bonus"`
	SpellStat     string         `json:"spell_stat"`
	HitDieBonus   int            `json:"hit_die_bonus"`
	ExtraBlows    int            `json:"extra_blows"`
	ExtraMana     int            `json:"extra_mana"`
	SkillBonus    map[string]int `json:"skill_bonus"`
	DeviceBonus   int            `json:"device_bonus"`
	MaxManaPerLvl int            `json:"max_mana_per_level"`
}

// LoadRaces loads the race baseline table (player.RaceDef, spec.md §4.8
// "Start from race+class baselines").
func LoadRaces(path string) (map[string]*player.RaceDef, error) {
	raw := map[string]raceFile{}
	if err := readJSONC(path, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]*player.RaceDef, len(raw))
	for name, rf := range raw {
		def := &player.RaceDef{
			Name:         name,
			HitDieBonus:  rf.HitDieBonus,
			InfraRadius:  rf.InfraRadius,
			ExtraBlows:   rf.ExtraBlows,
			ExtraMana:    rf.ExtraMana,
			StealthBonus: rf.StealthBonus,
		}
		if err := applyStatBonus(def.StatBonus[:], rf.StatBonus); err != nil {
			return nil, fmt.Errorf("data: race %q: %w", name, err)
		}
		if err := applyResists(def.Resists[:], rf.Resists); err != nil {
			return nil, fmt.Errorf("data: race %q: %w", name, err)
		}
		out[name] = def
	}
	return out, nil
}

// LoadClasses loads the class baseline table (player.ClassDef).
func LoadClasses(path string) (map[string]*player.ClassDef, error) {
	raw := map[string]classFile{}
	if err := readJSONC(path, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]*player.ClassDef, len(raw))
	for name, cf := range raw {
		def := &player.ClassDef{
			Name:          name,
			HitDieBonus:   cf.HitDieBonus,
			ExtraBlows:    cf.ExtraBlows,
			ExtraMana:     cf.ExtraMana,
			DeviceBonus:   cf.DeviceBonus,
			MaxManaPerLvl: cf.MaxManaPerLvl,
			SpellStat:     -1,
		}
		if cf.SpellStat != "" {
			stat, ok := statByName[cf.SpellStat]
			if !ok {
				return nil, fmt.Errorf("data: class %q: unknown spell stat %q", name, cf.SpellStat)
			}
			def.SpellStat = stat
		}
		if err := applyStatBonus(def.StatBonus[:], cf.StatBonus); err != nil {
			return nil, fmt.Errorf("data: class %q: %w", name, err)
		}
		if err := applySkillBonus(def.SkillBonus[:], cf.SkillBonus); err != nil {
			return nil, fmt.Errorf("data: class %q: %w", name, err)
		}
		out[name] = def
	}
	return out, nil
}

// LoadRoomProfiles loads the rarity/cutoff override table, keyed by the
// RoomTemplate.Name server/generator's shapes already carry (see
// server/generator's ClassicTemplates: "plain", "pillared",
// "overlap-circle").
func LoadRoomProfiles(path string) (map[string]RoomProfileOverride, error) {
	out := map[string]RoomProfileOverride{}
	if err := readJSONC(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadPitThemes loads the pit theme table.
func LoadPitThemes(path string) (map[string]PitTheme, error) {
	out := map[string]PitTheme{}
	if err := readJSONC(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var statByName = map[string]player.Stat{
	"str": player.StatStr,
	"int": player.StatInt,
	"wis": player.StatWis,
	"dex": player.StatDex,
	"con": player.StatCon,
}

var skillByName = map[string]player.Skill{
	"device":       player.SkillDevice,
	"save":         player.SkillSave,
	"stealth":      player.SkillStealth,
	"search":       player.SkillSearch,
	"digging":      player.SkillDigging,
	"disarm_phys":  player.SkillDisarmPhys,
	"disarm_magic": player.SkillDisarmMagic,
}

var elementByName = map[string]world.Element{
	"fire":         world.ElemFire,
	"cold":         world.ElemCold,
	"acid":         world.ElemAcid,
	"poison":       world.ElemPoison,
	"dark":         world.ElemDark,
	"light":        world.ElemLight,
	"disintegrate": world.ElemDisintegrate,
	"time":         world.ElemTime,
	"gravity":      world.ElemGravity,
	"plasma":       world.ElemPlasma,
	"nexus":        world.ElemNexus,
	"chaos":        world.ElemChaos,
	"inertia":      world.ElemInertia,
	"sound":        world.ElemSound,
	"shards":       world.ElemShards,
	"force":        world.ElemForce,
	"water":        world.ElemWater,
	"lava":         world.ElemLava,
	"ice":          world.ElemIce,
	"missile":      world.ElemMissile,
}

var elementFlagByName = map[string]world.ElementFlag{
	"normal":     world.ElementNormal,
	"resist":     world.ElementResist,
	"vulnerable": world.ElementVulnerable,
	"immune":     world.ElementImmune,
}

func applyStatBonus(dst []int, src map[string]int) error {
	for name, v := range src {
		stat, ok := statByName[name]
		if !ok {
			return fmt.Errorf("unknown stat %q", name)
		}
		dst[stat] = v
	}
	return nil
}

func applySkillBonus(dst []int, src map[string]int) error {
	for name, v := range src {
		skill, ok := skillByName[name]
		if !ok {
			return fmt.Errorf("unknown skill %q", name)
		}
		dst[skill] = v
	}
	return nil
}

func applyResists(dst []world.ElementFlag, src map[string]string) error {
	for name, flagName := range src {
		elem, ok := elementByName[name]
		if !ok {
			return fmt.Errorf("unknown element %q", name)
		}
		flag, ok := elementFlagByName[flagName]
		if !ok {
			return fmt.Errorf("unknown resist flag %q", flagName)
		}
		dst[elem] = flag
	}
	return nil
}

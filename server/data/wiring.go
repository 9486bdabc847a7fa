package data

import "github.com/draconisPW/mangband-core/server/generator"

// Install registers tables.RoomProfiles with server/generator's
// RoomProfileOverride hook, so every subsequent ClassicTemplates() call
// (classic, modified, moria) picks up the authored rarity/cutoff numbers.
// Call once at startup after LoadAll.
func Install(tables *Tables) {
	generator.RoomProfileOverride = func(templates []generator.RoomTemplate) []generator.RoomTemplate {
		return ApplyRoomProfiles(templates, tables.RoomProfiles)
	}
}

// ApplyRoomProfiles overrides the Cutoff/Rarity of every template in
// templates whose Name matches an entry in overrides, leaving the template
// list's shapes (and any template with no matching entry) untouched. This
// is how the authored RoomProfiles table actually reaches
// server/generator's profile functions: the hook Install registers calls
// this, and ClassicTemplates() applies that hook to its result.
func ApplyRoomProfiles(templates []generator.RoomTemplate, overrides map[string]RoomProfileOverride) []generator.RoomTemplate {
	if len(overrides) == 0 {
		return templates
	}
	out := make([]generator.RoomTemplate, len(templates))
	copy(out, templates)
	for i, t := range out {
		if ov, ok := overrides[t.Name]; ok {
			out[i].Cutoff = ov.Cutoff
			out[i].Rarity = ov.Rarity
		}
	}
	return out
}

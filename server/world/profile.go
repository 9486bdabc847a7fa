package world

// Profile tags which generator strategy produced a Chunk (spec.md §4.2
// "Profiles and selection").
type Profile uint8

const (
	ProfileClassic Profile = iota
	ProfileModified
	ProfileMoria
	ProfileLabyrinth
	ProfileCavern
	ProfileHardCentre
	ProfileLair
	ProfileGauntlet
	ProfileTown
	ProfileMangTown
	ProfileArena
)

// String returns the profile's canonical name.
func (p Profile) String() string {
	switch p {
	case ProfileClassic:
		return "classic"
	case ProfileModified:
		return "modified"
	case ProfileMoria:
		return "moria"
	case ProfileLabyrinth:
		return "labyrinth"
	case ProfileCavern:
		return "cavern"
	case ProfileHardCentre:
		return "hard-centre"
	case ProfileLair:
		return "lair"
	case ProfileGauntlet:
		return "gauntlet"
	case ProfileTown:
		return "town"
	case ProfileMangTown:
		return "mang-town"
	case ProfileArena:
		return "arena"
	default:
		return "unknown"
	}
}

// Dungeon reports whether the profile produces a dungeon-style level
// (as opposed to a town/wilderness surface layout).
func (p Profile) Dungeon() bool {
	return p != ProfileTown && p != ProfileMangTown
}

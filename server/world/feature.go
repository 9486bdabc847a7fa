package world

// Feature is a terrain code for a square, the stable names listed in
// spec.md §6 ("Terrain feature codes"). server/data loads no terrain
// table; the subset the generator and projection engine reason about
// directly is declared here as a closed enum so dispatch on it is an exhaustive switch rather
// than a string compare.
type Feature uint16

const (
	FeatNone Feature = iota
	FeatFloor
	FeatGranite
	FeatPerm
	FeatPermStatic
	FeatPermClear
	FeatMagma
	FeatQuartz
	FeatRubble
	FeatPassRubble
	FeatLava
	FeatWater
	FeatSandwall
	FeatLess // upstairs
	FeatMore // downstairs
	FeatClosed
	FeatOpen
	FeatBroken
	FeatSecret
	FeatDrawbridge
	FeatFountain
	FeatFntDried
	FeatTraining
	FeatStreet
	FeatLogs
	FeatLooseDirt
	FeatCrop
	FeatFloorSafe
	FeatStoreEntry
	FeatHomeClosed
	FeatPermHouse
	FeatPermArena
)

// String returns a human-readable feature name, used in dump/log context.
func (f Feature) String() string {
	switch f {
	case FeatNone:
		return "none"
	case FeatFloor:
		return "floor"
	case FeatGranite:
		return "granite"
	case FeatPerm:
		return "perm"
	case FeatPermStatic:
		return "perm_static"
	case FeatPermClear:
		return "perm_clear"
	case FeatMagma:
		return "magma"
	case FeatQuartz:
		return "quartz"
	case FeatRubble:
		return "rubble"
	case FeatPassRubble:
		return "pass_rubble"
	case FeatLava:
		return "lava"
	case FeatWater:
		return "water"
	case FeatSandwall:
		return "sandwall"
	case FeatLess:
		return "less"
	case FeatMore:
		return "more"
	case FeatClosed:
		return "closed"
	case FeatOpen:
		return "open"
	case FeatBroken:
		return "broken"
	case FeatSecret:
		return "secret"
	case FeatDrawbridge:
		return "drawbridge"
	case FeatFountain:
		return "fountain"
	case FeatFntDried:
		return "fnt_dried"
	case FeatTraining:
		return "training"
	case FeatStreet:
		return "street"
	case FeatLogs:
		return "logs"
	case FeatLooseDirt:
		return "loose_dirt"
	case FeatCrop:
		return "crop"
	case FeatFloorSafe:
		return "floor_safe"
	case FeatStoreEntry:
		return "store_entry"
	case FeatHomeClosed:
		return "home_closed"
	case FeatPermHouse:
		return "perm_house"
	case FeatPermArena:
		return "perm_arena"
	default:
		return "unknown"
	}
}

// Permanent reports whether the feature is one of the permanent-wall
// variants that tunnel generation and destruction must never remove.
func (f Feature) Permanent() bool {
	switch f {
	case FeatPerm, FeatPermStatic, FeatPermClear, FeatPermHouse, FeatPermArena:
		return true
	}
	return false
}

// Wall reports whether the feature is solid rock or a permanent wall
// variant — i.e. not floor, not a door, not a stair.
func (f Feature) Wall() bool {
	switch f {
	case FeatGranite, FeatMagma, FeatQuartz, FeatSandwall:
		return true
	}
	return f.Permanent()
}

// Passable reports whether an actor may walk onto a square with this
// feature (ignoring occupancy).
func (f Feature) Passable() bool {
	switch f {
	case FeatFloor, FeatPassRubble, FeatLess, FeatMore, FeatOpen, FeatBroken,
		FeatDrawbridge, FeatFountain, FeatFntDried, FeatTraining, FeatStreet,
		FeatLogs, FeatLooseDirt, FeatCrop, FeatFloorSafe, FeatStoreEntry,
		FeatHomeClosed, FeatSecret:
		return true
	}
	return false
}

// Door reports whether the feature is some variant of door.
func (f Feature) Door() bool {
	switch f {
	case FeatClosed, FeatOpen, FeatBroken, FeatSecret:
		return true
	}
	return false
}

// LOSOpaque reports whether the feature blocks line of sight.
func (f Feature) LOSOpaque() bool {
	if f.Wall() {
		return true
	}
	return f == FeatClosed || f == FeatSecret || f == FeatHomeClosed
}

// Stair reports whether the feature is an up or down staircase.
func (f Feature) Stair() bool { return f == FeatLess || f == FeatMore }

// Info is the per-square bit-set of spec.md §3 ("Square... info").
type Info uint32

const (
	InfoView Info = 1 << iota
	InfoSeen
	InfoGlow
	InfoRoom
	InfoVault
	InfoWallOuter
	InfoWallInner
	InfoWallSolid
	InfoNoStairs
	InfoNoTeleport
	InfoLimitedTele
	InfoNoMap
	InfoMonRestrict
	InfoCustomWall
	InfoStairs
	InfoNoTrash
	InfoClosePlayer
)

// Has reports whether all bits in mask are set.
func (i Info) Has(mask Info) bool { return i&mask == mask }

// Set returns i with mask's bits set.
func (i Info) Set(mask Info) Info { return i | mask }

// Clear returns i with mask's bits cleared.
func (i Info) Clear(mask Info) Info { return i &^ mask }

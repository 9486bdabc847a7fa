package config

// DivingMode selects how freely a player may move between wilderness,
// towns, and dungeon levels (spec.md §6).
type DivingMode int

const (
	DivingWildernessAndDungeons DivingMode = iota
	DivingDungeonsOnly
	DivingNoWildernessExits
	DivingFullIronman
)

// StairLimit controls how many times a set of stairs may be used before it
// stops connecting the same two levels (spec.md §6 "limit_stairs").
type StairLimit int

const (
	StairsNormal StairLimit = iota
	StairsOnePerLevel
	StairsDisconnect
)

// Options is the full table of runtime tunables spec.md §6 names. Every
// field defaults to the value the teacher's own DefaultConfig uses for its
// equivalent knob: the safest, most permissive setting, overridable by the
// TOML file Load reads.
type Options struct {
	// Diving groups the knobs that govern how a player moves around the
	// world graph.
	Diving struct {
		// Mode is diving_mode: 0 wilderness+dungeons, 1 dungeons only,
		// 2 no wilderness exits, 3 full ironman.
		Mode DivingMode
		// LimitStairs is limit_stairs (spec.md §4.2 "stair placement"
		// reuse across returning players).
		LimitStairs StairLimit
		// GhostDiving allows a dead character's ghost to keep
		// descending after death instead of being confined to town.
		GhostDiving bool
	}

	// Character groups knobs affecting how characters are built, retired,
	// and recorded.
	Character struct {
		// LevelReq enforces that an object's required level is at most
		// the wielding player's level before it may be used.
		LevelReq bool
		// RetireTimer is the number of turns a character may remain
		// inactive before being auto-retired, 0 disables the timer.
		RetireTimer int
		// PreserveArtifacts is the 0..3 scale spec.md §6 names for how
		// aggressively a dead player's artifacts are returned to the
		// world rather than lost with the corpse.
		PreserveArtifacts int
		// NoGhost disables the post-death ghost state entirely.
		NoGhost bool
		// DisconnectFainting controls whether a player who faints from
		// low hit points is force-disconnected rather than left to
		// recover in place.
		DisconnectFainting bool
		// QuitTimeout is how many turns an idle connection is kept
		// alive before being dropped, 0 disables the timeout.
		QuitTimeout int
		// MaxAccountChars caps how many characters one account may
		// have active at once, 0 means unlimited.
		MaxAccountChars int
	}

	// Dungeon groups knobs affecting level generation and feel.
	Dungeon struct {
		// MoreTowns enables the profile registry's additional town
		// variants (mang-town) alongside the classic town profile.
		MoreTowns bool
		// LevelFeelings enables the per-level danger/object "feeling"
		// hint shown to a player on arrival.
		LevelFeelings bool
		// LevelUnstaticChance is the percent chance, per game turn,
		// that an unvisited level is regenerated rather than kept
		// static.
		LevelUnstaticChance int
		// ChallengingLevels scales monster difficulty upward with
		// depth more aggressively than the baseline tables.
		ChallengingLevels bool
		// TurnBased disables wide corridors and openings, the
		// singleplayer-only variant spec.md §6 names.
		TurnBased bool
		// BaseMonsters and ExtraMonsters scale how many monsters a
		// freshly generated level is populated with.
		BaseMonsters  int
		ExtraMonsters int
		// HouseFloorSize caps how large a player house's floor plan
		// may be, in squares.
		HouseFloorSize int
		// LimitedStores is the 0..3 scale spec.md §6 names for how
		// restricted store inventories are relative to the vanilla
		// tables.
		LimitedStores int
	}

	// Economy groups knobs affecting gold, items, and theft.
	Economy struct {
		NoArtifacts       bool
		GoldDropVanilla   bool
		NoSteal           bool
		NewbiesCannotDrop bool
		DoublePurse       bool
		SafeRecharge      bool
		ClassicExpFactor  bool
	}

	// Social groups knobs affecting other players' visibility of and
	// interaction with a given player.
	Social struct {
		AILearn         bool
		LimitedESP      bool
		InstanceClosed  bool
		PvPHostility    bool
		LazyConnections bool
		PartyShareLevel bool
		MangMeta        bool
		ChardumpColor   bool
		ChardumpLabel   bool
		LoadPrefFile    bool
	}

	// ConstantTimeFactor, when true, freezes the game-turns-per-real-
	// second rate instead of letting the perimeter scale it with player
	// count (spec.md §4.6 "Time model").
	ConstantTimeFactor bool
}

// Default returns the permissive, vanilla-feeling baseline every field
// falls back to when a TOML file omits it, mirroring the teacher's
// DefaultConfig.
func Default() Options {
	var o Options
	o.Diving.Mode = DivingWildernessAndDungeons
	o.Diving.LimitStairs = StairsNormal
	o.Diving.GhostDiving = true
	o.Character.LevelReq = true
	o.Character.RetireTimer = 0
	o.Character.PreserveArtifacts = 1
	o.Character.QuitTimeout = 0
	o.Character.MaxAccountChars = 0
	o.Dungeon.MoreTowns = true
	o.Dungeon.LevelFeelings = true
	o.Dungeon.LevelUnstaticChance = 0
	o.Dungeon.BaseMonsters = 4
	o.Dungeon.ExtraMonsters = 2
	o.Dungeon.HouseFloorSize = 80
	o.Dungeon.LimitedStores = 0
	o.Economy.GoldDropVanilla = true
	o.Social.AILearn = true
	o.Social.PartyShareLevel = true
	o.Social.LoadPrefFile = true
	o.ConstantTimeFactor = false
	return o
}

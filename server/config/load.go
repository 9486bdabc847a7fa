package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// file is the on-disk TOML shape Load reads, grouped the same way as
// Options itself so a hand-edited config file reads like a table of
// contents for the struct it becomes. Load seeds it from Default before
// decoding, so fields left out of the file keep Default's value while a
// field written out explicitly, zero included, replaces it.
type file struct {
	Diving struct {
		Mode        int
		LimitStairs int
		GhostDiving bool
	}
	Character struct {
		LevelReq           bool
		RetireTimer        int
		PreserveArtifacts  int
		NoGhost            bool
		DisconnectFainting bool
		QuitTimeout        int
		MaxAccountChars    int
	}
	Dungeon struct {
		MoreTowns           bool
		LevelFeelings       bool
		LevelUnstaticChance int
		ChallengingLevels   bool
		TurnBased           bool
		BaseMonsters        int
		ExtraMonsters       int
		HouseFloorSize      int
		LimitedStores       int
	}
	Economy struct {
		NoArtifacts       bool
		GoldDropVanilla   bool
		NoSteal           bool
		NewbiesCannotDrop bool
		DoublePurse       bool
		SafeRecharge      bool
		ClassicExpFactor  bool
	}
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
	ConstantTimeFactor bool
}

// Load reads a TOML file at path and merges it over Default. A missing file
// is not an error: Load returns Default unchanged, the same "config file is
// optional, defaults carry the server" behaviour the teacher's whitelist
// loader gives a missing whitelist.toml.
func Load(path string) (Options, error) {
	o := Default()

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return o, nil
	}
	if err != nil {
		return o, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f file
	// Start from the defaults so a TOML file that omits a section keeps
	// that section's default rather than zeroing it out.
	f.fromOptions(o)
	if err := toml.Unmarshal(b, &f); err != nil {
		return o, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f.toOptions(), nil
}

// Write serialises opt to path as TOML, in the same shape Load reads.
func Write(path string, opt Options) error {
	var f file
	f.fromOptions(opt)
	b, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (f *file) fromOptions(o Options) {
	f.Diving.Mode = int(o.Diving.Mode)
	f.Diving.LimitStairs = int(o.Diving.LimitStairs)
	f.Diving.GhostDiving = o.Diving.GhostDiving
	f.Character.LevelReq = o.Character.LevelReq
	f.Character.RetireTimer = o.Character.RetireTimer
	f.Character.PreserveArtifacts = o.Character.PreserveArtifacts
	f.Character.NoGhost = o.Character.NoGhost
	f.Character.DisconnectFainting = o.Character.DisconnectFainting
	f.Character.QuitTimeout = o.Character.QuitTimeout
	f.Character.MaxAccountChars = o.Character.MaxAccountChars
	f.Dungeon.MoreTowns = o.Dungeon.MoreTowns
	f.Dungeon.LevelFeelings = o.Dungeon.LevelFeelings
	f.Dungeon.LevelUnstaticChance = o.Dungeon.LevelUnstaticChance
	f.Dungeon.ChallengingLevels = o.Dungeon.ChallengingLevels
	f.Dungeon.TurnBased = o.Dungeon.TurnBased
	f.Dungeon.BaseMonsters = o.Dungeon.BaseMonsters
	f.Dungeon.ExtraMonsters = o.Dungeon.ExtraMonsters
	f.Dungeon.HouseFloorSize = o.Dungeon.HouseFloorSize
	f.Dungeon.LimitedStores = o.Dungeon.LimitedStores
	f.Economy.NoArtifacts = o.Economy.NoArtifacts
	f.Economy.GoldDropVanilla = o.Economy.GoldDropVanilla
	f.Economy.NoSteal = o.Economy.NoSteal
	f.Economy.NewbiesCannotDrop = o.Economy.NewbiesCannotDrop
	f.Economy.DoublePurse = o.Economy.DoublePurse
	f.Economy.SafeRecharge = o.Economy.SafeRecharge
	f.Economy.ClassicExpFactor = o.Economy.ClassicExpFactor
	f.Social.AILearn = o.Social.AILearn
	f.Social.LimitedESP = o.Social.LimitedESP
	f.Social.InstanceClosed = o.Social.InstanceClosed
	f.Social.PvPHostility = o.Social.PvPHostility
	f.Social.LazyConnections = o.Social.LazyConnections
	f.Social.PartyShareLevel = o.Social.PartyShareLevel
	f.Social.MangMeta = o.Social.MangMeta
	f.Social.ChardumpColor = o.Social.ChardumpColor
	f.Social.ChardumpLabel = o.Social.ChardumpLabel
	f.Social.LoadPrefFile = o.Social.LoadPrefFile
	f.ConstantTimeFactor = o.ConstantTimeFactor
}

func (f file) toOptions() Options {
	var o Options
	o.Diving.Mode = DivingMode(f.Diving.Mode)
	o.Diving.LimitStairs = StairLimit(f.Diving.LimitStairs)
	o.Diving.GhostDiving = f.Diving.GhostDiving
	o.Character.LevelReq = f.Character.LevelReq
	o.Character.RetireTimer = f.Character.RetireTimer
	o.Character.PreserveArtifacts = f.Character.PreserveArtifacts
	o.Character.NoGhost = f.Character.NoGhost
	o.Character.DisconnectFainting = f.Character.DisconnectFainting
	o.Character.QuitTimeout = f.Character.QuitTimeout
	o.Character.MaxAccountChars = f.Character.MaxAccountChars
	o.Dungeon.MoreTowns = f.Dungeon.MoreTowns
	o.Dungeon.LevelFeelings = f.Dungeon.LevelFeelings
	o.Dungeon.LevelUnstaticChance = f.Dungeon.LevelUnstaticChance
	o.Dungeon.ChallengingLevels = f.Dungeon.ChallengingLevels
	o.Dungeon.TurnBased = f.Dungeon.TurnBased
	o.Dungeon.BaseMonsters = f.Dungeon.BaseMonsters
	o.Dungeon.ExtraMonsters = f.Dungeon.ExtraMonsters
	o.Dungeon.HouseFloorSize = f.Dungeon.HouseFloorSize
	o.Dungeon.LimitedStores = f.Dungeon.LimitedStores
	o.Economy.NoArtifacts = f.Economy.NoArtifacts
	o.Economy.GoldDropVanilla = f.Economy.GoldDropVanilla
	o.Economy.NoSteal = f.Economy.NoSteal
	o.Economy.NewbiesCannotDrop = f.Economy.NewbiesCannotDrop
	o.Economy.DoublePurse = f.Economy.DoublePurse
	o.Economy.SafeRecharge = f.Economy.SafeRecharge
	o.Economy.ClassicExpFactor = f.Economy.ClassicExpFactor
	o.Social.AILearn = f.Social.AILearn
	o.Social.LimitedESP = f.Social.LimitedESP
	o.Social.InstanceClosed = f.Social.InstanceClosed
	o.Social.PvPHostility = f.Social.PvPHostility
	o.Social.LazyConnections = f.Social.LazyConnections
	o.Social.PartyShareLevel = f.Social.PartyShareLevel
	o.Social.MangMeta = f.Social.MangMeta
	o.Social.ChardumpColor = f.Social.ChardumpColor
	o.Social.ChardumpLabel = f.Social.ChardumpLabel
	o.Social.LoadPrefFile = f.Social.LoadPrefFile
	o.ConstantTimeFactor = f.ConstantTimeFactor
	return o
}

package player

import (
	"github.com/draconisPW/mangband-core/server/status"
	"github.com/draconisPW/mangband-core/server/world"
)

// State is the derived, per-turn-usable snapshot spec.md §4.8 "Responsibility"
// names: adjusted stats, combat numbers, skills, and the handful of
// boolean flags that gate messages. CalcBonuses is the only producer.
type State struct {
	Stats [statCount]int // post-equipment, post-timed-effect, clamped

	ToHit, ToDam, ToAC int
	Speed              int // absolute speed (110 = normal), clamped to [0, 199]
	Blows              int // fixed point, x100
	Shots              int
	Might              int

	Skills [SkillCount]int

	LightRadius int
	Resists     [world.ElementCount]world.ElementFlag

	HeavyWield   bool
	HeavyShoot   bool
	BlessWield   bool
	ArmorCumber  bool

	MaxHP int
	MaxSP int
}

const (
	statClampMin = 3
	statClampMax = 40

	speedClampMin = 0
	speedClampMax = 199

	minBlows = 100 // spec.md §4.8 step 8: "clamp minimum 100 (x100 fixed-point)"

	heavyArmorCumberThreshold = 250 // tenths of a pound, weight class boundary
	manaArmorWeightCap        = 200
)

// equippedItems returns the live Object for each occupied equipment slot.
func equippedItems(p *Player) []*world.Object {
	var out []*world.Object
	for _, slot := range p.Equip {
		if slot == 0 {
			continue
		}
		if o := p.Arena.Get(slot); o != nil {
			out = append(out, o)
		}
	}
	return out
}

// CalcBonuses runs the full spec.md §4.8 derivation procedure and returns
// the resulting State. It never mutates Player beyond the upkeep flags it
// sets for any value that changed relative to the previous State
// (spec.md step 10): callers pass the previous State in prev (the zero
// State on first computation).
func CalcBonuses(p *Player, table status.Table, hpTable []int, prev State) State {
	var st State

	race, class := p.Race, p.Class
	if p.PolyRace != nil {
		race = p.PolyRace
	}

	// Step 1: start from race+class baselines.
	for s := Stat(0); s < statCount; s++ {
		st.Stats[s] = p.Stats[s]
		if race != nil {
			st.Stats[s] += race.StatBonus[s]
		}
		if class != nil {
			st.Stats[s] += class.StatBonus[s]
		}
	}
	st.Resists = race.raceResists()

	// Step 2: union/sum over equipped items.
	var armorWeight int
	var twoHanded, hasShield bool
	for _, o := range equippedItems(p) {
		for s := Stat(0); s < statCount; s++ {
			st.Stats[s] += o.Mods[int(s)]
		}
		if o.Kind != "weapon" && o.Kind != "bow" {
			st.ToHit += o.ToHit
			st.ToDam += o.ToDam
		}
		st.ToAC += o.ToAC
		if o.Kind != "light" || o.PVal > 0 {
			st.LightRadius += o.Mods[world.ModLight]
		}
		if o.Kind == "weapon" && o.Mods[world.ModBlows] >= 2 {
			twoHanded = true
		}
		if o.Kind == "shield" {
			hasShield = true
		}
		if o.Kind == "armor" {
			armorWeight += o.Weight
		}
		for e := 0; e < world.ElementCount; e++ {
			if o.Elements[e] > st.Resists[e] {
				st.Resists[e] = o.Elements[e]
			}
		}
	}
	st.ArmorCumber = twoHanded && hasShield

	// Speed starts from the untimed base (offset from 110) so step 3's
	// "speed" deltas from Fast/Slow grade entries add onto it instead of
	// being clobbered by it.
	st.Speed = p.BaseSpeed

	// Step 3: timed-effect deltas from the shared grade table.
	for e, remaining := range p.Timed {
		grade, ok := table.Grade(e, remaining)
		if !ok {
			continue
		}
		for name, delta := range grade.StatDeltas {
			applyNamedDelta(&st, name, delta)
		}
	}

	// Step 4: clamp stats; derive hit/dam/ac/save/device/dig/stealth.
	for s := Stat(0); s < statCount; s++ {
		st.Stats[s] = clampInt(st.Stats[s], statClampMin, statClampMax)
	}
	st.ToHit += bonusFromStat(st.Stats[StatDex]) + bonusFromStat(st.Stats[StatStr])/2
	st.ToDam += bonusFromStat(st.Stats[StatStr])
	st.ToAC += bonusFromStat(st.Stats[StatDex])
	st.Skills[SkillSave] = 2*st.Stats[StatWis] + p.Level
	st.Skills[SkillDevice] = 2*st.Stats[StatInt] + p.Level
	st.Skills[SkillDigging] = 2 * st.Stats[StatStr]
	st.Skills[SkillStealth] = stealthForWeightClass(race, armorWeight, p.PolyRace != nil)
	st.Skills[SkillSearch] = st.Stats[StatInt] / 2
	st.Skills[SkillDisarmPhys] = st.Stats[StatDex] + p.Level/2
	st.Skills[SkillDisarmMagic] = st.Stats[StatInt] + p.Level/2
	if class != nil {
		for i := range st.Skills {
			st.Skills[i] += class.SkillBonus[i]
		}
		st.Skills[SkillDevice] += class.DeviceBonus
	}

	// Step 5: max hp.
	bonus := 0
	if race != nil {
		bonus += race.HitDieBonus
	}
	if class != nil {
		bonus += class.HitDieBonus
	}
	baseHP := 1
	if idx := p.Level - 1; idx >= 0 && idx < len(hpTable) {
		baseHP = hpTable[idx]
	}
	mhp := baseHP + bonus*p.Level/100
	if p.PolyRace != nil {
		mhp = mhp*3/5 + int(1400*avgHP(p.PolyRace)/(avgHP(p.PolyRace)+4200))
	}
	if p.Meditate {
		mhp = mhp * 3 / 5
	}
	if mhp < p.Level+1 {
		mhp = p.Level + 1
	}
	st.MaxHP = mhp

	// Step 6: max mana.
	st.MaxSP = calcMaxMana(p, class, race, armorWeight)

	// Step 7: light radius already accumulated in step 2, where a light
	// whose PVal (remaining fuel) is 0 contributes nothing (spec.md step 7
	// "lights without fuel contribute 0").

	// Step 8: blows per round.
	st.Blows = calcBlows(p, race, class, st.Stats[StatStr], st.Stats[StatDex], armorWeight)
	if st.Blows < minBlows {
		st.Blows = minBlows
	}

	// Step 9: delta messages are the caller's responsibility (they need
	// the message bus); CalcBonuses only flips the corresponding upkeep
	// flags so the caller knows a message is owed.
	st.HeavyWield = armorWeight > heavyArmorCumberThreshold
	st.HeavyShoot = false // no bow-weight model yet; see DESIGN.md
	st.BlessWield = false

	st.Speed = clampInt(st.Speed+110, speedClampMin, speedClampMax)

	// Step 10: set upkeep flags for any change.
	if st.MaxHP != prev.MaxHP {
		p.SetFlag(FlagHP)
	}
	if st.MaxSP != prev.MaxSP {
		p.SetFlag(FlagMana)
	}
	if st.HeavyWield != prev.HeavyWield {
		p.SetFlag(FlagHeavyWield)
	}
	if st.ArmorCumber != prev.ArmorCumber {
		p.SetFlag(FlagArmorCumber)
	}
	p.SetFlag(FlagBonus)

	return st
}

func bonusFromStat(stat int) int {
	// A coarse, monotone stat-to-bonus curve: +1 bonus per 2 points above
	// 10, the shape spec.md's "bonus-to-hit from STR/DEX" etc. describes
	// without pinning an exact table.
	return (stat - 10) / 2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func stealthForWeightClass(race *RaceDef, armorWeight int, polymorphed bool) int {
	base := 0
	if race != nil {
		base = race.StealthBonus
	}
	if !polymorphed {
		return base
	}
	switch {
	case armorWeight > heavyArmorCumberThreshold:
		return base - 3
	case armorWeight > heavyArmorCumberThreshold/2:
		return base - 1
	default:
		return base
	}
}

func avgHP(r *RaceDef) int {
	if r == nil {
		return 1
	}
	v := 10 + r.HitDieBonus
	if v <= 0 {
		return 1
	}
	return v
}

func calcMaxMana(p *Player, class *ClassDef, race *RaceDef, armorWeight int) int {
	if class == nil || class.SpellStat < 0 {
		return 0
	}
	effLevels := p.Level
	statBonus := bonusFromStat(p.Stats[class.SpellStat])
	msp := 1 + statBonus*effLevels/100

	armorPenalty := 0
	if armorWeight > manaArmorWeightCap {
		armorPenalty = (armorWeight - manaArmorWeightCap) / 10
	}
	msp -= armorPenalty

	exmsp := 0
	if race != nil {
		exmsp += race.ExtraMana
	}
	if class != nil {
		exmsp += class.ExtraMana
	}
	if exmsp > 15 {
		exmsp = 15
	}
	msp = ((10 + exmsp) * msp) / 10

	if p.Meditate {
		msp = (3 * msp) / 2
	}
	if p.Shapechanger {
		msp /= 2
	}
	if msp < 0 {
		msp = 0
	}
	return msp
}

func calcBlows(p *Player, race *RaceDef, class *ClassDef, str, dex, armorWeight int) int {
	weaponWeight := 100 // default fist weight if unarmed, tenths of a pound
	for _, o := range equippedItems(p) {
		if o.Kind == "weapon" {
			weaponWeight = o.Weight
			break
		}
	}
	base := 100 + (str-10)*10 + (dex-10)*5 - weaponWeight/10
	if race != nil {
		base += race.ExtraBlows * 100
	}
	if class != nil {
		base += class.ExtraBlows * 100
	}
	if armorWeight > heavyArmorCumberThreshold {
		base -= (armorWeight - heavyArmorCumberThreshold) / 5
	}
	return base
}

func applyNamedDelta(st *State, name string, delta int) {
	switch name {
	case "str":
		st.Stats[StatStr] += delta
	case "int":
		st.Stats[StatInt] += delta
	case "wis":
		st.Stats[StatWis] += delta
	case "dex":
		st.Stats[StatDex] += delta
	case "con":
		st.Stats[StatCon] += delta
	case "to_hit":
		st.ToHit += delta
	case "to_dam":
		st.ToDam += delta
	case "to_ac":
		st.ToAC += delta
	case "speed":
		st.Speed += delta
	case "stealth":
		st.Skills[SkillStealth] += delta
	}
}

func (r *RaceDef) raceResists() [world.ElementCount]world.ElementFlag {
	if r == nil {
		return [world.ElementCount]world.ElementFlag{}
	}
	return r.Resists
}

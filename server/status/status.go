// Package status implements the timed-condition grade machinery shared by
// monsters and players (spec.md §4.5 "Status effects", §4.8 step 3). Each
// condition is described by a Table entry giving grade thresholds (onset
// messages fire only when a Set/Inc/Dec crosses a grade boundary) and the
// stat/skill deltas, keyed by name, that grade applies while active.
//
// It is a standalone package (rather than living on player or monster)
// because both actor kinds share the exact same grade/clamp/message
// machinery and neither owns the other.
package status

// Effect identifies one timed condition kind.
type Effect int

const (
	Fear Effect = iota
	Confusion
	Blind
	Stun
	Poison
	Cut
	Afraid
	Paralyzed
	Slow
	Fast
	Invuln
	Hero
	Shero
	Bless
	Protevil
	ShieldSpell
	Oppose
	Image
	Recall
	effectCount
)

// Grade is one threshold step of an Effect's severity table: once the
// timer's remaining duration is >= Threshold, this grade is active.
// Grades are declared in ascending Threshold order.
type Grade struct {
	Threshold int
	Label     string
	OnsetMsg  string
	OffsetMsg string
	// Deltas applied to derived player/monster state while this grade is
	// active. Keys are stat/skill names; status stays agnostic of the
	// consuming package's own enums and only carries raw deltas by name.
	StatDeltas map[string]int
}

// Definition is the static, data-driven description of one Effect: its
// grade table, clamp maximum, incompatibility list and save-throw
// override. It is immutable and shared by every actor (spec.md §9 "Global
// state": gathered into an immutable context rather than scattered
// globals).
type Definition struct {
	Effect        Effect
	Grades        []Grade // ascending Threshold
	Max           int
	Incompatible  []Effect
	SaveOverride  bool // if true, this effect's timer cannot be shortened by a save throw
	DefaultOnSet  string
	DefaultOnClear string
}

// Table is the full immutable set of condition definitions, keyed by
// Effect, loaded once at startup (see server/data).
type Table map[Effect]Definition

// Grade returns the active grade for a remaining duration, and whether any
// grade applies at all (duration 0 never has a grade).
func (t Table) Grade(e Effect, remaining int) (Grade, bool) {
	if remaining <= 0 {
		return Grade{}, false
	}
	def, ok := t[e]
	if !ok || len(def.Grades) == 0 {
		return Grade{}, false
	}
	best := -1
	for i, g := range def.Grades {
		if remaining >= g.Threshold {
			best = i
		}
	}
	if best < 0 {
		return Grade{}, false
	}
	return def.Grades[best], true
}

// Clamp restricts a proposed duration to the effect's configured maximum.
func (t Table) Clamp(e Effect, duration int) int {
	def, ok := t[e]
	if !ok || def.Max <= 0 {
		return duration
	}
	if duration > def.Max {
		return def.Max
	}
	if duration < 0 {
		return 0
	}
	return duration
}

// Timers is a sparse set of active (effect -> remaining duration) pairs
// for one actor. A duration of 0 means the effect is not active and is
// never stored.
type Timers map[Effect]int

// Remaining returns the remaining duration of e, or 0 if inactive.
func (t Timers) Remaining(e Effect) int { return t[e] }

// Active reports whether e currently has a nonzero duration.
func (t Timers) Active(e Effect) bool { return t[e] > 0 }

// TransitionResult reports whether a Set/Inc/Dec crossed a grade boundary,
// so the caller knows whether to emit an onset/offset message
// (spec.md §4.5: "messages fire only on grade boundary crossings").
type TransitionResult struct {
	Before, After     int
	GradeBefore       Grade
	HadGradeBefore    bool
	GradeAfter        Grade
	HadGradeAfter     bool
	CrossedBoundary   bool
	ClearedEntirely   bool
	NewlyActive       bool
}

// Set assigns a new duration for e, clamped to the table's maximum, and
// reports the grade transition.
func (t Timers) Set(table Table, e Effect, duration int) TransitionResult {
	before := t[e]
	gBefore, hadBefore := table.Grade(e, before)

	duration = table.Clamp(e, duration)
	if duration <= 0 {
		delete(t, e)
	} else {
		t[e] = duration
	}
	after := t[e]
	gAfter, hadAfter := table.Grade(e, after)

	return TransitionResult{
		Before: before, After: after,
		GradeBefore: gBefore, HadGradeBefore: hadBefore,
		GradeAfter: gAfter, HadGradeAfter: hadAfter,
		CrossedBoundary: hadBefore != hadAfter || (hadBefore && hadAfter && gBefore.Threshold != gAfter.Threshold),
		ClearedEntirely: before > 0 && after == 0,
		NewlyActive:     before == 0 && after > 0,
	}
}

// Inc increases e's duration by delta (delta may be negative, equivalent
// to Dec) and reports the grade transition, passing through the same
// clamp/grade machinery as Set (spec.md §4.5: "increment/decrement
// operations pass through the grade machinery so messages fire only on
// grade boundary crossings").
func (t Timers) Inc(table Table, e Effect, delta int) TransitionResult {
	return t.Set(table, e, t[e]+delta)
}

// Tick decrements every active timer by one tick, clearing any that reach
// zero, and returns the set of effects that changed grade this tick.
func (t Timers) Tick(table Table) []TransitionResult {
	var results []TransitionResult
	for e, remaining := range t {
		res := t.Set(table, e, remaining-1)
		if res.CrossedBoundary {
			results = append(results, res)
		}
	}
	return results
}

// Incompatible reports whether activating e would conflict with a
// currently active effect, per the table's incompatibility list.
func (t Timers) Incompatible(table Table, e Effect) bool {
	def, ok := table[e]
	if !ok {
		return false
	}
	for _, other := range def.Incompatible {
		if t.Active(other) {
			return true
		}
	}
	return false
}

package projection

import "github.com/draconisPW/mangband-core/server/world"

// Hooks are the per-cell callbacks Project invokes for each affected cell,
// gated by the matching travel flag (spec.md §4.3 "call per-feature/
// object/monster/player hooks on each"). Each hook reports whether the
// player now knows the effect's nature — Project ORs these into the
// overall "noticed" result. A nil hook is simply skipped.
type Hooks struct {
	Grid    func(g world.Grid, cell Cell) (noticed bool)
	Object  func(g world.Grid, cell Cell) (noticed bool)
	Monster func(g world.Grid, cell Cell) (noticed bool)
	Player  func(g world.Grid, cell Cell) (noticed bool)
}

// Project computes p's affected cells in travel order and invokes the
// hooks matching p.Flags on each. Project itself does not read FlagStop
// and never stops early: Bolt already stops at its first obstruction
// inside expandBolt, and every other shape's cell list is visited in full
// whatever the hooks return.
//
// Project returns the full ordered cell list plus whether anything hooked
// reported noticed == true, matching spec.md's dispatcher contract
// ("ident" from §4.4 is this noticed flag, threaded up to the effect
// dispatcher).
func Project(c *world.Chunk, p Params, hooks Hooks) ([]Cell, bool) {
	cells := expand(c, p)
	noticed := false
	for _, cell := range cells {
		if p.Flags.Has(FlagGrid) && hooks.Grid != nil {
			if hooks.Grid(cell.Grid, cell) {
				noticed = true
			}
		}
		if p.Flags.Has(FlagItem) && hooks.Object != nil {
			if hooks.Object(cell.Grid, cell) {
				noticed = true
			}
		}
		if p.Flags.Has(FlagKill) && hooks.Monster != nil {
			if hooks.Monster(cell.Grid, cell) {
				noticed = true
			}
		}
		if p.Flags.Has(FlagPlay) && hooks.Player != nil {
			if hooks.Player(cell.Grid, cell) {
				noticed = true
			}
		}
	}
	return cells, noticed
}

// Package visibility implements spec.md §4.7: per-player knowledge of a
// chunk (seen/visible/lit bits, a believed-object shadow table, a
// monster-perception table), the floodfill view update that recomputes
// them each time a player moves or the chunk changes, and the PR_*
// redraw-flag drain that turns accumulated mutations into one ordered
// batch of client-bound update messages.
package visibility

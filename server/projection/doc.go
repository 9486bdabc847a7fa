// Package projection implements the geometric half of spec.md §4.3
// "Projection Engine": turning an origin, a shape (bolt/beam/ball/cone/
// star/blast/spot), and a set of travel flags into an ordered list of
// affected cells, plus the per-cell damage-falloff arithmetic effects use
// to turn that cell list into actual numbers.
//
// Shape expansion walks the same world.Line/world.LineOfSight primitives
// server/world already exports, so there is exactly one Bresenham
// implementation in the whole module rather than one per caller.
package projection

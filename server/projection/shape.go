package projection

import "github.com/draconisPW/mangband-core/server/world"

// Shape selects which cell-expansion rule Project uses (spec.md §4.3
// "Shape modes").
type Shape int

const (
	ShapeBolt Shape = iota
	ShapeBeam
	ShapeBall
	ShapeCone
	ShapeStar
	ShapeBlast
	ShapeSpot
)

// Flag is one bit of spec.md §4.3 "Travel flags".
type Flag uint32

const (
	FlagGrid Flag = 1 << iota
	FlagItem
	FlagKill
	FlagPlay
	FlagHide
	FlagAware
	FlagJump
	FlagStop
	FlagThru
	FlagBeam
	FlagArc
	FlagConst
	FlagProject
)

// Has reports whether all bits in mask are set.
func (f Flag) Has(mask Flag) bool { return f&mask == mask }

// Params fully describes one projection call (spec.md §4.3
// "Responsibility" and "Shapes").
type Params struct {
	Shape Shape
	Flags Flag

	Origin world.Grid
	Target world.Grid // ignored by Blast/Star, which centre on Origin; Spot affects Target itself

	Radius           int
	DegreesOfArc     int // angular width of a ShapeCone projection; Shape, not FlagArc, selects the cone
	DiameterOfSource int // controls cone strength falloff

	Element world.Element
}

// Cell is one affected square in travel order, along with the distance
// from the origin used by the damage falloff.
type Cell struct {
	Grid world.Grid
	Dist int
	// Intensity is the cone-shape strength factor in [0,1]; 1 for every
	// non-cone shape (spec.md §4.3 "intensity scales with
	// diameter_of_source / (source_dist + diameter_of_source)").
	Intensity float64
}

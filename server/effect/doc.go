// Package effect implements the effect dispatcher of spec.md §4.4: the
// named operations (BALL, BOLT, BEAM, BREATH, SPOT, STRIKE, SWARM, STAR,
// ARC, LINE, LASH, DESTRUCTION, WIPE_AREA, EARTHQUAKE, DETONATE, HEAL_HP,
// MON_HEAL_HP, MON_HEAL_KIN, DAMAGE, TAP_UNLIFE, CURSE, PROJECT_LOS, ALTER,
// TOUCH, WONDER, MELEE_BLOWS, SWEEP) that an actor's action ultimately
// bottoms out in. Each dispatches to server/projection for the geometry
// and damage-at-cell math, then applies the result to the grid/objects/
// monsters/players it touches through a caller-supplied Context.
package effect

// Package world models the game world geometry used by the pathfinding engine.
//
// The world is a fixed square centered on the origin. It is partitioned once at
// startup into a grid of equal square sectors; the resulting Index is immutable
// and maps any position to a sector id and exposes the von Neumann adjacency
// between sectors.
//
// # Positions
//
// Position is a 3D floating-point coordinate in world units. Equality is
// approximate (tolerance 0.01 per axis) because coordinates originate from a
// game engine that reports slightly different values for the same spot.
// Positions also carry a total order (Less) on quantized coordinates, used to
// break ties deterministically in search ordering so that independent peers
// expand nodes in the same sequence.
//
// # Sectors
//
//	idx := world.NewIndex(world.Config{Size: 800000, SectorSize: 10000})
//	id := idx.SectorAt(pos)          // out-of-bounds positions clamp to the edge
//	for _, n := range idx.Neighbors(id) { ... }
package world

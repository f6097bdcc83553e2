package nav

import "path-cache/core/world"

// Terrain answers passability queries for the local search. Implementations
// must be safe for concurrent use and deterministic: the same position must
// get the same answer on every peer, or caches diverge.
type Terrain interface {
	// Passable reports whether the position can be walked through.
	Passable(p world.Position) bool
}

// OpenTerrain treats the whole world as walkable. It is the default when no
// terrain data is wired in; the search then degenerates to near-straight
// routes, which is the intended fallback quality.
type OpenTerrain struct{}

// Passable always returns true.
func (OpenTerrain) Passable(world.Position) bool {
	return true
}

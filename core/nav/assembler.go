package nav

import (
	"math"

	"path-cache/core/world"
)

// Assembler turns a coarse sector sequence into a concrete waypoint route.
type Assembler struct {
	cfg     Config
	index   *world.Index
	finder  *Pathfinder
	terrain Terrain
}

// NewAssembler creates a path assembler. A nil terrain means open ground.
func NewAssembler(cfg Config, index *world.Index, finder *Pathfinder, terrain Terrain) *Assembler {
	if terrain == nil {
		terrain = OpenTerrain{}
	}
	return &Assembler{cfg: cfg.withDefaults(), index: index, finder: finder, terrain: terrain}
}

// Assemble routes from start to end through the given intermediate sectors.
// For every sector boundary it greedily picks the exit point on the shared
// edge closest to the final destination, runs the local pathfinder leg by
// leg, and simplifies the concatenated result. The greedy exit choice is
// local, so the assembled route is not a guaranteed shortest path.
func (a *Assembler) Assemble(start, end world.Position, route []int) []world.Position {
	chain := make([]int, 0, len(route)+2)
	chain = append(chain, a.index.SectorAt(start))
	chain = append(chain, route...)
	chain = append(chain, a.index.SectorAt(end))

	var path []world.Position
	cur := start
	for i := 0; i+1 < len(chain); i++ {
		exit := a.index.ExitPoint(chain[i], chain[i+1], end)
		path = appendLeg(path, a.finder.Find(cur, exit))
		cur = path[len(path)-1]
	}
	path = appendLeg(path, a.finder.Find(cur, end))

	return a.Simplify(path)
}

// Simplify drops middle waypoints whose removal leaves a clear straight
// segment between their neighbors. The clearance check is deliberately crude:
// it samples the segment against the terrain at step intervals and refuses to
// create segments longer than SimplifyMaxSegment.
func (a *Assembler) Simplify(path []world.Position) []world.Position {
	if len(path) <= 2 {
		return path
	}

	out := []world.Position{path[0]}
	last := 0
	for j := 1; j+1 < len(path); j++ {
		if a.clear(path[last], path[j+1]) {
			continue // path[j] is redundant
		}
		out = append(out, path[j])
		last = j
	}
	return append(out, path[len(path)-1])
}

// clear reports whether the straight segment between p and q is traversable.
func (a *Assembler) clear(p, q world.Position) bool {
	d := p.Distance(q)
	if d > a.cfg.SimplifyMaxSegment {
		return false
	}
	steps := int(math.Ceil(d / a.cfg.StepSize))
	for k := 1; k < steps; k++ {
		if !a.terrain.Passable(p.Lerp(q, float64(k)/float64(steps))) {
			return false
		}
	}
	return true
}

// appendLeg concatenates a leg onto the path, dropping the duplicated
// junction point.
func appendLeg(path, leg []world.Position) []world.Position {
	if len(path) > 0 && len(leg) > 0 && path[len(path)-1].ApproxEqual(leg[0]) {
		leg = leg[1:]
	}
	return append(path, leg...)
}

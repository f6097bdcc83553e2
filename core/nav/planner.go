package nav

import "path-cache/core/world"

// Planner bundles the router, local pathfinder, and assembler into the full
// two-level pipeline. It is the generator the path store invokes on a cache
// miss.
type Planner struct {
	cfg    Config
	index  *world.Index
	router *Router
	finder *Pathfinder
	asm    *Assembler
}

// NewPlanner wires the pipeline over a sector index and terrain. A nil
// terrain means open ground.
func NewPlanner(cfg Config, index *world.Index, terrain Terrain) *Planner {
	cfg = cfg.withDefaults()
	finder := NewPathfinder(cfg, terrain)
	return &Planner{
		cfg:    cfg,
		index:  index,
		router: NewRouter(index),
		finder: finder,
		asm:    NewAssembler(cfg, index, finder, terrain),
	}
}

// Route computes a waypoint route between two arbitrary points. Same-sector
// queries go straight to the local pathfinder; cross-sector queries route over
// the sector graph and are assembled leg by leg. Route is total: when coarse
// routing fails it degrades to a straight interpolated path.
func (p *Planner) Route(start, end world.Position) []world.Position {
	from := p.index.SectorAt(start)
	to := p.index.SectorAt(end)

	if from == to {
		return p.asm.Simplify(p.finder.Find(start, end))
	}

	route, ok := p.router.Route(from, to)
	if !ok {
		return Interpolate(start, end, p.cfg.StepSize)
	}
	return p.asm.Assemble(start, end, route)
}

// Index returns the sector index the planner routes over.
func (p *Planner) Index() *world.Index {
	return p.index
}

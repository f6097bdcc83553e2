package nav

import (
	"container/heap"
	"math"

	"path-cache/core/world"
)

// Pathfinder runs the bounded local A* search between two nearby points.
type Pathfinder struct {
	cfg     Config
	terrain Terrain
}

// NewPathfinder creates a local pathfinder over the given terrain. A nil
// terrain means fully open ground.
func NewPathfinder(cfg Config, terrain Terrain) *Pathfinder {
	if terrain == nil {
		terrain = OpenTerrain{}
	}
	return &Pathfinder{cfg: cfg.withDefaults(), terrain: terrain}
}

// searchNode is a transient A* node; it is never persisted.
type searchNode struct {
	ix, iy int64
	pos    world.Position
	g      float64 // cost from start
	h      float64 // straight-line heuristic to goal
	f      float64 // g + h
	parent *searchNode
	index  int // heap bookkeeping
}

type gridKey struct {
	ix, iy int64
}

// Find returns a waypoint sequence from start toward end. The first waypoint
// is always start; the last is within the proximity threshold of end when the
// search succeeds. On budget exhaustion the result degrades to a straight
// interpolated line. Find never fails.
func (p *Pathfinder) Find(start, end world.Position) []world.Position {
	if start.Distance2D(end) <= p.cfg.ProximityThreshold {
		return Interpolate(start, end, p.cfg.StepSize)
	}

	step := p.cfg.StepSize
	root := p.node(int64(math.Round(start.X/step)), int64(math.Round(start.Y/step)), start.Z, end)
	root.g = 0
	root.f = root.h

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, root)

	best := map[gridKey]float64{{root.ix, root.iy}: 0}
	closed := map[gridKey]bool{}

	for iter := 0; open.Len() > 0 && iter < p.cfg.MaxIterations; iter++ {
		cur := heap.Pop(open).(*searchNode)
		key := gridKey{cur.ix, cur.iy}
		if closed[key] {
			continue
		}
		closed[key] = true

		if cur.pos.Distance2D(end) <= p.cfg.ProximityThreshold {
			return p.reconstruct(start, end, cur)
		}

		for _, d := range gridDirections {
			nix, niy := cur.ix+d.dx, cur.iy+d.dy
			nkey := gridKey{nix, niy}
			if closed[nkey] {
				continue
			}
			next := p.node(nix, niy, start.Z, end)
			if !p.terrain.Passable(next.pos) {
				continue
			}
			g := cur.g + d.cost*step
			if prev, ok := best[nkey]; ok && prev <= g {
				continue
			}
			best[nkey] = g
			next.g = g
			next.f = g + next.h
			next.parent = cur
			heap.Push(open, next)
		}
	}

	// Open set exhausted or budget spent: degrade to a straight line.
	return Interpolate(start, end, step)
}

// node builds a search node on the absolute world-aligned grid. Aligning to
// the world origin instead of the raw start keeps node positions identical
// across peers whose queries differ by less than one step.
func (p *Pathfinder) node(ix, iy int64, z float64, goal world.Position) *searchNode {
	pos := world.Position{X: float64(ix) * p.cfg.StepSize, Y: float64(iy) * p.cfg.StepSize, Z: z}
	return &searchNode{ix: ix, iy: iy, pos: pos, h: pos.Distance2D(goal)}
}

// reconstruct walks the parent chain back to the root and assigns Z values by
// linear interpolation along the route.
func (p *Pathfinder) reconstruct(start, end world.Position, goal *searchNode) []world.Position {
	var rev []world.Position
	for n := goal; n != nil; n = n.parent {
		rev = append(rev, n.pos)
	}

	path := make([]world.Position, 0, len(rev)+1)
	path = append(path, start)
	for i := len(rev) - 1; i >= 0; i-- {
		if rev[i].ApproxEqual(start) {
			continue
		}
		path = append(path, rev[i])
	}
	if len(path) < 2 {
		path = append(path, end)
	}

	assignZ(path, start.Z, end.Z)
	return path
}

// Interpolate returns evenly spaced waypoints on the straight segment from
// start to end, including both endpoints. It is the universal fallback: any
// failed or exhausted search collapses to this.
func Interpolate(start, end world.Position, step float64) []world.Position {
	if step <= 0 {
		step = 50
	}
	n := int(math.Ceil(start.Distance(end) / step))
	if n < 1 {
		n = 1
	}
	path := make([]world.Position, 0, n+1)
	for i := 0; i <= n; i++ {
		path = append(path, start.Lerp(end, float64(i)/float64(n)))
	}
	return path
}

// assignZ spreads the start-to-end height difference over the path in
// proportion to horizontal distance traveled.
func assignZ(path []world.Position, z0, z1 float64) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += path[i-1].Distance2D(path[i])
	}
	if total == 0 {
		return
	}
	run := 0.0
	for i := 1; i < len(path); i++ {
		run += path[i-1].Distance2D(path[i])
		path[i].Z = z0 + (z1-z0)*(run/total)
	}
}

var sqrt2 = math.Sqrt(2)

// gridDirections is the 8-directional neighbor set. Order is fixed; combined
// with the total-order tie-break it keeps expansion deterministic.
var gridDirections = []struct {
	dx, dy int64
	cost   float64
}{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	{1, 1, sqrt2}, {1, -1, sqrt2}, {-1, 1, sqrt2}, {-1, -1, sqrt2},
}

// nodeHeap is a min-heap on f with a deterministic tie-break on quantized
// coordinates. Hash-based tie-breaking would order identically scored nodes
// differently across runtimes and break cross-peer determinism.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].pos.Less(h[j].pos)
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

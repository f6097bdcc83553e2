package nav

import "path-cache/core/world"

// Router performs coarse routing over the sector adjacency graph.
type Router struct {
	index *world.Index
}

// NewRouter creates a sector router over the given index.
func NewRouter(index *world.Index) *Router {
	return &Router{index: index}
}

// Route returns the ordered intermediate sector ids between from and to,
// excluding both endpoints. It runs an unweighted BFS, so the result
// minimizes hop count, not geometric distance. When from == to the route is
// empty and the caller should go straight to the local pathfinder. The second
// return value is false only when no path exists in the graph, which should
// not happen since the grid is fully connected by construction; callers then
// fall back to a direct interpolated path.
func (r *Router) Route(from, to int) ([]int, bool) {
	if from == to {
		return nil, true
	}

	prev := make(map[int]int, r.index.Count())
	prev[from] = from
	queue := []int{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == to {
			return r.backtrack(prev, from, to), true
		}

		for _, n := range r.index.Neighbors(cur) {
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}

	return nil, false
}

// backtrack rebuilds the intermediate chain from the BFS predecessor map.
func (r *Router) backtrack(prev map[int]int, from, to int) []int {
	var rev []int
	for cur := prev[to]; cur != from; cur = prev[cur] {
		rev = append(rev, cur)
	}

	route := make([]int, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		route = append(route, rev[i])
	}
	return route
}

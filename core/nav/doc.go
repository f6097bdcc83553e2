// Package nav implements the two-level pathfinding pipeline.
//
// The pipeline has three stages:
//
//  1. Router: unweighted breadth-first search over the sector adjacency graph,
//     yielding the coarse sequence of sectors to traverse when start and end
//     fall in different sectors.
//
//  2. Pathfinder: bounded A* over an 8-directional, world-aligned grid,
//     producing the fine waypoint sequence for a single leg. The search stops
//     as soon as it is within a proximity threshold of the goal, trading
//     precision for guaranteed termination, and degrades to a straight
//     interpolated line when the search budget runs out. It never reports
//     "no path".
//
//  3. Assembler: walks the sector sequence, greedily picks the boundary exit
//     on each shared edge closest to the final destination, runs the
//     Pathfinder per leg, concatenates the legs, and simplifies the result by
//     dropping waypoints whose removal leaves a clear straight segment.
//
// All three stages are deterministic: given identical inputs they produce
// identical waypoints on every machine. Ties in the A* open set are broken by
// a total order on quantized coordinates, never by hash codes, so peers that
// compute the same route independently agree on its content.
//
// Planner bundles the three stages behind a single Route call; it is what the
// path store invokes on a cache miss.
package nav

package store

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"path-cache/core/world"
)

// CachedPath is one stored route. Waypoints are in route order: the first is
// the route's actual start, the last its (possibly approximate) end. After
// insertion only UseCount changes, and only through successful lookups.
type CachedPath struct {
	// Key is the deterministic cache key derived from (Start, End).
	Key PathKey `json:"key"`
	// Name is a human-readable label for the route.
	Name string `json:"name"`
	// Start is the query start the route was computed for.
	Start world.Position `json:"start"`
	// End is the query end the route was computed for.
	End world.Position `json:"end"`
	// Waypoints is the ordered route; never empty.
	Waypoints []world.Position `json:"waypoints"`
	// Distance is the sum of consecutive segment lengths. It is always
	// recomputed from Waypoints, never trusted from the wire or disk.
	Distance float64 `json:"distance"`
	// CreatedAt is when this peer first obtained the path.
	CreatedAt time.Time `json:"created_at"`
	// UseCount is the number of successful lookups; monotonically
	// non-decreasing.
	UseCount int32 `json:"use_count"`
}

// NewCachedPath builds a path entry for the given endpoints and waypoints.
// The name is derived from the key so that independent peers label the same
// route identically.
func NewCachedPath(start, end world.Position, waypoints []world.Position) *CachedPath {
	key := Key(start, end)
	p := &CachedPath{
		Key:       key,
		Name:      fmt.Sprintf("route_%016x", uint64(key)),
		Start:     start,
		End:       end,
		Waypoints: waypoints,
		CreatedAt: time.Now().UTC(),
	}
	p.RecomputeDistance()
	return p
}

// RecomputeDistance recalculates Distance from the waypoint sequence.
func (p *CachedPath) RecomputeDistance() {
	total := 0.0
	for i := 1; i < len(p.Waypoints); i++ {
		total += p.Waypoints[i-1].Distance(p.Waypoints[i])
	}
	p.Distance = total
}

// ContentHash digests the waypoint sequence at float32 precision. Two peers
// holding the same route under the same key hash identically; a mismatch
// reveals a sync conflict.
func (p *CachedPath) ContentHash() [32]byte {
	buf := make([]byte, 0, len(p.Waypoints)*12)
	var wp [12]byte
	for _, w := range p.Waypoints {
		binary.LittleEndian.PutUint32(wp[0:], math.Float32bits(float32(w.X)))
		binary.LittleEndian.PutUint32(wp[4:], math.Float32bits(float32(w.Y)))
		binary.LittleEndian.PutUint32(wp[8:], math.Float32bits(float32(w.Z)))
		buf = append(buf, wp[:]...)
	}
	return sha256.Sum256(buf)
}

// Valid reports whether the entry satisfies the store invariants.
func (p *CachedPath) Valid() bool {
	return p != nil && len(p.Waypoints) >= 2
}

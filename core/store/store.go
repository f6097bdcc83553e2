package store

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"
	"time"

	"path-cache/core/nav"
	"path-cache/core/world"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Generator produces a waypoint route for a (start, end) query. It must be
// total (never fail) and deterministic across peers. nav.Planner is the
// production implementation.
type Generator interface {
	Route(start, end world.Position) []world.Position
}

// Location is a named point of interest used for pre-baking.
type Location struct {
	// Name is the point's human-readable label.
	Name string `json:"name"`
	// Pos is the point's world position.
	Pos world.Position `json:"pos"`
}

// Stats is a point-in-time snapshot of store counters.
type Stats struct {
	Paths         int    `json:"paths"`
	HotEntries    int    `json:"hot_entries"`
	HotHits       uint64 `json:"hot_hits"`
	ExactHits     uint64 `json:"exact_hits"`
	ApproxHits    uint64 `json:"approx_hits"`
	Generated     uint64 `json:"generated"`
	Fallbacks     uint64 `json:"fallbacks"`
	Merged        uint64 `json:"merged"`
	Conflicts     uint64 `json:"conflicts"`
	DroppedEvents uint64 `json:"dropped_events"`
}

// Store is the authoritative path cache. It is safe for concurrent use by
// query threads, a background pre-bake batch, and an inbound sync handler.
type Store struct {
	cfg    Config
	gen    Generator
	logger *zap.Logger

	mu    sync.Mutex
	paths map[PathKey]*CachedPath
	hot   *lruCache
	stats Stats

	sf     singleflight.Group
	events chan *CachedPath
}

// New creates an empty store. The generator is invoked on total cache misses
// when the caller permits generation.
func New(cfg Config, gen Generator, logger *zap.Logger) *Store {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		cfg:    cfg,
		gen:    gen,
		logger: logger,
		paths:  make(map[PathKey]*CachedPath),
		hot:    newLRUCache(cfg.HotCacheSize),
		events: make(chan *CachedPath, cfg.EventBuffer),
	}
}

// GetPath resolves a route for the query. It never fails: the result is, in
// priority order, a hot-cache hit, an exact store hit, an approximate match
// spliced onto the query endpoints, a freshly generated path (when
// allowGeneration is set), or a straight interpolated fallback.
//
// The returned entry is a private copy; later lookups keep bumping UseCount
// on the cached original, never on entries already handed out. Waypoint
// slices are shared and immutable after insertion.
func (s *Store) GetPath(start, end world.Position, allowGeneration bool) *CachedPath {
	key := Key(start, end)

	s.mu.Lock()
	if p, ok := s.hot.get(key); ok {
		p.UseCount++
		s.stats.HotHits++
		out := *p
		s.mu.Unlock()
		return &out
	}
	if p, ok := s.paths[key]; ok {
		p.UseCount++
		s.hot.put(key, p)
		s.stats.ExactHits++
		out := *p
		s.mu.Unlock()
		return &out
	}
	if p := s.approxMatch(key, start, end); p != nil {
		out := *p
		s.mu.Unlock()
		return &out
	}
	s.mu.Unlock()

	if allowGeneration && s.gen != nil {
		return s.generate(key, start, end)
	}

	// Total miss with generation forbidden: degrade to a straight line. The
	// degraded result is not cached, so a later generating lookup for the
	// same query still produces the real route.
	p := NewCachedPath(start, end, nav.Interpolate(start, end, 0))
	s.mu.Lock()
	s.stats.Fallbacks++
	s.mu.Unlock()
	return p
}

// approxMatch finds the nearest cached path whose endpoints both lie within
// the search radius of the query and splices the query endpoints onto it.
// Splicing does not verify that the two new connector segments are actually
// traversable; that is a known precision gap. Caller holds s.mu.
func (s *Store) approxMatch(key PathKey, start, end world.Position) *CachedPath {
	var best *CachedPath
	bestScore := 0.0
	for _, cand := range s.paths {
		ds := cand.Start.Distance(start)
		de := cand.End.Distance(end)
		if ds > s.cfg.ApproxRadius || de > s.cfg.ApproxRadius {
			continue
		}
		if best == nil || ds+de < bestScore {
			best, bestScore = cand, ds+de
		}
	}
	if best == nil {
		return nil
	}

	best.UseCount++
	s.stats.ApproxHits++

	waypoints := make([]world.Position, 0, len(best.Waypoints)+2)
	waypoints = append(waypoints, start)
	waypoints = append(waypoints, best.Waypoints...)
	waypoints = append(waypoints, end)

	spliced := &CachedPath{
		Key:       key,
		Name:      fmt.Sprintf("splice_%016x", uint64(key)),
		Start:     start,
		End:       end,
		Waypoints: waypoints,
		CreatedAt: time.Now().UTC(),
		UseCount:  1,
	}
	spliced.RecomputeDistance()

	// Spliced routes live in the hot cache only, never in the authoritative map.
	s.hot.put(key, spliced)
	return spliced
}

// generate runs the full pipeline for an uncached query. singleflight
// collapses concurrent generation of the same key within this process; the
// same race across peers stays unguarded and is tolerable because the
// pipeline is deterministic.
func (s *Store) generate(key PathKey, start, end world.Position) *CachedPath {
	v, _, _ := s.sf.Do(fmt.Sprintf("%016x", uint64(key)), func() (any, error) {
		p := NewCachedPath(start, end, s.gen.Route(start, end))

		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := s.paths[key]; ok {
			// An inbound sync beat us to it; keep the established entry.
			return existing, nil
		}
		s.paths[key] = p
		s.hot.put(key, p)
		s.stats.Generated++
		s.publish(p)
		return p, nil
	})

	p := v.(*CachedPath)
	s.mu.Lock()
	p.UseCount++
	out := *p
	s.mu.Unlock()

	s.logger.Debug("Generated path",
		zap.Uint64("key", uint64(key)),
		zap.Int("waypoints", len(out.Waypoints)),
		zap.Float64("distance", out.Distance),
	)
	return &out
}

// PreBake synthesizes and inserts routes for every ordered pair of the given
// locations, warming the cache for known hotspots. It is cancellable between
// pairs and may run concurrently with live queries. Returns the number of
// paths inserted.
func (s *Store) PreBake(ctx context.Context, locations []Location) (int, error) {
	if s.gen == nil {
		return 0, fmt.Errorf("store has no generator")
	}

	inserted := 0
	for i, from := range locations {
		for j, to := range locations {
			if i == j {
				continue
			}
			if err := ctx.Err(); err != nil {
				return inserted, err
			}

			key := Key(from.Pos, to.Pos)
			s.mu.Lock()
			_, exists := s.paths[key]
			s.mu.Unlock()
			if exists {
				continue
			}

			p := NewCachedPath(from.Pos, to.Pos, s.gen.Route(from.Pos, to.Pos))
			p.Name = fmt.Sprintf("%s_to_%s", from.Name, to.Name)

			s.mu.Lock()
			if _, ok := s.paths[key]; !ok {
				s.paths[key] = p
				s.hot.put(key, p)
				s.stats.Generated++
				s.publish(p)
				inserted++
			}
			s.mu.Unlock()
		}
	}

	s.logger.Info("Pre-bake completed",
		zap.Int("locations", len(locations)),
		zap.Int("inserted", inserted),
	)
	return inserted, nil
}

// Checksum returns a base64-encoded SHA-256 digest over the sorted key set,
// each key serialized as 8 little-endian bytes. Insertion order does not
// affect the result, so two peers with the same key set always agree.
func (s *Store) Checksum() string {
	s.mu.Lock()
	keys := make([]PathKey, 0, len(s.paths))
	for k := range s.paths {
		keys = append(keys, k)
	}
	s.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	buf := make([]byte, 0, len(keys)*8)
	var kb [8]byte
	for _, k := range keys {
		binary.LittleEndian.PutUint64(kb[:], uint64(k))
		buf = append(buf, kb[:]...)
	}
	sum := sha256.Sum256(buf)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Synchronize merges a remote path list into the store, inserting entries
// whose keys are absent locally. On a key collision with differing waypoint
// content the local entry wins and the conflict is logged; remote content
// never overwrites established local paths. Returns the number of paths
// added; repeating the same call is a no-op.
func (s *Store) Synchronize(remote []*CachedPath) int {
	added := 0
	for _, rp := range remote {
		if !rp.Valid() {
			continue
		}

		s.mu.Lock()
		local, ok := s.paths[rp.Key]
		if !ok {
			cp := *rp
			cp.RecomputeDistance()
			if cp.CreatedAt.IsZero() {
				cp.CreatedAt = time.Now().UTC()
			}
			s.paths[cp.Key] = &cp
			s.stats.Merged++
			added++
			s.mu.Unlock()
			continue
		}
		conflict := local.ContentHash() != rp.ContentHash()
		if conflict {
			s.stats.Conflicts++
		}
		s.mu.Unlock()

		if conflict {
			s.logger.Warn("Sync conflict: same key, different waypoints; keeping local",
				zap.Uint64("key", uint64(rp.Key)),
				zap.Int("local_waypoints", len(local.Waypoints)),
				zap.Int("remote_waypoints", len(rp.Waypoints)),
			)
		}
	}
	return added
}

// Events returns the outbound channel of freshly generated paths. The sync
// broadcaster drains it; when nothing drains it, publishes are dropped once
// the buffer fills.
func (s *Store) Events() <-chan *CachedPath {
	return s.events
}

// publish hands a copy of a new path to the outbound channel without
// blocking the insert path. The broadcaster reads the event outside s.mu, so
// it must not see the cached original. Caller holds s.mu.
func (s *Store) publish(p *CachedPath) {
	cp := *p
	select {
	case s.events <- &cp:
	default:
		s.stats.DroppedEvents++
	}
}

// Snapshot returns all paths sorted by key, for persistence and full-sync
// responses. The returned entries share waypoint slices with the store;
// waypoints are immutable after insertion.
func (s *Store) Snapshot() []*CachedPath {
	s.mu.Lock()
	out := make([]*CachedPath, 0, len(s.paths))
	for _, p := range s.paths {
		cp := *p
		out = append(out, &cp)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Restore replaces the store content with a loaded snapshot. Invalid entries
// are skipped and distances recomputed; the hot cache starts cold.
func (s *Store) Restore(paths []*CachedPath) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paths = make(map[PathKey]*CachedPath, len(paths))
	s.hot = newLRUCache(s.cfg.HotCacheSize)
	for _, p := range paths {
		if !p.Valid() {
			continue
		}
		cp := *p
		cp.RecomputeDistance()
		s.paths[cp.Key] = &cp
	}
}

// Stats returns a snapshot of the store counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stats
	st.Paths = len(s.paths)
	st.HotEntries = s.hot.len()
	return st
}

// Len returns the number of paths in the authoritative map.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}

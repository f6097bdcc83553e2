package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"path-cache/core/nav"
	"path-cache/core/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineGen is a deterministic fake generator that counts invocations.
type lineGen struct {
	calls int
}

func (g *lineGen) Route(start, end world.Position) []world.Position {
	g.calls++
	return nav.Interpolate(start, end, 1000)
}

func newTestStore(gen Generator) *Store {
	return New(Config{}, gen, nil)
}

func TestGetPathNeverFails(t *testing.T) {
	s := newTestStore(nil) // no generator at all

	p := s.GetPath(world.Position{X: 0}, world.Position{X: 5000}, true)

	require.NotNil(t, p)
	assert.True(t, p.Valid())
	assert.GreaterOrEqual(t, len(p.Waypoints), 2)
}

func TestKeyDeterminism(t *testing.T) {
	a := world.Position{X: 123.45, Y: -678.9, Z: 12}
	b := world.Position{X: -400000, Y: 400000, Z: 0}

	assert.Equal(t, Key(a, b), Key(a, b))
	assert.NotEqual(t, Key(a, b), Key(b, a), "direction matters")

	// Two independent stores agree on the key for the same query.
	s1 := newTestStore(&lineGen{})
	s2 := newTestStore(&lineGen{})
	assert.Equal(t, s1.GetPath(a, b, true).Key, s2.GetPath(a, b, true).Key)
}

func TestGetPathIdempotentWithoutGeneration(t *testing.T) {
	s := newTestStore(&lineGen{})
	start := world.Position{X: 100}
	end := world.Position{X: 9000}

	first := s.GetPath(start, end, false)
	second := s.GetPath(start, end, false)

	assert.Equal(t, first.Key, second.Key)
	assert.Equal(t, first.Waypoints, second.Waypoints)
}

func TestGetPathGeneratesOnceAndServesFromCache(t *testing.T) {
	gen := &lineGen{}
	s := newTestStore(gen)
	start := world.Position{X: 0}
	end := world.Position{X: 50000}

	first := s.GetPath(start, end, true)
	second := s.GetPath(start, end, true)

	assert.Equal(t, 1, gen.calls, "second lookup must not regenerate")
	assert.Equal(t, first.Key, second.Key)
	assert.Equal(t, int32(2), second.UseCount)

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Generated)
	assert.Equal(t, uint64(1), st.HotHits)
	assert.Equal(t, 1, st.Paths)
}

func TestGetPathReturnsIsolatedCopies(t *testing.T) {
	s := newTestStore(&lineGen{})
	start := world.Position{X: 0}
	end := world.Position{X: 9000}

	first := s.GetPath(start, end, true)
	count := first.UseCount

	// Later lookups bump the stored counter, never entries already handed out.
	s.GetPath(start, end, true)
	s.GetPath(start, end, true)
	assert.Equal(t, count, first.UseCount)

	fourth := s.GetPath(start, end, true)
	assert.Equal(t, int32(4), fourth.UseCount)

	// The waypoint slice stays shared; only the entry header is copied.
	assert.Equal(t, first.Waypoints, fourth.Waypoints)
}

func TestGetPathSafeForConcurrentReaders(t *testing.T) {
	s := newTestStore(&lineGen{})
	start := world.Position{X: 0}
	end := world.Position{X: 9000}

	p := s.GetPath(start, end, true)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.GetPath(start, end, true)
		}
	}()
	go func() {
		defer wg.Done()
		// Serializing a handed-out entry must not race with lookups.
		for i := 0; i < 500; i++ {
			if _, err := json.Marshal(p); err != nil {
				t.Error(err)
			}
		}
	}()
	wg.Wait()
}

func TestFallbackNotServedOnceGenerationAllowed(t *testing.T) {
	gen := &lineGen{}
	s := newTestStore(gen)
	start := world.Position{X: 0}
	end := world.Position{X: 9000}

	degraded := s.GetPath(start, end, false)
	assert.Equal(t, 0, gen.calls)
	assert.Equal(t, uint64(1), s.Stats().Fallbacks)

	generated := s.GetPath(start, end, true)
	assert.Equal(t, 1, gen.calls, "generating lookup must not be served the degraded line")
	assert.Equal(t, degraded.Key, generated.Key)
	assert.Equal(t, 1, s.Len())
}

func TestApproxMatchSplicesNearbyPath(t *testing.T) {
	gen := &lineGen{}
	s := newTestStore(gen)

	base := s.GetPath(world.Position{X: 0}, world.Position{X: 10000}, true)
	require.Equal(t, 1, gen.calls)

	// Both endpoints are within the search radius of the cached route.
	start := world.Position{X: 100, Y: 50}
	end := world.Position{X: 10050, Y: 100}
	spliced := s.GetPath(start, end, true)

	assert.Equal(t, 1, gen.calls, "approximate match must not trigger regeneration")
	assert.Equal(t, start, spliced.Waypoints[0])
	assert.Equal(t, end, spliced.Waypoints[len(spliced.Waypoints)-1])
	assert.Len(t, spliced.Waypoints, len(base.Waypoints)+2)
	assert.NotEqual(t, base.Key, spliced.Key)
	assert.Equal(t, 1, s.Len(), "spliced paths stay out of the authoritative map")
}

func TestApproxMatchRespectsRadius(t *testing.T) {
	gen := &lineGen{}
	s := newTestStore(gen)

	s.GetPath(world.Position{X: 0}, world.Position{X: 10000}, true)

	// A start 2000 units away is out of the 500-unit radius.
	s.GetPath(world.Position{X: 2000}, world.Position{X: 10000}, true)
	assert.Equal(t, 2, gen.calls)
}

func TestPreBakeInsertsAllOrderedPairs(t *testing.T) {
	gen := &lineGen{}
	s := newTestStore(gen)

	locations := make([]Location, 5)
	for i := range locations {
		locations[i] = Location{
			Name: fmt.Sprintf("poi%d", i),
			Pos:  world.Position{X: float64(i) * 20000},
		}
	}

	inserted, err := s.PreBake(context.Background(), locations)
	require.NoError(t, err)
	assert.Equal(t, 20, inserted, "5 locations give 5*4 directed pairs")
	assert.Equal(t, 20, s.Len())

	// Re-baking the same set inserts nothing new.
	inserted, err = s.PreBake(context.Background(), locations)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestPreBakeIsCancellable(t *testing.T) {
	s := newTestStore(&lineGen{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inserted, err := s.PreBake(ctx, []Location{
		{Name: "a", Pos: world.Position{X: 0}},
		{Name: "b", Pos: world.Position{X: 1000}},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, inserted)
}

func TestChecksumOrderIndependence(t *testing.T) {
	paths := []*CachedPath{
		NewCachedPath(world.Position{X: 0}, world.Position{X: 1000}, []world.Position{{X: 0}, {X: 1000}}),
		NewCachedPath(world.Position{X: 1}, world.Position{X: 2000}, []world.Position{{X: 1}, {X: 2000}}),
		NewCachedPath(world.Position{X: 2}, world.Position{X: 3000}, []world.Position{{X: 2}, {X: 3000}}),
	}

	forward := newTestStore(nil)
	forward.Synchronize(paths)

	backward := newTestStore(nil)
	backward.Synchronize([]*CachedPath{paths[2], paths[0], paths[1]})

	assert.Equal(t, forward.Checksum(), backward.Checksum())

	// Removing one entry changes the digest.
	partial := newTestStore(nil)
	partial.Synchronize(paths[:2])
	assert.NotEqual(t, forward.Checksum(), partial.Checksum())
}

func TestChecksumStableAcrossCalls(t *testing.T) {
	s := newTestStore(&lineGen{})
	s.GetPath(world.Position{X: 0}, world.Position{X: 9000}, true)
	assert.Equal(t, s.Checksum(), s.Checksum())
}

func TestSynchronizeIdempotent(t *testing.T) {
	remote := []*CachedPath{
		NewCachedPath(world.Position{X: 0}, world.Position{X: 1000}, []world.Position{{X: 0}, {X: 1000}}),
		NewCachedPath(world.Position{X: 5}, world.Position{X: 2000}, []world.Position{{X: 5}, {X: 2000}}),
	}

	s := newTestStore(nil)
	assert.Equal(t, 2, s.Synchronize(remote))
	assert.Equal(t, 0, s.Synchronize(remote), "second merge must be a no-op")
	assert.Equal(t, 2, s.Len())
}

func TestSynchronizeKeepsLocalOnConflict(t *testing.T) {
	start := world.Position{X: 0}
	end := world.Position{X: 1000}

	local := NewCachedPath(start, end, []world.Position{{X: 0}, {X: 500}, {X: 1000}})
	conflicting := NewCachedPath(start, end, []world.Position{{X: 0}, {X: 1000}})

	s := newTestStore(nil)
	s.Synchronize([]*CachedPath{local})
	added := s.Synchronize([]*CachedPath{conflicting})

	assert.Equal(t, 0, added)
	assert.Equal(t, uint64(1), s.Stats().Conflicts)

	kept := s.GetPath(start, end, false)
	assert.Len(t, kept.Waypoints, 3, "local content must survive a conflicting merge")
}

func TestSynchronizeSkipsInvalidEntries(t *testing.T) {
	s := newTestStore(nil)
	added := s.Synchronize([]*CachedPath{
		nil,
		{Key: 1, Waypoints: nil},
		{Key: 2, Waypoints: []world.Position{{X: 0}}},
	})
	assert.Equal(t, 0, added)
}

func TestHotCacheEvictsLRU(t *testing.T) {
	gen := &lineGen{}
	s := New(Config{HotCacheSize: 2}, gen, nil)

	s.GetPath(world.Position{X: 0}, world.Position{X: 10000}, true)
	s.GetPath(world.Position{X: 1}, world.Position{X: 20000}, true)
	s.GetPath(world.Position{X: 2}, world.Position{X: 30000}, true)

	st := s.Stats()
	assert.Equal(t, 2, st.HotEntries, "hot cache must stay bounded")
	assert.Equal(t, 3, st.Paths, "authoritative map never evicts")

	// The evicted entry is still served from the authoritative map.
	gen.calls = 0
	s.GetPath(world.Position{X: 0}, world.Position{X: 10000}, true)
	assert.Equal(t, 0, gen.calls)
}

func TestEventsPublishedOnGeneration(t *testing.T) {
	s := newTestStore(&lineGen{})

	p := s.GetPath(world.Position{X: 0}, world.Position{X: 7000}, true)

	select {
	case ev := <-s.Events():
		assert.Equal(t, p.Key, ev.Key)
		// Events are copies; later lookups must not mutate them.
		s.GetPath(world.Position{X: 0}, world.Position{X: 7000}, true)
		assert.Equal(t, int32(0), ev.UseCount)
	default:
		t.Fatal("expected a published event after generation")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	gen := &lineGen{}
	s := newTestStore(gen)
	s.GetPath(world.Position{X: 0}, world.Position{X: 9000}, true)
	s.GetPath(world.Position{X: 5}, world.Position{X: 12000}, true)

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Less(t, snap[0].Key, snap[1].Key, "snapshot must be key-ordered")

	restored := newTestStore(gen)
	restored.Restore(snap)
	assert.Equal(t, s.Checksum(), restored.Checksum())
}

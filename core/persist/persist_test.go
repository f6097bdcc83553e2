package persist

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"path-cache/core/store"
	"path-cache/core/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePaths() []*store.CachedPath {
	a := store.NewCachedPath(
		world.Position{X: 0, Y: 0, Z: 0},
		world.Position{X: 2000, Y: 500, Z: 10},
		[]world.Position{{X: 0}, {X: 1000, Y: 250, Z: 5}, {X: 2000, Y: 500, Z: 10}},
	)
	b := store.NewCachedPath(
		world.Position{X: -400000, Y: -400000, Z: 0},
		world.Position{X: 400000, Y: 400000, Z: 0},
		[]world.Position{{X: -400000, Y: -400000}, {X: 0, Y: 0}, {X: 400000, Y: 400000}},
	)
	b.UseCount = 7
	return []*store.CachedPath{a, b}
}

func assertPathsEqual(t *testing.T, want, got []*store.CachedPath) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Key, got[i].Key)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].UseCount, got[i].UseCount)
		require.Len(t, got[i].Waypoints, len(want[i].Waypoints))
		for j := range want[i].Waypoints {
			w, g := want[i].Waypoints[j], got[i].Waypoints[j]
			// float32 storage, so compare within the positional tolerance
			assert.InDelta(t, w.X, g.X, world.Tolerance)
			assert.InDelta(t, w.Y, g.Y, world.Tolerance)
			assert.InDelta(t, w.Z, g.Z, world.Tolerance)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	paths := samplePaths()

	require.NoError(t, Save(dir, &Snapshot{Paths: paths}))

	snap, err := Load(dir)
	require.NoError(t, err)
	assertPathsEqual(t, paths, snap.Paths)
}

func TestLoadMissingDirYieldsEmptySnapshot(t *testing.T) {
	snap, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, snap.Paths)
}

func TestLoadCorruptBinaryFallsBackToJSON(t *testing.T) {
	dir := t.TempDir()
	paths := samplePaths()
	require.NoError(t, Save(dir, &Snapshot{Paths: paths}))

	// Truncate the binary file mid-entry.
	binPath := filepath.Join(dir, BinaryFile)
	data, err := os.ReadFile(binPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(binPath, data[:len(data)/2], 0o644))

	snap, err := Load(dir)
	require.NoError(t, err)
	assertPathsEqual(t, paths, snap.Paths)
}

func TestLoadVersionMismatchFallsBackToJSON(t *testing.T) {
	dir := t.TempDir()
	paths := samplePaths()
	require.NoError(t, Save(dir, &Snapshot{Paths: paths}))

	// Rewrite the version tag only.
	binPath := filepath.Join(dir, BinaryFile)
	data, err := os.ReadFile(binPath)
	require.NoError(t, err)
	binary.LittleEndian.PutUint32(data[0:], 99)
	require.NoError(t, os.WriteFile(binPath, data, 0o644))

	snap, err := Load(dir)
	require.NoError(t, err)
	assertPathsEqual(t, paths, snap.Paths)
}

func TestLoadCorruptBinaryWithoutFallbackErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BinaryFile), []byte{1, 2, 3}, 0o644))

	snap, err := Load(dir)
	assert.Error(t, err)
	assert.Empty(t, snap.Paths)
}

func TestSaveWritesBothFormats(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, &Snapshot{Paths: samplePaths()}))

	_, err := os.Stat(filepath.Join(dir, BinaryFile))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, JSONFile))
	assert.NoError(t, err)
}

func TestSectorsSurviveJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	idx := world.NewIndex(world.Config{Size: 100, SectorSize: 10})
	require.NoError(t, Save(dir, &Snapshot{Paths: samplePaths(), Sectors: idx.Sectors()}))

	// Force the JSON route to observe the sector list.
	require.NoError(t, os.Remove(filepath.Join(dir, BinaryFile)))

	snap, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, snap.Sectors, idx.Count())
	assert.Equal(t, idx.Sector(0).Neighbors, snap.Sectors[0].Neighbors)
}
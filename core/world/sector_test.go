package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *Index {
	return NewIndex(Config{Size: 800000, SectorSize: 10000})
}

func TestNewIndexGrid(t *testing.T) {
	idx := testIndex()
	assert.Equal(t, 80, idx.PerAxis())
	assert.Equal(t, 6400, idx.Count())

	// Corner sector has exactly two neighbors, interior sectors four.
	assert.Len(t, idx.Neighbors(0), 2)
	assert.Len(t, idx.Neighbors(idx.Count()-1), 2)
	mid := idx.SectorAt(Position{X: 0, Y: 0})
	assert.Len(t, idx.Neighbors(mid), 4)
}

func TestSectorAt(t *testing.T) {
	idx := testIndex()

	// Origin falls in the sector just past the grid midpoint.
	id := idx.SectorAt(Position{X: 0, Y: 0})
	s := idx.Sector(id)
	assert.Equal(t, 40, s.GX)
	assert.Equal(t, 40, s.GY)

	// Two points inside the same sector map to the same id.
	assert.Equal(t,
		idx.SectorAt(Position{X: 0, Y: 0}),
		idx.SectorAt(Position{X: 2000, Y: 0}),
	)

	// Extreme corners.
	assert.Equal(t, 0, idx.SectorAt(Position{X: -400000, Y: -400000}))
	assert.Equal(t, idx.Count()-1, idx.SectorAt(Position{X: 399999, Y: 399999}))
}

func TestSectorAtClampsOutOfBounds(t *testing.T) {
	idx := testIndex()

	assert.Equal(t, 0, idx.SectorAt(Position{X: -1e9, Y: -1e9}))
	assert.Equal(t, idx.Count()-1, idx.SectorAt(Position{X: 1e9, Y: 1e9}))

	// Clamped on one axis only.
	s := idx.Sector(idx.SectorAt(Position{X: 1e9, Y: 0}))
	assert.Equal(t, 79, s.GX)
	assert.Equal(t, 40, s.GY)
}

func TestSectorCenters(t *testing.T) {
	idx := testIndex()
	s := idx.Sector(0)
	assert.InDelta(t, -395000, s.Center.X, 1e-9)
	assert.InDelta(t, -395000, s.Center.Y, 1e-9)

	// The center maps back to its own sector.
	assert.Equal(t, s.ID, idx.SectorAt(s.Center))
}

func TestNeighborsAreAdjacent(t *testing.T) {
	idx := testIndex()
	id := idx.SectorAt(Position{X: 0, Y: 0})
	s := idx.Sector(id)

	for _, nid := range idx.Neighbors(id) {
		n := idx.Sector(nid)
		manhattan := abs(n.GX-s.GX) + abs(n.GY-s.GY)
		assert.Equal(t, 1, manhattan, "neighbor %d is not adjacent to %d", nid, id)
	}
}

func TestExitPoint(t *testing.T) {
	idx := testIndex()
	from := idx.SectorAt(Position{X: 5000, Y: 5000})
	dest := Position{X: 350000, Y: 7000, Z: 12}

	// Right neighbor: exit sits on the shared vertical edge, pulled toward dest.
	to := from + 1
	exit := idx.ExitPoint(from, to, dest)
	assert.InDelta(t, 10000, exit.X, 1e-9)
	assert.InDelta(t, 7000, exit.Y, 1e-9)
	assert.InDelta(t, 12, exit.Z, 1e-9)

	// The edge point lies in one of the two sectors it separates.
	require.Contains(t, []int{from, to}, idx.SectorAt(exit))

	// The edge coordinate is clamped to the sector's extent.
	far := Position{X: 350000, Y: 90000}
	exit = idx.ExitPoint(from, to, far)
	assert.InDelta(t, 10000, exit.Y, 1e-9)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package paths_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"path-cache/core/nav"
	"path-cache/core/store"
	"path-cache/core/world"
	"path-cache/feature/paths"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type lineGen struct{}

func (lineGen) Route(start, end world.Position) []world.Position {
	return nav.Interpolate(start, end, 1000)
}

func setupApp(t *testing.T) (*fiber.App, *store.Store, string) {
	t.Helper()

	dataDir := t.TempDir()
	st := store.New(store.Config{}, lineGen{}, zap.NewNop())
	index := world.NewIndex(world.Config{})

	feature := paths.NewFeature(st, index, nil, dataDir, "path_locations", zap.NewNop())
	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	return app, st, dataDir
}

func TestHandleResolve(t *testing.T) {
	app, _, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/paths/resolve?start_x=100&start_y=200&end_x=5000&end_y=6000", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var p store.CachedPath
	assert.NoError(t, json.Unmarshal(body, &p))
	assert.GreaterOrEqual(t, len(p.Waypoints), 2)
	assert.InDelta(t, 100, p.Waypoints[0].X, world.Tolerance)
	// The search may stop within the proximity threshold of the goal.
	last := p.Waypoints[len(p.Waypoints)-1]
	assert.LessOrEqual(t, last.Distance2D(world.Position{X: 5000, Y: 6000}), 100.0)
}

func TestHandleResolveDeterministic(t *testing.T) {
	app, _, _ := setupApp(t)

	var keys []uint64
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/paths/resolve?start_x=-300&start_y=40&end_x=900&end_y=-1200", nil)
		resp, err := app.Test(req, 2000)
		assert.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		var p store.CachedPath
		assert.NoError(t, json.Unmarshal(body, &p))
		keys = append(keys, uint64(p.Key))
	}
	assert.Equal(t, keys[0], keys[1])
}

func TestHandleResolveNoGeneration(t *testing.T) {
	app, st, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/paths/resolve?start_x=0&start_y=0&end_x=7000&end_y=0&generate=false", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The interpolated fallback never enters the authoritative map.
	assert.Equal(t, 0, st.Len())
}

func TestHandlePreBake(t *testing.T) {
	app, st, _ := setupApp(t)

	body := `{"locations":[
		{"name":"harbor","pos":{"x":100,"y":100,"z":0}},
		{"name":"keep","pos":{"x":9000,"y":9000,"z":0}},
		{"name":"mill","pos":{"x":-4000,"y":2000,"z":0}}
	]}`
	req := httptest.NewRequest("POST", "/paths/prebake", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	var result map[string]int
	assert.NoError(t, json.Unmarshal(respBody, &result))
	assert.Equal(t, 6, result["inserted"])
	assert.Equal(t, 6, st.Len())
}

func TestHandlePreBakeNoSource(t *testing.T) {
	app, _, _ := setupApp(t)

	req := httptest.NewRequest("POST", "/paths/prebake", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleStats(t *testing.T) {
	app, _, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/paths/resolve?start_x=0&start_y=0&end_x=100&end_y=100", nil)
	_, err := app.Test(req, 2000)
	assert.NoError(t, err)

	req = httptest.NewRequest("GET", "/paths/stats", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var stats store.Stats
	assert.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 1, stats.Paths)
	assert.Equal(t, uint64(1), stats.Generated)
}

func TestHandleSave(t *testing.T) {
	app, _, dataDir := setupApp(t)

	req := httptest.NewRequest("GET", "/paths/resolve?start_x=0&start_y=0&end_x=100&end_y=100", nil)
	_, err := app.Test(req, 2000)
	assert.NoError(t, err)

	req = httptest.NewRequest("POST", "/paths/save", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, err = os.Stat(filepath.Join(dataDir, "paths.bin"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dataDir, "paths.json"))
	assert.NoError(t, err)
}

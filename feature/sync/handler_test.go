package sync_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"path-cache/core/store"
	"path-cache/core/world"
	syncfeature "path-cache/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, st *store.Store) *fiber.App {
	t.Helper()

	feature := syncfeature.NewFeature(st, nil, storageCfg(), "node-a", zap.NewNop())
	app := fiber.New()
	assert.NoError(t, feature.Load(app))
	return app
}

func TestHandleChecksum(t *testing.T) {
	st := newStore()
	seed(st, [2]world.Position{{X: 0, Y: 0}, {X: 5000, Y: 0}})
	app := setupApp(t, st)

	req := httptest.NewRequest("GET", "/sync/checksum", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var cs syncfeature.ChecksumResponse
	assert.NoError(t, json.Unmarshal(body, &cs))
	assert.Equal(t, "node-a", cs.Node)
	assert.Equal(t, 1, cs.Paths)
	assert.NotEmpty(t, cs.Checksum)
}

func TestHandleListAndMerge(t *testing.T) {
	source := newStore()
	seed(source,
		[2]world.Position{{X: 0, Y: 0}, {X: 5000, Y: 0}},
		[2]world.Position{{X: 100, Y: 200}, {X: -3000, Y: 4000}},
	)
	sourceApp := setupApp(t, source)

	req := httptest.NewRequest("GET", "/sync/paths", nil)
	resp, err := sourceApp.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	listBody, _ := io.ReadAll(resp.Body)
	var paths []*store.CachedPath
	assert.NoError(t, json.Unmarshal(listBody, &paths))
	assert.Len(t, paths, 2)

	target := newStore()
	targetApp := setupApp(t, target)

	mergeBody, err := json.Marshal(syncfeature.MergeRequest{Node: "node-a", Paths: paths})
	assert.NoError(t, err)

	req = httptest.NewRequest("POST", "/sync/paths", bytes.NewReader(mergeBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = targetApp.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	var result map[string]int
	assert.NoError(t, json.Unmarshal(respBody, &result))
	assert.Equal(t, 2, result["added"])
	assert.Equal(t, 2, target.Len())
}

func TestHandleMergeBadBody(t *testing.T) {
	app := setupApp(t, newStore())

	req := httptest.NewRequest("POST", "/sync/paths", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSnapshotWithoutStorage(t *testing.T) {
	app := setupApp(t, newStore())

	req := httptest.NewRequest("POST", "/sync/snapshot/push", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

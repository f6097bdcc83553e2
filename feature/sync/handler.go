package sync

import (
	"path-cache/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for peer synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Get("/checksum", h.HandleChecksum)
	group.Get("/paths", h.HandleListPaths)
	group.Post("/paths", h.HandleMergePaths)
	group.Post("/snapshot/push", h.HandlePushSnapshot)
	group.Post("/snapshot/pull", h.HandlePullSnapshot)
}

// HandleChecksum reports this node's cache digest.
// @Summary Cache checksum
// @Description Get the order-independent checksum over this node's cached path keys.
// @Tags sync
// @Produce json
// @Success 200 {object} ChecksumResponse "Checksum"
// @Router /sync/checksum [get]
func (h *Handler) HandleChecksum(c *fiber.Ctx) error {
	return c.JSON(h.service.Checksum())
}

// HandleListPaths returns all cached paths.
// @Summary List cached paths
// @Description Get every cached path sorted by key, for full synchronization.
// @Tags sync
// @Produce json
// @Success 200 {array} store.CachedPath "Cached paths"
// @Router /sync/paths [get]
func (h *Handler) HandleListPaths(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// HandleMergePaths merges a remote path batch into the local cache.
// @Summary Merge remote paths
// @Description Insert remote paths whose keys are absent locally. Conflicting keys keep the local entry.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body MergeRequest true "Paths to merge"
// @Success 200 {object} map[string]int "Number of paths added"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /sync/paths [post]
func (h *Handler) HandleMergePaths(c *fiber.Ctx) error {
	var req MergeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	added := h.service.Merge(req)
	return c.JSON(fiber.Map{"added": added})
}

// HandlePushSnapshot publishes the cache to object storage.
// @Summary Publish snapshot
// @Description Upload the full cache as a binary snapshot object.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]string "OK"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/snapshot/push [post]
func (h *Handler) HandlePushSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.PushSnapshot(c.Context()); err != nil {
		l.Error("Snapshot push failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "pushed"})
}

// HandlePullSnapshot restores the published snapshot into the cache.
// @Summary Pull snapshot
// @Description Download the published snapshot and merge it into the local cache.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]int "Number of paths added"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/snapshot/pull [post]
func (h *Handler) HandlePullSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	added, err := h.service.PullSnapshot(c.Context())
	if err != nil {
		l.Error("Snapshot pull failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"added": added})
}

package paths

import (
	"path-cache/core/logger"
	"path-cache/core/store"
	"path-cache/core/world"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for path resolution.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the paths routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/paths")
	group.Get("/resolve", h.HandleResolve)
	group.Post("/prebake", h.HandlePreBake)
	group.Get("/stats", h.HandleStats)
	group.Post("/save", h.HandleSave)
}

type resolveQuery struct {
	StartX float64 `query:"start_x"`
	StartY float64 `query:"start_y"`
	StartZ float64 `query:"start_z"`
	EndX   float64 `query:"end_x"`
	EndY   float64 `query:"end_y"`
	EndZ   float64 `query:"end_z"`
	// Generate permits on-demand generation on a total miss. Defaults to true.
	Generate *bool `query:"generate"`
}

type prebakeRequest struct {
	Locations []store.Location `json:"locations"`
}

// HandleResolve resolves a route between two world positions.
// @Summary Resolve a path
// @Description Resolve a route between two positions. Never fails; a total miss produces a generated or interpolated path.
// @Tags paths
// @Produce json
// @Param start_x query number true "Start X"
// @Param start_y query number true "Start Y"
// @Param start_z query number false "Start Z"
// @Param end_x query number true "End X"
// @Param end_y query number true "End Y"
// @Param end_z query number false "End Z"
// @Param generate query boolean false "Allow on-demand generation (default true)"
// @Success 200 {object} store.CachedPath "Resolved path"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /paths/resolve [get]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	var q resolveQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	generate := true
	if q.Generate != nil {
		generate = *q.Generate
	}

	start := world.Position{X: q.StartX, Y: q.StartY, Z: q.StartZ}
	end := world.Position{X: q.EndX, Y: q.EndY, Z: q.EndZ}

	p := h.service.Resolve(start, end, generate)
	return c.JSON(p)
}

// HandlePreBake warms the cache for known location pairs.
// @Summary Pre-bake paths
// @Description Generate and cache routes for every ordered pair of the given locations. With an empty body the configured database table is used.
// @Tags paths
// @Accept json
// @Produce json
// @Param request body prebakeRequest false "Locations to pre-bake"
// @Success 200 {object} map[string]int "Number of paths inserted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /paths/prebake [post]
func (h *Handler) HandlePreBake(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req prebakeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	inserted, err := h.service.PreBake(c.Context(), req.Locations)
	if err != nil {
		l.Error("Pre-bake failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"inserted": inserted})
}

// HandleStats returns the store counters.
// @Summary Store statistics
// @Description Get cache hit, generation and sync counters.
// @Tags paths
// @Produce json
// @Success 200 {object} store.Stats "Store statistics"
// @Router /paths/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// HandleSave persists the cache to disk.
// @Summary Save the cache
// @Description Write the current cache to the data directory in binary and JSON form.
// @Tags paths
// @Produce json
// @Success 200 {object} map[string]string "OK"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /paths/save [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Save(); err != nil {
		l.Error("Save failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "saved"})
}

package paths

import (
	"path-cache/core/store"
	"path-cache/core/world"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Paths feature.
func NewFeature(st *store.Store, index *world.Index, db *gorm.DB, dataDir, locationsTable string, logger *zap.Logger) *Feature {
	svc := NewService(st, index, db, dataDir, locationsTable, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "paths"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

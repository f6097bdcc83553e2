package paths

import (
	"context"
	"fmt"

	"path-cache/core/database"
	"path-cache/core/persist"
	"path-cache/core/store"
	"path-cache/core/world"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles path resolution, pre-baking and persistence.
type Service struct {
	store          *store.Store
	index          *world.Index
	db             *gorm.DB
	dataDir        string
	locationsTable string
	logger         *zap.Logger
}

// NewService creates a new paths service. db may be nil when no locations
// database is configured; pre-bake then requires locations in the request.
func NewService(st *store.Store, index *world.Index, db *gorm.DB, dataDir, locationsTable string, logger *zap.Logger) *Service {
	return &Service{
		store:          st,
		index:          index,
		db:             db,
		dataDir:        dataDir,
		locationsTable: locationsTable,
		logger:         logger,
	}
}

// Resolve returns a route between the two positions. It always returns a
// usable path.
func (s *Service) Resolve(start, end world.Position, allowGeneration bool) *store.CachedPath {
	return s.store.GetPath(start, end, allowGeneration)
}

// PreBake warms the cache for every ordered pair of the given locations.
// When the list is empty the configured database table is used instead.
func (s *Service) PreBake(ctx context.Context, locations []store.Location) (int, error) {
	if len(locations) == 0 {
		if s.db == nil {
			return 0, fmt.Errorf("no locations given and no database configured")
		}
		var err error
		locations, err = database.Locations(ctx, s.db, s.locationsTable)
		if err != nil {
			return 0, err
		}
	}
	return s.store.PreBake(ctx, locations)
}

// Stats returns the store counters.
func (s *Service) Stats() store.Stats {
	return s.store.Stats()
}

// Save writes the current cache to the data directory in both snapshot
// formats.
func (s *Service) Save() error {
	snap := &persist.Snapshot{
		Paths:   s.store.Snapshot(),
		Sectors: s.index.Sectors(),
	}
	if err := persist.Save(s.dataDir, snap); err != nil {
		return err
	}
	s.logger.Info("Cache saved", zap.Int("paths", len(snap.Paths)), zap.String("dir", s.dataDir))
	return nil
}

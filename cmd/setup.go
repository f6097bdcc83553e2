package cmd

import (
	"fmt"

	"path-cache/core/config"
	"path-cache/core/logger"
	"path-cache/core/nav"
	"path-cache/core/persist"
	"path-cache/core/store"
	"path-cache/core/world"

	"go.uber.org/zap"
)

// openStore builds the pathfinding pipeline from configuration and loads the
// persisted cache. Offline commands share this instead of repeating the
// start sequence.
func openStore() (*config.Config, *zap.Logger, *store.Store, *world.Index, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	index := world.NewIndex(cfg.World)
	planner := nav.NewPlanner(cfg.Nav, index, nav.OpenTerrain{})
	st := store.New(cfg.Store, planner, logg)

	snap, err := persist.Load(cfg.Store.DataDir)
	if err != nil {
		logg.Warn("Cache load failed, starting empty", zap.Error(err))
	} else if len(snap.Paths) > 0 {
		st.Restore(snap.Paths)
	}

	return cfg, logg, st, index, nil
}

// saveStore persists the cache back to the data directory.
func saveStore(cfg *config.Config, st *store.Store, index *world.Index) error {
	snap := &persist.Snapshot{Paths: st.Snapshot(), Sectors: index.Sectors()}
	if err := persist.Save(cfg.Store.DataDir, snap); err != nil {
		return fmt.Errorf("failed to save cache: %w", err)
	}
	return nil
}

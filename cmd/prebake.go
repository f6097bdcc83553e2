package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"path-cache/core/database"
	"path-cache/core/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var locationsFile string

// prebakeCmd represents the prebake command
var prebakeCmd = &cobra.Command{
	Use:   "prebake",
	Short: "Pre-generate paths between known locations",
	Long: `Generates and caches a route for every ordered pair of known locations.
Locations come from the configured database table, or from a JSON file given
with --locations. The warmed cache is persisted to the data directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, logg, st, index, err := openStore()
		if err != nil {
			return err
		}

		var locations []store.Location
		if locationsFile != "" {
			data, err := os.ReadFile(locationsFile)
			if err != nil {
				return fmt.Errorf("failed to read locations file: %w", err)
			}
			if err := json.Unmarshal(data, &locations); err != nil {
				return fmt.Errorf("failed to parse locations file: %w", err)
			}
		} else {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("database connection required without --locations: %w", err)
			}
			locations, err = database.Locations(ctx, db, cfg.Database.LocationsTable)
			if err != nil {
				return err
			}
		}

		logg.Info("Pre-baking paths (this might take a while)...",
			zap.Int("locations", len(locations)),
		)

		inserted, err := st.PreBake(ctx, locations)
		if err != nil {
			return fmt.Errorf("pre-bake failed: %w", err)
		}

		if err := saveStore(cfg, st, index); err != nil {
			return err
		}

		logg.Info("Pre-bake finished",
			zap.Int("inserted", inserted),
			zap.Int("total_paths", st.Len()),
			zap.Duration("took", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	prebakeCmd.Flags().StringVar(&locationsFile, "locations", "", "JSON file with locations instead of the database")
	RootCmd.AddCommand(prebakeCmd)
}

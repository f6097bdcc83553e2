package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"path-cache/core/config"
	"path-cache/core/database"
	"path-cache/core/loader"
	"path-cache/core/logger"
	"path-cache/core/middleware/auth"
	"path-cache/core/middleware/rayid"
	"path-cache/core/nav"
	"path-cache/core/persist"
	"path-cache/core/storage"
	"path-cache/core/store"
	"path-cache/core/world"
	"path-cache/feature/paths"
	syncfeature "path-cache/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "path-cache/docs/swagger"
)

// @title Path Cache API
// @version 1.0
// @description Deterministic path cache for large game worlds.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the path cache server",
	Long:  `Starts the HTTP server, loads the persisted cache and begins peer synchronization.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		logg = logg.With(zap.String("node", cfg.Server.NodeName))

		// 3. Build the pathfinding pipeline
		index := world.NewIndex(cfg.World)
		planner := nav.NewPlanner(cfg.Nav, index, nav.OpenTerrain{})
		st := store.New(cfg.Store, planner, logg)

		// 4. Load the persisted cache
		snap, err := persist.Load(cfg.Store.DataDir)
		if err != nil {
			logg.Warn("Cache load failed, starting empty", zap.Error(err))
		} else if len(snap.Paths) > 0 {
			st.Restore(snap.Paths)
			logg.Info("Cache loaded", zap.Int("paths", st.Len()))
		}

		// 5. Connect to Database (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to locations database")
		}

		// 6. Initialize Storage (Optional)
		var client storage.Client
		if c, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed, snapshot exchange disabled", zap.Error(err))
		} else {
			client = c
		}

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(paths.NewFeature(st, index, db, cfg.Store.DataDir, cfg.Database.LocationsTable, logg))
		mgr.Register(syncfeature.NewFeature(st, client, cfg.Storage, cfg.Server.NodeName, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start peer synchronization
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		peer := syncfeature.NewPeer(cfg.Sync, st, cfg.Server.NodeName, cfg.Server.ApiKey, logg)
		if peer.Enabled() {
			go peer.Run(ctx)
		}

		// 11. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 12. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()

		// Persist the cache so generated paths survive the restart.
		final := &persist.Snapshot{Paths: st.Snapshot(), Sectors: index.Sectors()}
		if err := persist.Save(cfg.Store.DataDir, final); err != nil {
			logg.Error("Final cache save failed", zap.Error(err))
		} else {
			logg.Info("Cache saved", zap.Int("paths", len(final.Paths)))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

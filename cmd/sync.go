package cmd

import (
	"fmt"

	"path-cache/core/storage"
	syncfeature "path-cache/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the cache with peers or object storage",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// syncNowCmd represents the sync now command
var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Reconcile once with the configured peers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, st, index, err := openStore()
		if err != nil {
			return err
		}

		peer := syncfeature.NewPeer(cfg.Sync, st, cfg.Server.NodeName, cfg.Server.ApiKey, logg)
		if !peer.Enabled() {
			return fmt.Errorf("no peers configured (SYNC_PEERS)")
		}

		before := st.Len()
		peer.Reconcile(cmd.Context())
		logg.Info("Reconciliation finished",
			zap.Int("before", before),
			zap.Int("after", st.Len()),
		)

		return saveStore(cfg, st, index)
	},
}

// syncPushCmd represents the sync push command
var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Publish the cache snapshot to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, st, _, err := openStore()
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := syncfeature.NewService(st, client, cfg.Storage, cfg.Server.NodeName, logg)
		return svc.PushSnapshot(cmd.Context())
	},
}

// syncPullCmd represents the sync pull command
var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Merge the published snapshot from object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, st, index, err := openStore()
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := syncfeature.NewService(st, client, cfg.Storage, cfg.Server.NodeName, logg)
		added, err := svc.PullSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		logg.Info("Snapshot merged", zap.Int("added", added))

		return saveStore(cfg, st, index)
	},
}

func init() {
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	RootCmd.AddCommand(syncCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"path-cache/core/world"

	"github.com/spf13/cobra"
)

var jsonFlag bool

// pathsCmd represents the paths command
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Inspect the persisted path cache",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// pathsStatsCmd represents the paths stats command
var pathsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, st, _, err := openStore()
		if err != nil {
			return err
		}

		stats := st.Stats()
		if jsonFlag {
			return json.NewEncoder(os.Stdout).Encode(stats)
		}

		fmt.Printf("Paths:     %d\n", stats.Paths)
		fmt.Printf("Checksum:  %s\n", st.Checksum())
		return nil
	},
}

// pathsChecksumCmd represents the paths checksum command
var pathsChecksumCmd = &cobra.Command{
	Use:   "checksum",
	Short: "Print the cache checksum",
	Long:  `Prints the order-independent checksum over the cached path keys. Two converged nodes print the same value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, st, _, err := openStore()
		if err != nil {
			return err
		}
		fmt.Println(st.Checksum())
		return nil
	},
}

// pathsResolveCmd represents the paths resolve command
var pathsResolveCmd = &cobra.Command{
	Use:   "resolve <start_x> <start_y> <end_x> <end_y>",
	Short: "Resolve a route between two positions",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords := make([]float64, 4)
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("invalid coordinate %q: %w", a, err)
			}
			coords[i] = v
		}

		cfg, _, st, index, err := openStore()
		if err != nil {
			return err
		}

		start := world.Position{X: coords[0], Y: coords[1]}
		end := world.Position{X: coords[2], Y: coords[3]}
		p := st.GetPath(start, end, true)

		if err := saveStore(cfg, st, index); err != nil {
			return err
		}

		if jsonFlag {
			return json.NewEncoder(os.Stdout).Encode(p)
		}

		fmt.Printf("Path %s: %d waypoints, distance %.1f\n", p.Name, len(p.Waypoints), p.Distance)
		for i, w := range p.Waypoints {
			fmt.Printf("  %3d: (%.1f, %.1f, %.1f)\n", i, w.X, w.Y, w.Z)
		}
		return nil
	},
}

// pathsExportCmd represents the paths export command
var pathsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every cached path as JSON to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, st, _, err := openStore()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st.Snapshot())
	},
}

func init() {
	pathsCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output as JSON")
	pathsCmd.AddCommand(pathsStatsCmd)
	pathsCmd.AddCommand(pathsChecksumCmd)
	pathsCmd.AddCommand(pathsResolveCmd)
	pathsCmd.AddCommand(pathsExportCmd)
	RootCmd.AddCommand(pathsCmd)
}

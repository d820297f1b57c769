package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FransDroid/sentiment-analysis-project/internal/config"
	"github.com/FransDroid/sentiment-analysis-project/internal/snapshot"
)

var flagPruneOlderThan string

const defaultRetention = 7 * 24 * time.Hour

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove stale panel snapshots from the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := snapshot.Open(config.SnapshotPath())
		if err != nil {
			return fmt.Errorf("opening snapshot store: %w", err)
		}
		defer store.Close()

		retention := defaultRetention
		if flagPruneOlderThan != "" {
			d, err := time.ParseDuration(flagPruneOlderThan)
			if err != nil {
				return fmt.Errorf("invalid --older-than value: %w", err)
			}
			retention = d
		}

		deleted, err := store.Prune(retention)
		if err != nil {
			return fmt.Errorf("pruning: %w", err)
		}

		if deleted == 0 {
			fmt.Println("Nothing to prune.")
		} else {
			fmt.Printf("Pruned %d snapshot(s) older than %s.\n", deleted, formatDuration(retention))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snapshot store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.SnapshotPath()
		store, err := snapshot.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening snapshot store: %w", err)
		}
		defer store.Close()

		count, size, err := store.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Store: %s\n", dbPath)
		fmt.Printf("Snapshots: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))
		return nil
	},
}

func init() {
	pruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "", "override retention period (e.g., 48h)")
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

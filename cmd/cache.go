package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/scipunch/newswire/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the persisted cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show persisted cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats()
		if err != nil {
			return fmt.Errorf("failed to read cache stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "entries:  %d\n", stats.Entries)
		fmt.Fprintf(out, "articles: %d\n", stats.Articles)
		if !stats.OldestEntry.IsZero() {
			fmt.Fprintf(out, "oldest:   %s\n", stats.OldestEntry.Format(time.RFC3339))
			fmt.Fprintf(out, "newest:   %s\n", stats.NewestEntry.Format(time.RFC3339))
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return err
		}
		slog.Info("cache cleared successfully")
		return nil
	},
}

func openStore() (*cache.SQLiteStore, error) {
	if cfg.Cache.DatabasePath == "" {
		return nil, errors.New("cache persistence is disabled (cache.database_path is empty)")
	}
	return cache.NewSQLiteStore(cfg.Cache.DatabasePath)
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

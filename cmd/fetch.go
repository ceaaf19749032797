package cmd

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scipunch/newswire/cache"
)

var (
	fetchType     string
	fetchCategory string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Aggregate one type or category and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		feeds := a.catalog.Resolve(fetchType, fetchCategory)
		articles := a.aggregator.Aggregate(cmd.Context(), feeds)
		a.cache.Put(cache.Key(fetchType, fetchCategory), articles)
		slog.Info("fetch complete", "sources", len(feeds), "articles", len(articles))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(articles)
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchType, "type", "news", "feed type: news, opinions, videos or podcasts")
	fetchCmd.Flags().StringVar(&fetchCategory, "category", "", "category filter, e.g. sports or technology")
	rootCmd.AddCommand(fetchCmd)
}

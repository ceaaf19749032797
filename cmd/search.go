package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <term>...",
	Short: "Search cached and freshly fetched articles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.engine.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		results := res.Articles
		if searchLimit > 0 && len(results) > searchLimit {
			results = results[:searchLimit]
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "print at most this many results (0 = all)")
	rootCmd.AddCommand(searchCmd)
}

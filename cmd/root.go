// Package cmd contains the newswire CLI commands
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scipunch/newswire/config"
)

var (
	cfgPath   string
	debug     bool
	logFormat string
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "newswire",
	Short: "RSS aggregation, caching and search service",
	Long: `newswire fetches many RSS feeds per category, normalizes and filters their
items, caches the results and serves them over HTTP with a ranked search.

Example usage:
  newswire serve                          # Start the HTTP API
  newswire fetch --category sports        # Print one category as JSON
  newswire search "world series"          # Search across every category
  newswire cache stats                    # Show the persisted cache`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(os.Stderr, logFormat, debug || os.Getenv("DEBUG") != "")
		if err != nil {
			return err
		}
		slog.SetDefault(logger)

		cfg, err = loadConfig(cfgPath)
		return err
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML config (default is $XDG_CONFIG_HOME/newswire/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}

func newLogger(w io.Writer, format string, debug bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}

	switch format {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// loadConfig reads the config and writes the defaults out when the default
// config file does not exist yet
func loadConfig(path string) (config.Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, fmt.Errorf("%w, pass --config", err)
		}
	}

	conf, err := config.Read(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		if err := config.Write(path, conf); err != nil {
			return conf, fmt.Errorf("failed to write default config with %w", err)
		}
	} else if err != nil {
		return conf, fmt.Errorf("failed to read config with %w", err)
	}

	conf.ApplyEnv()
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("invalid config at %s: %w", path, err)
	}
	return conf, nil
}

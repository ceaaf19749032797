package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/scipunch/newswire/fetcher/types"
)

const baseCfgPath = "newswire/config.toml"

// Search refresh policies
const (
	RefreshAlways    = "always"
	RefreshWhenEmpty = "when_empty"
)

type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Fetch  FetchConfig  `toml:"fetch"`
	Search SearchConfig `toml:"search"`
	Filter Filter       `toml:"filter"`
	// Feeds overrides the built-in catalog per category
	Feeds map[string][]types.FeedSource `toml:"feeds"`
}

type ServerConfig struct {
	Address      string   `toml:"address"`
	Route        string   `toml:"route"`
	Environment  string   `toml:"environment"` // "production" hides error details
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

type CacheConfig struct {
	TTL          Duration `toml:"ttl"`
	DatabasePath string   `toml:"database_path"` // empty disables the sqlite snapshot
}

type FetchConfig struct {
	Timeout         Duration `toml:"timeout"`
	UserAgent       string   `toml:"user_agent"`
	MaxConcurrency  int      `toml:"max_concurrency"` // 0 = unbounded
	DisplayTimezone string   `toml:"display_timezone"`
}

type SearchConfig struct {
	CategoryTimeout    Duration       `toml:"category_timeout"`
	Refresh            string         `toml:"refresh"`
	SourcesPerCategory map[string]int `toml:"sources_per_category"`
	DefaultSources     int            `toml:"default_sources"`
	MaxTermLength      int            `toml:"max_term_length"`
}

// Filter defines rules for rejecting feed items
type Filter struct {
	ExcludeDomains     []string `toml:"exclude_domains"`      // case-insensitive substrings of the link
	ExcludeKeywords    []string `toml:"exclude_keywords"`     // case-insensitive substrings of title/description
	MinTitleLength     int      `toml:"min_title_length"`     // 0 = no limit
	ExcludeURLPatterns []string `toml:"exclude_url_patterns"` // regexes, matched case-insensitively
}

// Duration is a time.Duration that reads and writes as "30s" in TOML
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Read(path string) (Config, error) {
	conf := Default()
	dat, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	_, err = toml.Decode(string(dat), &conf)
	if err != nil {
		return conf, fmt.Errorf("failed to decode config at %s with %w", path, err)
	}
	return conf, nil
}

func Write(cfgPath string, cfg Config) error {
	blob, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config with %w", err)
	}
	basePath := path.Dir(cfgPath)
	err = os.MkdirAll(basePath, os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create base config directory at '%s' with %w", basePath, err)
	}
	err = os.WriteFile(cfgPath, blob, 0644)
	if err != nil {
		return fmt.Errorf("failed to write into config file at '%s' with %w", cfgPath, err)
	}
	slog.Info("config written", "at", cfgPath)
	return nil
}

func Default() Config {
	var dbBase = path.Join(os.Getenv("HOME"), ".local/share/newswire")
	return Config{
		Server: ServerConfig{
			Address:      ":8888",
			Route:        "/api/rss-aggregator",
			Environment:  "development",
			ReadTimeout:  Duration{15 * time.Second},
			WriteTimeout: Duration{60 * time.Second},
		},
		Cache: CacheConfig{
			TTL:          Duration{5 * time.Minute},
			DatabasePath: path.Join(dbBase, "cache.db"),
		},
		Fetch: FetchConfig{
			Timeout:         Duration{30 * time.Second},
			UserAgent:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			DisplayTimezone: "UTC",
		},
		Search: SearchConfig{
			CategoryTimeout: Duration{3 * time.Second},
			Refresh:         RefreshAlways,
			SourcesPerCategory: map[string]int{
				"news":          12,
				"sports":        10,
				"tech":          8,
				"business":      6,
				"entertainment": 8,
				"lifestyle":     6,
				"culture":       6,
				"opinions":      5,
				"videos":        5,
				"podcasts":      6,
			},
			DefaultSources: 6,
			MaxTermLength:  200,
		},
		Filter: DefaultFilter(),
	}
}

// DefaultFilter blocks obvious ad and sponsor markers. False negatives are
// preferred over dropping real articles.
func DefaultFilter() Filter {
	return Filter{
		ExcludeDomains:  []string{"example-spam-site.com", "unwanted-domain.com"},
		ExcludeKeywords: []string{"sponsored", "advertisement", "promoted content", "press release"},
		MinTitleLength:  20,
		ExcludeURLPatterns: []string{
			`/ads?/`,
			`/sponsored/`,
			`/promotion/`,
		},
	}
}

// ApplyEnv overrides selected fields from the environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv("NEWSWIRE_ADDRESS"); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv("NEWSWIRE_ENV"); v != "" {
		c.Server.Environment = v
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Cache.TTL.Duration <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}
	if c.Fetch.Timeout.Duration <= 0 {
		errs = append(errs, errors.New("fetch.timeout must be positive"))
	}
	if c.Fetch.MaxConcurrency < 0 {
		errs = append(errs, errors.New("fetch.max_concurrency must not be negative"))
	}
	if c.Search.CategoryTimeout.Duration <= 0 {
		errs = append(errs, errors.New("search.category_timeout must be positive"))
	}
	if c.Search.Refresh != RefreshAlways && c.Search.Refresh != RefreshWhenEmpty {
		errs = append(errs, fmt.Errorf("search.refresh must be %q or %q, got %q", RefreshAlways, RefreshWhenEmpty, c.Search.Refresh))
	}
	if c.Server.Route == "" || c.Server.Route[0] != '/' {
		errs = append(errs, fmt.Errorf("server.route must start with '/', got %q", c.Server.Route))
	}
	if _, err := time.LoadLocation(c.Fetch.DisplayTimezone); err != nil {
		errs = append(errs, fmt.Errorf("fetch.display_timezone: %w", err))
	}
	return errors.Join(errs...)
}

// Location returns the zone publish times are rendered in
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Fetch.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Catalog returns the built-in catalog with configured categories replacing
// their defaults
func (c Config) Catalog() Catalog {
	catalog := DefaultCatalog()
	for category, feeds := range c.Feeds {
		if len(feeds) == 0 {
			continue
		}
		catalog[category] = feeds
	}
	return catalog
}

// DefaultPath locates the config under XDG_CONFIG_HOME or HOME
func DefaultPath() (string, error) {
	var xdgHome = os.Getenv("XDG_CONFIG_HOME")
	if xdgHome != "" {
		return path.Join(xdgHome, baseCfgPath), nil
	}

	var home = os.Getenv("HOME")
	if home != "" {
		return path.Join(home, ".config", baseCfgPath), nil
	}

	return "", errors.New("unclear where to search for the config file: neither XDG_CONFIG_HOME nor HOME is set")
}

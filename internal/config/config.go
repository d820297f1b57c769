package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	BaseURL         string `yaml:"base_url"`
	RefreshInterval string `yaml:"refresh_interval"`
	TrendDays       int    `yaml:"trend_days"`
	SummaryHours    int    `yaml:"summary_hours"`
	TopPostsLimit   int    `yaml:"top_posts_limit"`
	RequestTimeout  string `yaml:"request_timeout"`
	Platform        string `yaml:"platform,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`
}

func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func (c *Config) RequestTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// GetTrendDays returns the trend lookback, defaulting to 7.
func (c *Config) GetTrendDays() int {
	if c.TrendDays <= 0 {
		return 7
	}
	return c.TrendDays
}

// GetSummaryHours returns the summary lookback, defaulting to 24.
func (c *Config) GetSummaryHours() int {
	if c.SummaryHours <= 0 {
		return 24
	}
	return c.SummaryHours
}

// GetTopPostsLimit returns the posts-per-column limit, defaulting to 5.
func (c *Config) GetTopPostsLimit() int {
	if c.TopPostsLimit <= 0 {
		return 5
	}
	return c.TopPostsLimit
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "sentidash", "config.yaml")
}

func SnapshotPath() string {
	return filepath.Join(xdg.CacheHome, "sentidash", "snapshots.db")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "sentidash", "sentidash.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.RefreshInterval != "" {
		if d, err := time.ParseDuration(cfg.RefreshInterval); err != nil || d <= 0 {
			return fmt.Errorf("invalid refresh_interval %q", cfg.RefreshInterval)
		}
	}
	if cfg.RequestTimeout != "" {
		if d, err := time.ParseDuration(cfg.RequestTimeout); err != nil || d <= 0 {
			return fmt.Errorf("invalid request_timeout %q", cfg.RequestTimeout)
		}
	}
	if cfg.TrendDays < 0 {
		return fmt.Errorf("trend_days must be positive, got %d", cfg.TrendDays)
	}
	return nil
}

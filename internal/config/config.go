// Package config loads tool settings from defaults, an optional YAML file,
// and environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all tool settings.
type Config struct {
	// FootprintURL is where the footprint catalog is downloaded from on a
	// cache miss.
	FootprintURL string `yaml:"footprint_url"`
	// CacheDir overrides the default per-user cache directory. Empty selects
	// the platform cache dir.
	CacheDir string `yaml:"cache_dir"`
	// Workers is the query worker count; 0 means one per CPU.
	Workers     int           `yaml:"workers"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
	// MetricsAddr enables the /metrics server when non-empty.
	MetricsAddr string `yaml:"metrics_addr"`
}

const defaultFootprintURL = "https://stpubdata.s3.amazonaws.com/tess/public/footprints/tess_ffi_footprint_cache.json"

// Load builds the configuration. The YAML file named by TESSLOCATE_CONFIG
// (or the configFile argument, which wins) is optional; unset values keep
// their defaults.
func Load(configFile string) (*Config, error) {
	cfg := &Config{
		FootprintURL: defaultFootprintURL,
		HTTPTimeout:  60 * time.Second,
		LogLevel:     "info",
		LogFormat:    "text",
	}

	if configFile == "" {
		configFile = os.Getenv("TESSLOCATE_CONFIG")
	}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configFile, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TESSLOCATE_FOOTPRINT_URL"); v != "" {
		cfg.FootprintURL = v
	}
	if v := os.Getenv("TESSLOCATE_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("TESSLOCATE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid TESSLOCATE_WORKERS %q", v)
		}
		cfg.Workers = n
	}
	if v := os.Getenv("TESSLOCATE_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid TESSLOCATE_HTTP_TIMEOUT %q", v)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.FootprintURL == "" {
		return errors.New("footprint URL must not be empty")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("http timeout must be positive")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q (use json or text)", c.LogFormat)
	}
	return nil
}

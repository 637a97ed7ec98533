package infra

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings. Values load from the YAML config
// file first, then env vars override endpoint- and path-like settings.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		Gamma struct {
			BaseURL    string `yaml:"base_url"`
			TimeoutSec int    `yaml:"timeout_sec"`
		} `yaml:"gamma"`
		Clob struct {
			WSURL string `yaml:"ws_url"`
		} `yaml:"clob"`
	} `yaml:"api"`

	LocalDB struct {
		Path string `yaml:"path"`
	} `yaml:"local_db"`

	Analysis struct {
		MaxDataAgeMin      int `yaml:"max_data_age_min"`
		MinResolvedMarkets int `yaml:"min_resolved_markets"`
		TopTraders         int `yaml:"top_traders"`
	} `yaml:"analysis"`

	Display struct {
		SnippetMaxLen int `yaml:"snippet_max_len"`
	} `yaml:"display"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns a config usable without any config file.
func DefaultConfig() *Config {
	var cfg Config
	cfg.App.Name = "polymarket-explorer"
	cfg.App.Version = "0.1.0"
	cfg.API.Gamma.BaseURL = "https://gamma-api.polymarket.com"
	cfg.API.Gamma.TimeoutSec = 30
	cfg.API.Clob.WSURL = "wss://ws-subscriptions-clob.polymarket.com/ws/market"
	cfg.LocalDB.Path = "data/explorer.db"
	cfg.Analysis.MaxDataAgeMin = 60
	cfg.Analysis.MinResolvedMarkets = 5
	cfg.Analysis.TopTraders = 10
	cfg.Display.SnippetMaxLen = 200
	cfg.Logging.Level = "info"
	return &cfg
}

// LoadConfig reads and parses the config file, applies env overrides and
// validates the result. A missing file falls back to defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if !hasPrefix(c.API.Gamma.BaseURL, "http://") && !hasPrefix(c.API.Gamma.BaseURL, "https://") {
		return fmt.Errorf("invalid Gamma base URL: %s", c.API.Gamma.BaseURL)
	}
	if c.API.Clob.WSURL != "" && !hasPrefix(c.API.Clob.WSURL, "ws://") && !hasPrefix(c.API.Clob.WSURL, "wss://") {
		return fmt.Errorf("invalid CLOB WS URL: %s", c.API.Clob.WSURL)
	}
	if c.API.Gamma.TimeoutSec <= 0 {
		return fmt.Errorf("gamma timeout must be positive")
	}
	if c.Analysis.MaxDataAgeMin <= 0 {
		return fmt.Errorf("max data age must be positive")
	}
	if c.Display.SnippetMaxLen < 4 {
		return fmt.Errorf("snippet max length must be at least 4")
	}
	return nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[0:len(prefix)] == prefix
}

// overrideWithEnv applies env var overrides when present.
func overrideWithEnv(cfg *Config) {
	if url := os.Getenv("POLY_GAMMA_URL"); url != "" {
		cfg.API.Gamma.BaseURL = url
	}
	if url := os.Getenv("POLY_CLOB_WS_URL"); url != "" {
		cfg.API.Clob.WSURL = url
	}
	if path := os.Getenv("POLY_DB_PATH"); path != "" {
		cfg.LocalDB.Path = path
	}
	if level := os.Getenv("POLY_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

package main

import (
	"errors"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/midbel/toml"

	"github.com/star/astrokit/internal/auth"
)

// Config is the daemon configuration. Defaults are overridden first by
// the optional TOML file named in ASTROD_CONFIG, then by environment
// variables.
type Config struct {
	HTTPAddr   string `toml:"http_addr"`
	TrustProxy bool   `toml:"trust_proxy"`
	System     string `toml:"reference_system"`
	Workers    int    `toml:"workers"`

	Auth struct {
		Enabled bool   `toml:"enabled"`
		Token   string `toml:"token"`
	} `toml:"auth"`

	EOP EOPConfig `toml:"eop"`
}

// EOPConfig controls the Earth-orientation data pipeline.
type EOPConfig struct {
	EnableFetch    bool   `toml:"enable_fetch"`
	SourceURL      string `toml:"source_url"`
	CacheDir       string `toml:"cache_dir"`
	RefreshSpec    string `toml:"refresh_spec"`
	LeapSecondFile string `toml:"leap_second_file"`
}

func defaultConfig() Config {
	cfg := Config{
		HTTPAddr: ":8080",
		System:   "IERS2010",
		Workers:  runtime.NumCPU(),
	}
	cfg.EOP = EOPConfig{
		EnableFetch: true,
		SourceURL:   "https://datacenter.iers.org/data/csv/finals2000A.all.csv",
		CacheDir:    "/tmp/astrod/eop",
		RefreshSpec: "@daily",
	}
	return cfg
}

// loadConfig builds the daemon configuration from defaults, the optional
// TOML file, and the environment.
func loadConfig(logger *slog.Logger) (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("ASTROD_CONFIG"); path != "" {
		if err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, err
		}
		logger.Info("loaded config file", "path", path)
	}

	if v := os.Getenv("ASTROD_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("ASTROD_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid ASTROD_TRUST_PROXY value, keeping current", "value", v)
		} else {
			cfg.TrustProxy = b
		}
	}
	if v := os.Getenv("ASTROD_REFERENCE_SYSTEM"); v != "" {
		cfg.System = v
	}
	if v := os.Getenv("ASTROD_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid ASTROD_WORKERS value, keeping current", "value", v, "current", cfg.Workers)
		} else {
			cfg.Workers = n
		}
	}

	if v := os.Getenv("ASTROD_AUTH_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.New("ASTROD_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Auth.Enabled = b
	}
	if v := os.Getenv("ASTROD_AUTH_TOKEN"); v != "" {
		cfg.Auth.Token = v
	}
	if cfg.Auth.Enabled && cfg.Auth.Token == "" {
		return cfg, errors.New("an auth token is required when auth is enabled")
	}

	if v := os.Getenv("ASTROD_ENABLE_EOP_FETCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid ASTROD_ENABLE_EOP_FETCH value, keeping current", "value", v)
		} else {
			cfg.EOP.EnableFetch = b
		}
	}
	if v := os.Getenv("ASTROD_EOP_URL"); v != "" {
		cfg.EOP.SourceURL = v
	}
	if v := os.Getenv("ASTROD_EOP_CACHE_DIR"); v != "" {
		cfg.EOP.CacheDir = v
	}
	if v := os.Getenv("ASTROD_EOP_REFRESH"); v != "" {
		cfg.EOP.RefreshSpec = v
	}
	if v := os.Getenv("ASTROD_LEAP_SECOND_FILE"); v != "" {
		cfg.EOP.LeapSecondFile = v
	}

	return cfg, nil
}

func (c Config) authConfig() auth.Config {
	return auth.Config{Enabled: c.Auth.Enabled, Token: c.Auth.Token}
}

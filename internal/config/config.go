// Package config loads host configuration from the environment.
// Only cmd/storefront reads it; the core packages take their dependencies
// as arguments.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// ProfilePath is the SQLite file holding the shopper's persisted state.
	ProfilePath string `env:"PROFILE_PATH" envDefault:"./data/profile.db"`

	// CatalogPath is the storefront markup the catalog is parsed from.
	CatalogPath string `env:"CATALOG_PATH" envDefault:"./web/index.html"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ToastTTL is how long transient messages stay visible.
	ToastTTL time.Duration `env:"TOAST_TTL" envDefault:"3s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config loads process configuration from the environment and the
// optional menu seed file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the whole process configuration.
type Config struct {
	// AdminIDs is the static set of privileged user ids: they may enter the
	// admin flows and they receive order notifications
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// MenuPath points at a YAML menu seed; empty means the built-in menu
	MenuPath string `env:"MENU_PATH"`

	// OpsAddr is the listen address of the read-only ops HTTP surface
	OpsAddr string `env:"OPS_ADDR" envDefault:":8080"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

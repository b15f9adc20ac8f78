// Package config holds the solver's tunables: MAX_DIM, USE_HUNGARIAN, and
// MAX_SEARCH, plus Workers, the concurrency cap passed to
// internal/precompute.Analyze for each level's static analyses. Values load
// from an optional TOML file and are then overridable by CLI flags
// (cmd/sokosolve wires the override order).
//
// Grounded on the config.toml loading pattern used by
// other_examples/manifests/frankkopp-FrankyGo and
// other_examples/manifests/Mgrdich-TermChess, both of which depend on
// github.com/BurntSushi/toml.
package config

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"sokosolve/internal/geom"
)

// Config is the full set of options the solver recognizes.
type Config struct {
	MaxDim       int  `toml:"max_dim"`
	UseHungarian bool `toml:"use_hungarian"`
	MaxSearch    int  `toml:"max_search"`
	Workers      int  `toml:"workers"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		MaxDim:       geom.MaxDim,
		UseHungarian: false,
		MaxSearch:    300000,
		Workers:      runtime.NumCPU(),
	}
}

// Load reads a TOML file at path on top of Default(), so a partial file
// only needs to name the fields it overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects a configuration the solver could never run with.
func (c Config) Validate() error {
	if c.MaxDim <= 0 || c.MaxDim > geom.MaxDim {
		return fmt.Errorf("max_dim must be in (0, %d], got %d", geom.MaxDim, c.MaxDim)
	}
	if c.MaxSearch <= 0 {
		return fmt.Errorf("max_search must be positive, got %d", c.MaxSearch)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

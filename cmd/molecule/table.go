package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/profedbrown/molecule"
)

// tableConfig is the layout of a --table file: a [masses] table of
// symbol = mass entries that extend or override the standard atomic
// masses.
type tableConfig struct {
	Masses map[string]float64 `toml:"masses"`
}

// tableOptions loads the --table file, if any, into context options for
// the library calls.
func tableOptions() ([]molecule.ContextOption, error) {
	if tableFile == "" {
		return nil, nil
	}
	var cfg tableConfig
	if _, err := toml.DecodeFile(tableFile, &cfg); err != nil {
		return nil, fmt.Errorf("loading mass table: %w", err)
	}
	for sym, m := range cfg.Masses {
		if m <= 0 {
			return nil, fmt.Errorf("mass table: %s has non-positive mass %v", sym, m)
		}
	}
	return []molecule.ContextOption{molecule.SetMasses(cfg.Masses)}, nil
}

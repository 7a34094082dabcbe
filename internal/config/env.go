package config

import (
	"path/filepath"
	"strings"
)

// Environment variables recognized on top of the config file.
const (
	// EnvVirtualEnv mirrors the conventional VIRTUAL_ENV set by an
	// activated Python environment. LSPREG_VIRTUAL_ENV wins over it.
	EnvVirtualEnv      = "VIRTUAL_ENV"
	EnvVirtualEnvForce = "LSPREG_VIRTUAL_ENV"

	// EnvExtraPaths is a list-separated set of extra search paths.
	EnvExtraPaths = "LSPREG_EXTRA_PATHS"

	// EnvDisable is a comma-separated list of server ids to disable.
	EnvDisable = "LSPREG_DISABLE"
)

// lookupFunc mirrors os.LookupEnv for testability.
type lookupFunc func(key string) (string, bool)

// applyEnv overlays environment variables onto the configuration.
// Environment values win over file values.
func applyEnv(cfg *Config, lookup lookupFunc) {
	if val, ok := lookup(EnvVirtualEnv); ok && val != "" && cfg.VirtualEnv == "" {
		cfg.VirtualEnv = val
	}
	if val, ok := lookup(EnvVirtualEnvForce); ok && val != "" {
		cfg.VirtualEnv = val
	}

	if val, ok := lookup(EnvExtraPaths); ok && val != "" {
		for _, p := range filepath.SplitList(val) {
			if p != "" {
				cfg.ExtraPaths = append(cfg.ExtraPaths, p)
			}
		}
	}

	if val, ok := lookup(EnvDisable); ok && val != "" {
		disabled := false
		for _, id := range strings.Split(val, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			override := cfg.Servers[id]
			override.Enabled = &disabled
			cfg.Servers[id] = override
		}
	}
}

// Package config loads user configuration for the registration table.
//
// Configuration is merged in three layers: built-in defaults, the TOML
// config file, then environment variable overrides. The result is a
// plain value handed to the caller; nothing in this package is global.
package config

import (
	"github.com/dshills/lspreg/internal/registry"
	"github.com/dshills/lspreg/internal/settings"
)

// ServerOverride customizes one catalog entry.
type ServerOverride struct {
	// Enabled disables the server when set to false. Nil means enabled.
	Enabled *bool `toml:"enabled"`

	// Command replaces the launch argv. The first element becomes the
	// executable checked by the availability probe.
	Command []string `toml:"command"`

	// ExtraRootMarkers are checked before the builtin markers, so a
	// user marker wins ties within a directory.
	ExtraRootMarkers []string `toml:"extra_root_markers"`

	// Settings are dot-path overrides layered onto the server's
	// settings payload (e.g. "gopls.staticcheck" = true).
	Settings map[string]any `toml:"settings"`
}

// Config is the user configuration.
type Config struct {
	// VirtualEnv is the active virtual-environment path passed to
	// interpreter-based servers.
	VirtualEnv string `toml:"virtual_env"`

	// ExtraPaths are user-supplied module search paths. These are
	// deliberately configuration, never compiled in.
	ExtraPaths []string `toml:"extra_paths"`

	// Servers maps server id to its override block.
	Servers map[string]ServerOverride `toml:"servers"`
}

// Default returns the built-in configuration: everything enabled, no
// overrides.
func Default() Config {
	return Config{Servers: make(map[string]ServerOverride)}
}

// Env converts the configuration into the registry environment context.
// The probe is left nil so the registry falls back to the search path.
func (c Config) Env(workDir string) registry.Env {
	return registry.Env{
		VirtualEnv: c.VirtualEnv,
		ExtraPaths: c.ExtraPaths,
		WorkDir:    workDir,
	}
}

// Enabled reports whether a server id is enabled.
func (c Config) Enabled(id string) bool {
	override, ok := c.Servers[id]
	if !ok || override.Enabled == nil {
		return true
	}
	return *override.Enabled
}

// Customize applies the configuration to catalog entries: disabled
// servers are dropped and override blocks are folded into the entry
// factories. The input slice is not modified.
func (c Config) Customize(entries []registry.CatalogEntry) []registry.CatalogEntry {
	out := make([]registry.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if !c.Enabled(entry.ID) {
			continue
		}

		override, ok := c.Servers[entry.ID]
		if !ok {
			out = append(out, entry)
			continue
		}

		customized := entry
		if len(override.Command) > 0 {
			customized.Executable = override.Command[0]
		}
		base := entry.Factory
		customized.Factory = func(env registry.Env) registry.Descriptor {
			desc := base(env)
			if len(override.Command) > 0 {
				desc.Command = override.Command
			}
			if len(override.ExtraRootMarkers) > 0 {
				markers := make([]string, 0, len(override.ExtraRootMarkers)+len(desc.RootMarkers))
				markers = append(markers, override.ExtraRootMarkers...)
				markers = append(markers, desc.RootMarkers...)
				desc.RootMarkers = markers
			}
			if len(override.Settings) > 0 {
				desc.Settings = settings.Overridden(desc.Settings, override.Settings)
			}
			return desc
		}
		out = append(out, customized)
	}
	return out
}

package settings

import "encoding/json"

// Gopls is the settings variant for the Go language server.
// Only commonly-tuned options are modeled; anything else can be layered
// on with Overridden.
type Gopls struct {
	// UsePlaceholders enables parameter placeholders in completion.
	UsePlaceholders bool

	// StaticCheck enables staticcheck analyses.
	StaticCheck bool

	// GofumptFormatting switches formatting to gofumpt.
	GofumptFormatting bool

	// Analyses toggles individual analyzers by name.
	Analyses map[string]bool

	// BuildFlags are extra flags for the underlying build system.
	BuildFlags []string
}

// Payload implements Settings.
func (g *Gopls) Payload() ([]byte, error) {
	inner := map[string]any{
		"usePlaceholders": g.UsePlaceholders,
		"staticcheck":     g.StaticCheck,
	}
	if g.GofumptFormatting {
		inner["gofumpt"] = true
	}
	if len(g.Analyses) > 0 {
		inner["analyses"] = g.Analyses
	}
	if len(g.BuildFlags) > 0 {
		inner["buildFlags"] = g.BuildFlags
	}
	return json.Marshal(map[string]any{"gopls": inner})
}

// RustAnalyzer is the settings variant for rust-analyzer.
type RustAnalyzer struct {
	// CheckCommand is the command run on save ("check" or "clippy").
	CheckCommand string

	// AllFeatures enables cargo --all-features.
	AllFeatures bool

	// ProcMacroEnabled enables proc-macro expansion.
	ProcMacroEnabled bool
}

// Payload implements Settings.
func (r *RustAnalyzer) Payload() ([]byte, error) {
	check := r.CheckCommand
	if check == "" {
		check = "check"
	}
	return json.Marshal(map[string]any{
		"rust-analyzer": map[string]any{
			"check": map[string]any{
				"command": check,
			},
			"cargo": map[string]any{
				"allFeatures": r.AllFeatures,
			},
			"procMacro": map[string]any{
				"enable": r.ProcMacroEnabled,
			},
		},
	})
}

// Pylsp is the settings variant for the Python LSP server.
type Pylsp struct {
	// VirtualEnv is the active virtual environment path, empty when none.
	VirtualEnv string

	// ExtraPaths are additional module search paths supplied by the user.
	ExtraPaths []string

	// MaxLineLength configures pycodestyle, 0 means server default.
	MaxLineLength int

	// DisabledPlugins lists pylsp plugins to turn off.
	DisabledPlugins []string
}

// Payload implements Settings.
func (p *Pylsp) Payload() ([]byte, error) {
	jedi := map[string]any{}
	if p.VirtualEnv != "" {
		jedi["environment"] = p.VirtualEnv
	}
	if len(p.ExtraPaths) > 0 {
		jedi["extra_paths"] = p.ExtraPaths
	}

	plugins := map[string]any{}
	if len(jedi) > 0 {
		plugins["jedi"] = jedi
	}
	if p.MaxLineLength > 0 {
		plugins["pycodestyle"] = map[string]any{
			"maxLineLength": p.MaxLineLength,
		}
	}
	for _, name := range p.DisabledPlugins {
		plugins[name] = map[string]any{"enabled": false}
	}

	inner := map[string]any{}
	if len(plugins) > 0 {
		inner["plugins"] = plugins
	}
	return json.Marshal(map[string]any{"pylsp": inner})
}

// LuaLS is the settings variant for lua-language-server.
type LuaLS struct {
	// RuntimeVersion names the Lua runtime ("Lua 5.4", "LuaJIT").
	RuntimeVersion string

	// Globals are identifiers the diagnostics pass should treat as defined.
	Globals []string
}

// Payload implements Settings.
func (l *LuaLS) Payload() ([]byte, error) {
	version := l.RuntimeVersion
	if version == "" {
		version = "Lua 5.4"
	}
	inner := map[string]any{
		"runtime": map[string]any{"version": version},
	}
	if len(l.Globals) > 0 {
		inner["diagnostics"] = map[string]any{"globals": l.Globals}
	}
	return json.Marshal(map[string]any{"Lua": inner})
}

// YamlLS is the settings variant for yaml-language-server.
type YamlLS struct {
	// Schemas maps schema URLs to file glob patterns.
	Schemas map[string]string

	// FormatEnabled toggles the built-in formatter.
	FormatEnabled bool
}

// Payload implements Settings.
func (y *YamlLS) Payload() ([]byte, error) {
	inner := map[string]any{
		"format": map[string]any{"enable": y.FormatEnabled},
	}
	if len(y.Schemas) > 0 {
		inner["schemas"] = y.Schemas
	}
	return json.Marshal(map[string]any{"yaml": inner})
}

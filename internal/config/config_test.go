package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/lspreg/internal/probe"
	"github.com/dshills/lspreg/internal/registry"
	"github.com/dshills/lspreg/internal/settings"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lspreg.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Enabled("gopls") {
		t.Error("Expected servers enabled by default")
	}
}

func TestLoad_ParsesTOML(t *testing.T) {
	path := writeConfig(t, `
virtual_env = "/home/user/.venvs/proj"
extra_paths = ["/opt/stubs"]

[servers.gopls]
command = ["gopls", "-remote=auto", "serve"]

[servers.pylsp]
enabled = false

[servers.rust-analyzer.settings]
"rust-analyzer.cargo.allFeatures" = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.VirtualEnv != "/home/user/.venvs/proj" {
		t.Errorf("VirtualEnv = %q", cfg.VirtualEnv)
	}
	if len(cfg.ExtraPaths) != 1 || cfg.ExtraPaths[0] != "/opt/stubs" {
		t.Errorf("ExtraPaths = %v", cfg.ExtraPaths)
	}
	if got := cfg.Servers["gopls"].Command; len(got) != 3 || got[1] != "-remote=auto" {
		t.Errorf("gopls command = %v", got)
	}
	if cfg.Enabled("pylsp") {
		t.Error("Expected pylsp disabled")
	}
	if cfg.Servers["rust-analyzer"].Settings["rust-analyzer.cargo.allFeatures"] != true {
		t.Errorf("rust-analyzer settings = %v", cfg.Servers["rust-analyzer"].Settings)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "virtual_env = [broken")

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error for invalid TOML")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvVirtualEnv: "/auto/venv",
		EnvExtraPaths: "/a" + string(os.PathListSeparator) + "/b",
		EnvDisable:    "pylsp, clangd",
	}
	lookup := func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}

	cfg := Default()
	applyEnv(&cfg, lookup)

	if cfg.VirtualEnv != "/auto/venv" {
		t.Errorf("VirtualEnv = %q", cfg.VirtualEnv)
	}
	if len(cfg.ExtraPaths) != 2 {
		t.Errorf("ExtraPaths = %v", cfg.ExtraPaths)
	}
	if cfg.Enabled("pylsp") || cfg.Enabled("clangd") {
		t.Error("Expected pylsp and clangd disabled via env")
	}
	if !cfg.Enabled("gopls") {
		t.Error("Expected gopls untouched")
	}
}

func TestApplyEnv_ForcedVirtualEnvWins(t *testing.T) {
	env := map[string]string{
		EnvVirtualEnv:      "/auto/venv",
		EnvVirtualEnvForce: "/forced/venv",
	}
	lookup := func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}

	cfg := Default()
	cfg.VirtualEnv = "/from/file"
	applyEnv(&cfg, lookup)

	if cfg.VirtualEnv != "/forced/venv" {
		t.Errorf("VirtualEnv = %q, want forced value", cfg.VirtualEnv)
	}
}

func TestApplyEnv_FileVirtualEnvBeatsAmbient(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == EnvVirtualEnv {
			return "/auto/venv", true
		}
		return "", false
	}

	cfg := Default()
	cfg.VirtualEnv = "/from/file"
	applyEnv(&cfg, lookup)

	if cfg.VirtualEnv != "/from/file" {
		t.Errorf("VirtualEnv = %q, want file value", cfg.VirtualEnv)
	}
}

func TestCustomize_DropsDisabled(t *testing.T) {
	disabled := false
	cfg := Default()
	cfg.Servers["pylsp"] = ServerOverride{Enabled: &disabled}

	entries := cfg.Customize(registry.Catalog())
	for _, entry := range entries {
		if entry.ID == "pylsp" {
			t.Error("Expected pylsp to be dropped")
		}
	}
	if len(entries) != len(registry.Catalog())-1 {
		t.Errorf("Expected one fewer entry, got %d", len(entries))
	}
}

func TestCustomize_CommandOverrideRetargetsProbe(t *testing.T) {
	cfg := Default()
	cfg.Servers["gopls"] = ServerOverride{
		Command: []string{"gopls-nightly", "serve"},
	}

	entries := cfg.Customize(registry.Catalog())

	b := registry.NewBuilder(registry.Env{Probe: probe.Fixed("gopls-nightly")}, nil)
	if err := b.RegisterCatalog(entries); err != nil {
		t.Fatalf("RegisterCatalog: %v", err)
	}

	table := b.Build()
	desc, ok := table.Get("gopls")
	if !ok {
		t.Fatal("Expected gopls registered against overridden binary")
	}
	if desc.Command[0] != "gopls-nightly" {
		t.Errorf("Command[0] = %q", desc.Command[0])
	}
}

func TestCustomize_ExtraRootMarkersComeFirst(t *testing.T) {
	cfg := Default()
	cfg.Servers["gopls"] = ServerOverride{
		ExtraRootMarkers: []string{".workspace"},
	}

	entries := cfg.Customize(registry.Catalog())
	for _, entry := range entries {
		if entry.ID != "gopls" {
			continue
		}
		desc := entry.Factory(registry.Env{})
		if len(desc.RootMarkers) == 0 || desc.RootMarkers[0] != ".workspace" {
			t.Errorf("RootMarkers = %v, want user marker first", desc.RootMarkers)
		}
	}
}

func TestCustomize_SettingsOverride(t *testing.T) {
	cfg := Default()
	cfg.Servers["gopls"] = ServerOverride{
		Settings: map[string]any{"gopls.staticcheck": false},
	}

	entries := cfg.Customize(registry.Catalog())
	for _, entry := range entries {
		if entry.ID != "gopls" {
			continue
		}
		desc := entry.Factory(registry.Env{})
		payload, err := desc.Settings.Payload()
		if err != nil {
			t.Fatalf("Payload: %v", err)
		}
		if val, _ := settings.Get(payload, "gopls.staticcheck"); val != false {
			t.Errorf("gopls.staticcheck = %v, want override false", val)
		}
	}
}

func TestEnv_CarriesContext(t *testing.T) {
	cfg := Default()
	cfg.VirtualEnv = "/venv"
	cfg.ExtraPaths = []string{"/extra"}

	env := cfg.Env("/work")
	if env.VirtualEnv != "/venv" || env.WorkDir != "/work" {
		t.Errorf("Env = %+v", env)
	}
	if len(env.ExtraPaths) != 1 {
		t.Errorf("ExtraPaths = %v", env.ExtraPaths)
	}
}

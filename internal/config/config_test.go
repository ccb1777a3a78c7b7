package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if len(cfg.Budget.Presets) != 4 || cfg.Budget.Presets[0] != 100 {
		t.Fatalf("presets = %v, want default presets", cfg.Budget.Presets)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/budget"
	cfg.Logging.Level = "debug"
	cfg.Budget.Presets = []float64{50, 250.5}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.General.DataDir != "/tmp/budget" {
		t.Fatalf("data_dir = %q", got.General.DataDir)
	}
	if got.Logging.Level != "debug" || got.Logging.Format != "text" {
		t.Fatalf("logging = %+v", got.Logging)
	}
	if len(got.Budget.Presets) != 2 || got.Budget.Presets[1] != 250.5 {
		t.Fatalf("presets = %v", got.Budget.Presets)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"catppuccin-mocha\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Appearance.Theme != "catppuccin-mocha" {
		t.Fatalf("theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("level = %q, want default warn", cfg.Logging.Level)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom accepted invalid TOML")
	}
}

func TestDBPath_EnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/srv/data"

	t.Setenv(DBEnvVar, "")
	if got, want := DBPath(cfg), filepath.Join("/srv/data", "sbudget.db"); got != want {
		t.Fatalf("DBPath = %q, want %q", got, want)
	}

	t.Setenv(DBEnvVar, "/elsewhere/b.db")
	if got := DBPath(cfg); got != "/elsewhere/b.db" {
		t.Fatalf("DBPath = %q, want env override", got)
	}
}

func TestDataDir_ExpandsHomeAndXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	cfg := DefaultConfig()
	if got, want := DataDir(cfg), filepath.Join(home, ".local", "share", "sbudget"); got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}

	cfg.General.DataDir = "~/money"
	if got, want := DataDir(cfg), filepath.Join(home, "money"); got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}

	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	if got, want := DefaultDataDir(), filepath.Join(xdg, "sbudget"); got != want {
		t.Fatalf("DefaultDataDir = %q, want %q", got, want)
	}
}

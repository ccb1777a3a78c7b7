package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DBEnvVar overrides the database location.
const DBEnvVar = "SBUDGET_DB"

// Config holds all sbudget configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
	Budget     BudgetConfig     `toml:"budget"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls log verbosity and format.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// BudgetConfig holds budget entry settings.
type BudgetConfig struct {
	// Presets are quick-fill expense amounts, bound to keys 1-9 in the TUI.
	Presets []float64 `toml:"presets"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Budget: BudgetConfig{
			Presets: []float64{100, 500, 1000, 5000},
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sbudget")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "sbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "sbudget")
}

// DataDir returns the configured data directory, expanding a leading "~".
func DataDir(cfg Config) string {
	dir := cfg.General.DataDir
	if dir == "" {
		return DefaultDataDir()
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return dir
}

// DBPath returns the database path from env var or config, in that order.
func DBPath(cfg Config) string {
	if p := os.Getenv(DBEnvVar); p != "" {
		return p
	}
	return filepath.Join(DataDir(cfg), "sbudget.db")
}

// LogPath is where the TUI writes its log.
func LogPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "sbudget.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's own config file
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

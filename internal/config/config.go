// Package config assembles runtime settings for the SchulManager CLI.
//
// Sources are applied in order, later ones winning:
// defaults -> .env / environment -> JSON file (-c/-config) -> flags.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the SchulManager CLI.
//
// Fields:
//   - DataDir: directory holding the shared account and path-binding files.
//   - UserDataRoot: default root for per-user appointment/goal/preference
//     files ({root}/{user}_termine.csv etc.) unless a binding overrides it.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	DataDir      string
	UserDataRoot string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.UserDataRoot = defaultUserDataRoot()
	c.LogLevel = "info"
}

func defaultUserDataRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("SchulManager", "data")
	}
	return filepath.Join(home, "SchulManager", "data")
}

// AccountFile returns the path of the shared account file.
func (c *Config) AccountFile() string {
	return filepath.Join(c.DataDir, "benutzer.csv")
}

// BindingFile returns the path of the path-binding table.
func (c *Config) BindingFile() string {
	return filepath.Join(c.DataDir, "pfade.csv")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON config file (if
// given), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

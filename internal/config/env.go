package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first (existing variables win, per
// godotenv semantics); a missing .env is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SCHULMANAGER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("SCHULMANAGER_USER_DATA_ROOT"); v != "" {
		cfg.UserDataRoot = v
	}
	if v := os.Getenv("SCHULMANAGER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

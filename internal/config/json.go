package config

import (
	"encoding/json"
	"os"

	"github.com/lfanzott/schulmanager/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// stay empty and leave the runtime Config untouched.
type JSONConfig struct {
	DataDir      string `json:"data_dir"`
	UserDataRoot string `json:"user_data_root"`
	LogLevel     string `json:"log_level"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags via flagx.ConfigFileFlag();
// when no path is given, nothing is loaded. Read or unmarshal errors panic:
// a broken explicit config file should not be silently ignored.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.UserDataRoot != "" {
		cfg.UserDataRoot = jc.UserDataRoot
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}

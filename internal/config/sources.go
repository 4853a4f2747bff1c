package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "task-tracker"

// setDefaults applies built-in defaults.
func setDefaults(cfg *Config) {
	cfg.DataFile = DefaultDataFile
	cfg.SchemaValidation = DefaultSchemaValidation
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}

// findProjectConfigFile returns the first project config file in the
// working directory, or "".
func findProjectConfigFile() string {
	names := []string{appName + ".toml", "." + appName + ".toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile returns the user-level config file, or "".
func findUserConfigFile() string {
	// First try ~/.task-tracker/task-tracker.toml
	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, "."+appName, appName+".toml")
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		userConfigPath := filepath.Join(cfgDir, appName, appName+".toml")
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

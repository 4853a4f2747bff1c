package config

import (
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvDataFile         = "TASK_TRACKER_FILE"
	EnvSchemaValidation = "TASK_TRACKER_SCHEMA_VALIDATION"
	EnvLogLevel         = "TASK_TRACKER_LOG_LEVEL"
	EnvLogFormat        = "TASK_TRACKER_LOG_FORMAT"
	EnvLogTimestamps    = "TASK_TRACKER_LOG_TIMESTAMPS"
	EnvLogCaller        = "TASK_TRACKER_LOG_CALLER"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv(EnvSchemaValidation); v != "" {
		cfg.SchemaValidation = boolFromString(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvLogTimestamps); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv(EnvLogCaller); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

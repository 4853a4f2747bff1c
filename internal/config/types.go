package config

// Default values.
const (
	DefaultDataFile         = "tasks.json"
	DefaultSchemaValidation = true
	DefaultLogLevel         = "warn"
	DefaultLogFormat        = "text"
)

// Config holds the full configuration for task-tracker.
type Config struct {
	// Task document path (relative to the working directory)
	DataFile string `toml:"data_file"`

	// Validate the task document against its JSON Schema on load
	SchemaValidation bool `toml:"schema_validation"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory (computed)
	WorkDir string `toml:"-"`

	// Config files that were applied, lowest priority first (computed)
	Files []string `toml:"-"`
}

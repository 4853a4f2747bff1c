package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# task-tracker configuration file
# Values can be overridden by environment variables or CLI flags

# Task document (relative to the working directory, supports ~ and $VAR)
data_file = "tasks.json"

# Validate the task document against its JSON Schema on load
schema_validation = true

# Console logging (written to stderr)
# log_level: debug, info, warn, error
log_level = "warn"
# log_format: text, json, logfmt
log_format = "text"
log_timestamps = false
log_caller = false
`
}

package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagFile      = "file"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagFile, "f", DefaultDataFile, "Path to the task file")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level (debug|info|warn|error)")
	fs.String(FlagLogFormat, DefaultLogFormat, "Log format (text|json|logfmt)")
}

// applyFlags copies explicitly set flags onto cfg. Flags left at their
// default do not override file or environment values.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	if f := fs.Lookup(FlagFile); f != nil && f.Changed {
		v, err := fs.GetString(FlagFile)
		if err != nil {
			return err
		}
		cfg.DataFile = v
	}
	if f := fs.Lookup(FlagLogLevel); f != nil && f.Changed {
		v, err := fs.GetString(FlagLogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = v
	}
	if f := fs.Lookup(FlagLogFormat); f != nil && f.Changed {
		v, err := fs.GetString(FlagLogFormat)
		if err != nil {
			return err
		}
		cfg.LogFormat = v
	}
	return nil
}

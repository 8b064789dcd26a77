// Package config handles application configuration and setup
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Defaults contains conversion settings read from a TOML file.
// Unset keys are nil and leave the command line defaults untouched.
type Defaults struct {
	Chip    *int    `toml:"chip"`
	Type    *string `toml:"type"`
	Address *int    `toml:"addr"`
	Jobs    *int    `toml:"jobs"`
	Verify  *bool   `toml:"verify"`
}

// LoadDefaults reads conversion defaults from a TOML file. Unknown keys are
// reported as an error.
func LoadDefaults(path string) (Defaults, error) {
	var defaults Defaults
	md, err := toml.DecodeFile(path, &defaults)
	if err != nil {
		return Defaults{}, fmt.Errorf("decoding config file '%s': %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Defaults{}, fmt.Errorf("unsupported keys in config file '%s': %s", path, strings.Join(keys, ", "))
	}

	return defaults, nil
}

// internal/appconfig/appconfig.go
// Package appconfig holds the merged benchpage configuration.
package appconfig

import "strings"

const (
	// DefaultConfigName is the config file looked up in the working directory
	// when --config is not given.
	DefaultConfigName = "benchpage"
	// EnvPrefix prefixes environment variables that override config values.
	EnvPrefix = "BENCHPAGE"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug      bool   `json:"debug"`
	LogFile    string `json:"logFile,omitempty"`
	Summary    bool   `json:"summary"`
	NoColor    bool   `json:"noColor"`
	ConfigPath string `json:"-"`
}

// LogFilePath returns the trimmed log file path. An empty result means no
// log file is written.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// ColorEnabled reports whether status lines may use ANSI colors.
func (c Config) ColorEnabled() bool {
	return !c.NoColor
}

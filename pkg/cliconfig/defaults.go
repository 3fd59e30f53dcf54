package cliconfig

import "github.com/ulidsq/ulidsq/pkg/compact"

// Default values.
const (
	DefaultMinLength = 0
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Alphabet:  compact.DefaultAlphabet,
		MinLength: DefaultMinLength,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}
	for _, key := range []string{"alphabet", "minLength", "blocklist", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}

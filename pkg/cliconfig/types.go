// Package cliconfig provides configuration types and loading for the ulidsq CLI.
package cliconfig

import (
	"fmt"

	"github.com/ulidsq/ulidsq/pkg/compact"
)

// CLIConfig is the complete configuration for the ulidsq CLI.
// Values are layered with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables (ULIDSQ_*)
// 3. Local config file (.ulidsqrc.yaml or .ulidsqrc.toml), or --config
// 4. Global config file (~/.config/ulidsq/config.yaml or config.toml)
// 5. Default values (lowest priority)
type CLIConfig struct {
	// Encoder settings. Encoder and decoder must agree on all of them.
	Alphabet         string   `yaml:"alphabet" toml:"alphabet" json:"alphabet"`
	MinLength        int      `yaml:"minLength" toml:"minLength" json:"minLength"`
	Blocklist        []string `yaml:"blocklist,omitempty" toml:"blocklist,omitempty" json:"blocklist,omitempty"`
	DisableBlocklist bool     `yaml:"disableBlocklist" toml:"disableBlocklist" json:"disableBlocklist"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" toml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" toml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from
	Sources map[string]string `yaml:"-" toml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// MaxMinLength is the largest padding the encoder supports.
const MaxMinLength = 255

// Compact converts the encoder settings into a compact.Config.
func (c *CLIConfig) Compact() (compact.Config, error) {
	if c.MinLength < 0 || c.MinLength > MaxMinLength {
		return compact.Config{}, fmt.Errorf("%w: minLength %d out of range 0-%d", compact.ErrInvalidConfig, c.MinLength, MaxMinLength)
	}
	cfg := compact.Config{
		Alphabet:  c.Alphabet,
		MinLength: uint8(c.MinLength),
	}
	switch {
	case c.DisableBlocklist:
		cfg.Blocklist = []string{}
	case len(c.Blocklist) > 0:
		cfg.Blocklist = c.Blocklist
	}
	return cfg, nil
}

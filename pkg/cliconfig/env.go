package cliconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "ULIDSQ_"

// Environment variable names
const (
	EnvAlphabet         = EnvPrefix + "ALPHABET"
	EnvMinLength        = EnvPrefix + "MIN_LENGTH"
	EnvBlocklist        = EnvPrefix + "BLOCKLIST"
	EnvDisableBlocklist = EnvPrefix + "DISABLE_BLOCKLIST"
	EnvLogLevel         = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat        = EnvPrefix + "LOG_FORMAT"
)

// envConfig mirrors the variables above. MinLength defaults to -1 so an
// explicit 0 can be told apart from an unset variable.
type envConfig struct {
	Alphabet         string   `env:"ALPHABET"`
	MinLength        int      `env:"MIN_LENGTH" envDefault:"-1"`
	Blocklist        []string `env:"BLOCKLIST" envSeparator:","`
	DisableBlocklist bool     `env:"DISABLE_BLOCKLIST"`
	LogLevel         string   `env:"LOG_LEVEL"`
	LogFormat        string   `env:"LOG_FORMAT"`
}

// LoadEnvConfig applies environment variables to cfg. It only sets values
// that are present. A nil environ reads the process environment.
func LoadEnvConfig(cfg *CLIConfig, environ map[string]string) error {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return fmt.Errorf("reading %s* environment: %w", EnvPrefix, err)
	}
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if ec.Alphabet != "" {
		cfg.Alphabet = ec.Alphabet
		cfg.Sources["alphabet"] = SourceEnv
	}
	if ec.MinLength >= 0 {
		cfg.MinLength = ec.MinLength
		cfg.Sources["minLength"] = SourceEnv
	}
	if len(ec.Blocklist) > 0 {
		cfg.Blocklist = ec.Blocklist
		cfg.Sources["blocklist"] = SourceEnv
	}
	if ec.DisableBlocklist {
		cfg.DisableBlocklist = true
		cfg.Sources["blocklist"] = SourceEnv
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
		cfg.Sources["logLevel"] = SourceEnv
	}
	if ec.LogFormat != "" {
		cfg.LogFormat = ec.LogFormat
		cfg.Sources["logFormat"] = SourceEnv
	}
	return nil
}

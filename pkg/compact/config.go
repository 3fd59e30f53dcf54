package compact

import (
	"fmt"

	"github.com/sqids/sqids-go"
)

// DefaultAlphabet is the Sqids default alphabet.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Config configures the underlying Sqids encoder. Two codecs decode each
// other's output only when their configs are equal.
type Config struct {
	// Alphabet is the set of characters compact strings are drawn from.
	// Empty means DefaultAlphabet.
	Alphabet string

	// MinLength pads compact strings to at least this many characters.
	MinLength uint8

	// Blocklist lists words that must not appear in output. Nil means the
	// Sqids default list; an empty non-nil slice disables blocking.
	Blocklist []string
}

// DefaultConfig returns the default encoder configuration.
func DefaultConfig() Config {
	return Config{Alphabet: DefaultAlphabet}
}

// NewSqids builds the Sqids encoder described by cfg.
func NewSqids(cfg Config) (*sqids.Sqids, error) {
	s, err := sqids.New(sqids.Options{
		Alphabet:  cfg.Alphabet,
		MinLength: cfg.MinLength,
		Blocklist: cfg.Blocklist,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return s, nil
}

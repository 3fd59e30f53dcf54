// Package logging provides structured logging configuration for ulidsq.
//
// This package wraps log/slog so the CLI and any embedding program share one
// way of building a logger:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
//	logger.Debug("encoded", "ulid", in, "compact", out)
//
// The codec packages never log. Callers that want a logger but have logging
// disabled should use Nop().
package logging

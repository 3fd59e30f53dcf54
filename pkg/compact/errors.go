package compact

import "errors"

// Error kinds returned by Codec.
var (
	ErrInvalidIdentifier  = errors.New("invalid identifier: expected a 26-character Crockford base32 ULID")
	ErrMalformedCompactID = errors.New("malformed compact ID")
	ErrInvalidConfig      = errors.New("invalid compact codec config")
)

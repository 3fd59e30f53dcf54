package compact

import (
	"fmt"

	"github.com/ulidsq/ulidsq/internal/id"
)

// IntCodec encodes an ordered list of integers into a single string.
//
// Decode must return an empty slice for input it cannot decode, and must
// invert Encode for any list whose values are below 2^48.
type IntCodec interface {
	Encode(numbers []uint64) (string, error)
	Decode(s string) []uint64
}

// fieldCount is the number of integers in a compact ID: timestamp, high, low.
const fieldCount = 3

// Codec converts between ULIDs and compact IDs.
type Codec struct {
	ints IntCodec
}

// New creates a Codec backed by a Sqids encoder built from cfg.
func New(cfg Config) (*Codec, error) {
	s, err := NewSqids(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithIntCodec(s), nil
}

// NewWithIntCodec creates a Codec backed by an arbitrary integer encoder.
func NewWithIntCodec(ints IntCodec) *Codec {
	return &Codec{ints: ints}
}

// Encode converts a ULID into a compact ID.
func (c *Codec) Encode(ulid string) (string, error) {
	d, err := id.Parse(ulid)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, ulid)
	}
	out, err := c.ints.Encode([]uint64{d.Timestamp, d.High, d.Low})
	if err != nil {
		return "", fmt.Errorf("encoding %q: %w", ulid, err)
	}
	return out, nil
}

// Decode converts a compact ID back into its ULID.
//
// Only canonical encoder output is accepted: the decoded integers must be
// in range and must re-encode to exactly s.
func (c *Codec) Decode(s string) (string, error) {
	nums := c.ints.Decode(s)
	if len(nums) == 0 {
		return "", fmt.Errorf("%w: %q does not decode", ErrMalformedCompactID, s)
	}
	if len(nums) != fieldCount {
		return "", fmt.Errorf("%w: %q holds %d integers, want %d", ErrMalformedCompactID, s, len(nums), fieldCount)
	}

	ts, high, low := nums[0], nums[1], nums[2]
	if ts > id.MaxTimestamp || high > id.MaxHalf || low > id.MaxHalf {
		return "", fmt.Errorf("%w: %q holds out-of-range fields", ErrMalformedCompactID, s)
	}

	if again, err := c.ints.Encode(nums); err != nil || again != s {
		return "", fmt.Errorf("%w: %q is not a canonical encoding", ErrMalformedCompactID, s)
	}

	out, err := id.Compose(ts, id.Join80(high, low))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCompactID, err)
	}
	return out, nil
}

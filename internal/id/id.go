package id

import (
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULID layout.
const (
	ULIDLength       = 26
	TimeLength       = 10
	RandomnessLength = 16

	TimestampBits  = 48
	RandomnessBits = 80
	HalfBits       = RandomnessBits / 2

	// MaxTimestamp is the largest timestamp a ULID can carry.
	MaxTimestamp = 1<<TimestampBits - 1
	// MaxHalf is the largest value of either randomness half.
	MaxHalf = 1<<HalfBits - 1
)

// ulidEncoding uses Crockford's Base32 (excludes I, L, O, U to avoid ambiguity)
const ulidEncoding = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// Errors returned by this package.
var (
	ErrInvalidULID        = errors.New("invalid ULID: expected 26 Crockford base32 characters")
	ErrTimestampOverflow  = errors.New("timestamp exceeds 48 bits")
	ErrRandomnessOverflow = errors.New("randomness exceeds 80 bits")
)

// decodeTable maps a byte to its Base32 digit, or -1 when the byte is not
// part of the alphabet.
var decodeTable = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(ulidEncoding); i++ {
		t[ulidEncoding[i]] = int8(i)
	}
	return t
}()

// IsValidULID checks if a string is a valid ULID.
//
// Only the canonical upper-case form is accepted, and the leading character
// must keep the timestamp within 48 bits.
func IsValidULID(s string) bool {
	if len(s) != ULIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isValidULIDChar(s[i]) {
			return false
		}
	}
	// ParseStrict catches the 48-bit overflow of a leading digit above '7'.
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// isValidULIDChar checks if a byte is a valid ULID character.
func isValidULIDChar(c byte) bool {
	return decodeTable[c] >= 0
}

// decodeULIDChar decodes a single ULID character to its value.
func decodeULIDChar(c byte) int {
	return int(decodeTable[c])
}

// DecodeTime decodes the 10-character timestamp prefix of a valid ULID.
func DecodeTime(s string) (uint64, error) {
	if !IsValidULID(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidULID, s)
	}
	return ulid.MustParseStrict(s).Time(), nil
}

// EncodeTime renders a 48-bit timestamp as the 10-character ULID prefix.
func EncodeTime(ms uint64) (string, error) {
	var u ulid.ULID
	if err := u.SetTime(ms); err != nil {
		return "", fmt.Errorf("%w: %d", ErrTimestampOverflow, ms)
	}
	return u.String()[:TimeLength], nil
}

// ULIDTime extracts the timestamp from a ULID.
func ULIDTime(s string) (time.Time, error) {
	ms, err := DecodeTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(ms), nil
}

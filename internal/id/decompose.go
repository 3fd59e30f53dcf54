package id

import (
	"fmt"
	"math/big"
)

// Decomposed is a ULID broken into its numeric fields, with the randomness
// already split into halves.
type Decomposed struct {
	Timestamp uint64
	High      uint64
	Low       uint64
}

// Randomness reassembles the 80-bit randomness.
func (d Decomposed) Randomness() *big.Int {
	return Join80(d.High, d.Low)
}

// Decompose validates s and returns its timestamp and randomness.
func Decompose(s string) (uint64, *big.Int, error) {
	ts, err := DecodeTime(s)
	if err != nil {
		return 0, nil, err
	}
	return ts, DecodeChunk(s[TimeLength:]), nil
}

// Parse decomposes s and splits its randomness.
func Parse(s string) (Decomposed, error) {
	ts, r, err := Decompose(s)
	if err != nil {
		return Decomposed{}, err
	}
	high, low := Split80(r)
	return Decomposed{Timestamp: ts, High: high, Low: low}, nil
}

// Compose is the inverse of Decompose. The result is always 26 characters.
func Compose(ts uint64, randomness *big.Int) (string, error) {
	prefix, err := EncodeTime(ts)
	if err != nil {
		return "", err
	}
	if randomness.Sign() < 0 || randomness.BitLen() > RandomnessBits {
		return "", fmt.Errorf("%w: %s", ErrRandomnessOverflow, randomness.Text(16))
	}
	return prefix + EncodeChunk(randomness, RandomnessLength), nil
}

package id

import "math/big"

var digitMask = big.NewInt(0x1F)

// DecodeChunk reads a Base32 chunk left to right, five bits per character.
// Characters outside the alphabet are not checked here; callers validate
// first.
func DecodeChunk(chunk string) *big.Int {
	acc := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(chunk); i++ {
		acc.Lsh(acc, 5)
		digit.SetInt64(int64(decodeULIDChar(chunk[i])))
		acc.Or(acc, digit)
	}
	return acc
}

// EncodeChunk renders value as exactly length Base32 characters, least
// significant digit last. Bits above 5*length are discarded, so callers must
// keep value within that width.
func EncodeChunk(value *big.Int, length int) string {
	if length <= 0 {
		return ""
	}
	out := make([]byte, length)
	rest := new(big.Int).Set(value)
	digit := new(big.Int)
	for i := length - 1; i >= 0; i-- {
		digit.And(rest, digitMask)
		out[i] = ulidEncoding[digit.Int64()]
		rest.Rsh(rest, 5)
	}
	return string(out)
}

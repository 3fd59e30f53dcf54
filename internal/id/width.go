package id

import "math/big"

var halfMask = new(big.Int).SetUint64(MaxHalf)

// Split80 splits an 80-bit value into its high and low 40-bit halves.
func Split80(value *big.Int) (high, low uint64) {
	high = new(big.Int).Rsh(value, HalfBits).Uint64()
	low = new(big.Int).And(value, halfMask).Uint64()
	return high, low
}

// Join80 is the inverse of Split80.
func Join80(high, low uint64) *big.Int {
	v := new(big.Int).SetUint64(high)
	v.Lsh(v, HalfBits)
	return v.Or(v, new(big.Int).SetUint64(low))
}

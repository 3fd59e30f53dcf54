package id

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func random80(r *rand.Rand) *big.Int {
	v := new(big.Int).SetUint64(r.Uint64() & 0xFFFF)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(r.Uint64()))
}

func TestSplit80_Known(t *testing.T) {
	t.Parallel()

	r := DecodeChunk("TSV4RRFFQ69G5FAV")
	high, low := Split80(r)
	assert.Equal(t, uint64(921107718639), high)
	assert.Equal(t, uint64(797035380059), low)
}

func TestSplit80_Edges(t *testing.T) {
	t.Parallel()

	high, low := Split80(new(big.Int))
	assert.Zero(t, high)
	assert.Zero(t, low)

	maxVal := new(big.Int).Lsh(big.NewInt(1), RandomnessBits)
	maxVal.Sub(maxVal, big.NewInt(1))
	high, low = Split80(maxVal)
	assert.Equal(t, uint64(MaxHalf), high)
	assert.Equal(t, uint64(MaxHalf), low)

	high, low = Split80(new(big.Int).SetUint64(MaxHalf + 1))
	assert.Equal(t, uint64(1), high)
	assert.Zero(t, low)
}

func TestJoin80_FixedTriple(t *testing.T) {
	t.Parallel()

	const high, low = 123456789, 987654321
	want := new(big.Int).Mul(big.NewInt(high), new(big.Int).Lsh(big.NewInt(1), 40))
	want.Add(want, big.NewInt(low))

	got := Join80(high, low)
	assert.Equal(t, 0, want.Cmp(got), "Join80 = %s, want %s", got, want)

	h, l := Split80(got)
	assert.Equal(t, uint64(high), h)
	assert.Equal(t, uint64(low), l)
}

func TestWidthAdapter_RoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		v := random80(r)
		high, low := Split80(v)
		require.LessOrEqual(t, high, uint64(MaxHalf))
		require.LessOrEqual(t, low, uint64(MaxHalf))
		require.Equal(t, 0, v.Cmp(Join80(high, low)), "round trip of %s", v)
	}
}

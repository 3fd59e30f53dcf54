// Package compact converts ULIDs to short, URL-friendly strings and back.
//
// A ULID is split into three integers: its 48-bit timestamp and the two
// 40-bit halves of its 80-bit randomness. The list is then handed to a
// multi-integer encoder (Sqids by default). The halves keep every field
// below 2^53, which encoders built around double-precision integers require.
//
// # Usage
//
//	codec, err := compact.New(compact.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	short, err := codec.Encode("01ARZ3NDEKTSV4RRFFQ69G5FAV")
//	ulid, err := codec.Decode(short)
//
// # Errors
//
// Encode fails with ErrInvalidIdentifier when its input is not a canonical
// ULID. Decode fails with ErrMalformedCompactID when its input was not
// produced by the same encoder configuration. Neither returns partial
// output.
//
// # Ordering
//
// Compact strings do not sort in timestamp order, because the encoder
// shuffles its alphabet. Decode before comparing.
//
// A Codec holds no mutable state and is safe for concurrent use.
package compact

// Package id implements the bit-level pieces of the ULID codec.
//
// A ULID is 26 characters of Crockford's Base32: 10 characters carrying a
// 48-bit millisecond timestamp followed by 16 characters carrying 80 bits of
// randomness. This package provides:
//
//   - Validation: IsValidULID, a structural and alphabet check on the
//     canonical upper-case form
//   - Radix conversion: DecodeChunk and EncodeChunk between a Base32 chunk and
//     an arbitrary-precision integer
//   - Decomposition: Decompose and Compose between a ULID string and its
//     (timestamp, randomness) pair
//   - Width adaptation: Split80 and Join80 between the 80-bit randomness and
//     two 40-bit halves
//
// Everything here is a pure function over its arguments. There is no shared
// state, so all functions are safe for concurrent use.
package id

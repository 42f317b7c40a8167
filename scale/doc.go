// Package scale provides hint-driven SCALE encoding and decoding of
// primitive values.
//
// SCALE is the byte format Substrate chains use for extrinsics, events and
// storage. This package covers the subset needed to move primitive host
// values in and out of it: none, bool, integers of every width, byte
// vectors, strings and 32-byte account identifiers.
//
// # Hints
//
// The value shape alone does not determine the wire encoding. A hint
// selects it:
//
//	Hint     Wire type       Width
//	─────────────────────────────────
//	u8/i8    u8/i8           1
//	u16/i16  u16/i16         2
//	u32/i32  u32/i32         4
//	u64/i64  u64/i64         8
//	u128     u128            16
//	i128     i128            16
//	c        Compact<u64>    1-9
//	a        AccountId32     32
//	""       natural         varies
//
// Integers always require a width hint. Strings use the account hint to
// travel as raw 32-byte identifiers; otherwise they are Compact length
// prefixed UTF-8. None, bool and bytes ignore their hint.
//
// # Compact Integers
//
// The two low bits of the first byte select the mode:
//
//	0b00  single byte, value < 2^6
//	0b01  two bytes,   value < 2^14
//	0b10  four bytes,  value < 2^30
//	0b11  big integer, upper six bits hold (byte count - 4)
//
// Decoding rejects non-canonical forms.
//
// # Encoding Flow
//
//  1. ParseHints(hints) → []Hint
//  2. Encoder.EncodeHinted(values, hints) → []byte
//
// # Decoding Flow
//
//  1. Compile(tags, hints) → []Field
//  2. Decoder.DecodeFields(data, fields) → []substrate.Value
//
// Decoded integers are always int64. A u64, u128 or i128 field holding a
// value outside the int64 range fails with an overflow error rather than
// being truncated.
//
// # Thread Safety
//
// Encoder and Decoder hold no per-call state and are safe for concurrent
// use. Encoding borrows a scratch buffer from a pool for the duration of a
// call and returns a fresh copy of the result.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[encode] overflow at value[0]: wire type u8 - value 300 overflows u8
//	[decode] out_of_bounds at field[2]: at position 5: need 4 bytes, 1 remaining
package scale

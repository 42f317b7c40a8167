// Package wire provides the byte-level primitives of the SCALE format: a
// bounds-checked read cursor and an append-only writer for fixed-width
// little-endian integers and Compact integers.
//
// This package is internal to the scale package.
package wire

// Package substrate provides a Go implementation of the Substrate SCALE codec
// for a small closed set of primitive values, together with storage key
// derivation and SS58 account identifiers.
//
// The library lets a host that only knows about loosely typed primitive values
// talk to a Substrate chain: it encodes call arguments, decodes storage
// entries and renders public keys as human-shareable addresses.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	substrate/           Root package with the Value tagged union
//	├── scale/           Hint-driven SCALE encoder and decoder, Compact integers
//	├── ss58/            Public key <-> SS58 identifier transcoder
//	├── storage/         Storage hashers and storage key derivation
//	├── errors/          Structured error types for debugging
//	└── cmd/substrate/   Command line front end and interactive TUI
//
// # Quick Start
//
// Encode a call payload:
//
//	out, err := scale.Encode(
//	    []substrate.Value{substrate.Int(1000), substrate.String("hello")},
//	    []string{"u16", ""},
//	)
//	// out = e8 03 14 68 65 6c 6c 6f
//
// Decode it back:
//
//	vals, err := scale.Decode(out,
//	    []scale.TypeTag{scale.TagInt, scale.TagString},
//	    []string{"u16", ""},
//	    ss58.DefaultVersion,
//	)
//
// Derive the storage key of an account:
//
//	key, err := storage.MapKey([]string{"System", "Account", "0xd435...a27d"}, false)
//
// # Values
//
// Value carries exactly one of none, bool, int64, bytes or string. Hosts with
// richer value systems convert with ValueOf, which accepts every Go integer
// kind, integral floats (as produced by JSON decoding), []byte and string.
//
// # Thread Safety
//
// All package-level functions are safe for concurrent use. Encoder and Decoder
// hold only immutable configuration and borrow scratch buffers from a pool per
// call, so a single instance may be shared between goroutines.
package substrate

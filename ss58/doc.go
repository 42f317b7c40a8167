// Package ss58 converts raw public keys to and from SS58 identifiers, the
// base-58 account addresses used across Substrate networks.
//
// An identifier is base58(prefix || key || checksum) where:
//
//	prefix    network version: 1 byte below 64, otherwise 2 bytes
//	key       32 bytes (sr25519, ed25519) or 33 bytes (compressed ecdsa)
//	checksum  first 2 bytes of blake2b-512("SS58PRE" || prefix || key)
//
// Only the low 14 bits of the version fit in the prefix. Larger versions
// are masked, matching sp_core.
package ss58

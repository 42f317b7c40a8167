// Package types defines the compiled field descriptors for hint-driven SCALE
// transcoding.
//
// Hint strings and target-type tags arrive from the host as loosely typed
// selectors. They are resolved once, at call entry, into Field values so the
// encode and decode loops dispatch on a closed enumeration instead of
// re-parsing strings per field.
//
// # Key Types
//
//   - Hint: physical encoding selector (fixed-width ints, compact, account)
//   - Tag: target shape for decoding (none, bool, int, bytes, string)
//   - Field: validated (Tag, Hint) pair
//
// This package is internal to the scale package.
package types

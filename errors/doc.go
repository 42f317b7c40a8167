// Package errors provides structured error types for the substrate codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/wire type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOverflow).
//		Path("value[2]").
//		GoType("int64").
//		WireType("u8").
//		Detail("value 300 does not fit").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "bytes", "u32")
//	err := errors.OutOfBounds(errors.PhaseDecode, path, 10, 5)
//
// Every Kind belongs to one Category of the codec's error taxonomy (shape,
// range, malformed, selector, arity), so callers can branch on the class of
// failure without enumerating kinds.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

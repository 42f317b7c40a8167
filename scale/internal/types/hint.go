package types

// Hint selects the physical SCALE encoding of an integer or string value.
type Hint uint8

const (
	HintNone Hint = iota
	HintU8
	HintI8
	HintU16
	HintI16
	HintU32
	HintI32
	HintU64
	HintI64
	HintU128
	HintI128
	HintCompact
	HintAccount
)

var hintNames = [...]string{
	HintNone:    "",
	HintU8:      "u8",
	HintI8:      "i8",
	HintU16:     "u16",
	HintI16:     "i16",
	HintU32:     "u32",
	HintI32:     "i32",
	HintU64:     "u64",
	HintI64:     "i64",
	HintU128:    "u128",
	HintI128:    "i128",
	HintCompact: "c",
	HintAccount: "a",
}

var hintSizes = [...]int{
	HintU8:   1,
	HintI8:   1,
	HintU16:  2,
	HintI16:  2,
	HintU32:  4,
	HintI32:  4,
	HintU64:  8,
	HintI64:  8,
	HintU128: 16,
	HintI128: 16,
}

// String returns the hint's selector text; HintNone renders as "".
func (h Hint) String() string {
	if int(h) < len(hintNames) {
		return hintNames[h]
	}
	return "unknown"
}

// Lookup resolves a selector string. The empty string is HintNone.
func Lookup(s string) (Hint, bool) {
	for i, name := range hintNames {
		if name == s {
			return Hint(i), true
		}
	}
	return 0, false
}

// IsInt reports whether h encodes an integer (fixed width or compact).
func (h Hint) IsInt() bool {
	return h >= HintU8 && h <= HintCompact
}

// IsFixed reports whether h is a fixed-width integer.
func (h Hint) IsFixed() bool {
	return h >= HintU8 && h <= HintI128
}

// Size returns the encoded width of a fixed-width integer hint, 0 otherwise.
func (h Hint) Size() int {
	if h.IsFixed() {
		return hintSizes[h]
	}
	return 0
}

// Signed reports whether h is a two's-complement integer.
func (h Hint) Signed() bool {
	switch h {
	case HintI8, HintI16, HintI32, HintI64, HintI128:
		return true
	}
	return false
}

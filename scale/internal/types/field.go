package types

// Tag identifies the primitive shape to decode next. The numeric values are
// part of the host contract and must not change.
type Tag int

const (
	TagNone   Tag = 0
	TagBool   Tag = 2
	TagInt    Tag = 3
	TagBytes  Tag = 16
	TagString Tag = 17
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagBytes:
		return "bytes"
	case TagString:
		return "string"
	}
	return "unknown"
}

// Valid reports whether t is one of the defined tags.
func (t Tag) Valid() bool {
	switch t {
	case TagNone, TagBool, TagInt, TagBytes, TagString:
		return true
	}
	return false
}

// Field is a resolved decode slot.
type Field struct {
	Tag  Tag
	Hint Hint
}

// Accepts reports whether hint is meaningful for t. Only integers constrain
// their hint; a string reads as an account under HintAccount and as plain
// text under any other hint.
func (t Tag) Accepts(h Hint) bool {
	if t == TagInt {
		return h.IsInt()
	}
	return true
}

// WireType names the SCALE type f reads, for error messages.
func (f Field) WireType() string {
	switch f.Tag {
	case TagInt:
		if f.Hint == HintCompact {
			return "Compact<u64>"
		}
		return f.Hint.String()
	case TagString:
		if f.Hint == HintAccount {
			return "AccountId32"
		}
		return "str"
	case TagBytes:
		return "Vec<u8>"
	}
	return f.Tag.String()
}

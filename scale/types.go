package scale

import (
	"strconv"

	"github.com/wippyai/substrate-codec/errors"
	"github.com/wippyai/substrate-codec/scale/internal/types"
)

type Hint = types.Hint

const (
	HintNone    = types.HintNone
	HintU8      = types.HintU8
	HintI8      = types.HintI8
	HintU16     = types.HintU16
	HintI16     = types.HintI16
	HintU32     = types.HintU32
	HintI32     = types.HintI32
	HintU64     = types.HintU64
	HintI64     = types.HintI64
	HintU128    = types.HintU128
	HintI128    = types.HintI128
	HintCompact = types.HintCompact
	HintAccount = types.HintAccount
)

type TypeTag = types.Tag

const (
	TagNone   = types.TagNone
	TagBool   = types.TagBool
	TagInt    = types.TagInt
	TagBytes  = types.TagBytes
	TagString = types.TagString
)

type Field = types.Field

// ParseHint resolves a hint selector. The empty string selects the default
// encoding.
func ParseHint(s string) (Hint, error) {
	h, ok := types.Lookup(s)
	if !ok {
		return HintNone, errors.Unsupported(errors.PhaseCompile, "unknown hint "+strconv.Quote(s))
	}
	return h, nil
}

// ParseHints resolves a sequence of hint selectors.
func ParseHints(ss []string) ([]Hint, error) {
	hints := make([]Hint, len(ss))
	for i, s := range ss {
		h, err := ParseHint(s)
		if err != nil {
			err.(*errors.Error).Path = []string{"hint[" + strconv.Itoa(i) + "]"}
			return nil, err
		}
		hints[i] = h
	}
	return hints, nil
}

var tagNames = map[string]TypeTag{
	"none":   TagNone,
	"bool":   TagBool,
	"int":    TagInt,
	"bytes":  TagBytes,
	"string": TagString,
}

// ParseTypeTag resolves a target-type tag from its name or numeric code.
func ParseTypeTag(s string) (TypeTag, error) {
	if t, ok := tagNames[s]; ok {
		return t, nil
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Unsupported(errors.PhaseCompile, "unknown type tag "+strconv.Quote(s))
	}
	return TypeTagOf(code)
}

// TypeTagOf validates a numeric target-type code.
func TypeTagOf(code int) (TypeTag, error) {
	t := TypeTag(code)
	if !t.Valid() {
		return 0, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Value(code).
			Detail("invalid target type %d", code).
			Build()
	}
	return t, nil
}

// Compile pairs target-type tags with hint selectors and validates each
// combination once, ahead of decoding.
func Compile(tags []TypeTag, hints []string) ([]Field, error) {
	if len(tags) != len(hints) {
		return nil, errors.Arity(errors.PhaseCompile, "type tags and hints", len(hints), strconv.Itoa(len(tags)))
	}
	parsed, err := ParseHints(hints)
	if err != nil {
		return nil, err
	}
	return CompileHinted(tags, parsed)
}

// CompileHinted is Compile for hints that are already parsed.
func CompileHinted(tags []TypeTag, hints []Hint) ([]Field, error) {
	if len(tags) != len(hints) {
		return nil, errors.Arity(errors.PhaseCompile, "type tags and hints", len(hints), strconv.Itoa(len(tags)))
	}
	fields := make([]Field, len(tags))
	for i, tag := range tags {
		path := fieldPath(i)
		if !tag.Valid() {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				Value(int(tag)).
				Detail("invalid target type %d", int(tag)).
				Build()
		}
		h := hints[i]
		if !tag.Accepts(h) {
			if tag == TagInt && h == HintNone {
				return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
					Path(path...).
					WireType(tag.String()).
					Detail("int requires an integer hint").
					Build()
			}
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				WireType(tag.String()).
				Detail("hint %q does not apply", h.String()).
				Build()
		}
		fields[i] = Field{Tag: tag, Hint: h}
	}
	return fields, nil
}

func valuePath(i int) []string {
	return []string{"value[" + strconv.Itoa(i) + "]"}
}

func fieldPath(i int) []string {
	return []string{"field[" + strconv.Itoa(i) + "]"}
}

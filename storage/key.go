package storage

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/substrate-codec/errors"
	"github.com/wippyai/substrate-codec/internal/hexutil"
)

// PrefixSize is the width of a pallet/item prefix.
const PrefixSize = 32

// KeySegment is one map key together with the hasher applied to it.
type KeySegment struct {
	Data   []byte
	Hasher Hasher
}

// Prefix returns twox128(pallet) || twox128(item).
func Prefix(pallet, item string) []byte {
	dst := make([]byte, 0, PrefixSize)
	dst = Twox128.Append(dst, []byte(pallet))
	return Twox128.Append(dst, []byte(item))
}

// Key derives the key of a plain storage value from exactly two path
// segments.
func Key(paths []string) ([]byte, error) {
	if len(paths) != 2 {
		return nil, errors.Arity(errors.PhaseDerive, "storage key segments", len(paths), "2")
	}
	key := Prefix(paths[0], paths[1])
	Logger().Debug("derived storage key",
		zap.String("pallet", paths[0]),
		zap.String("item", paths[1]),
		zap.Int("size", len(key)))
	return key, nil
}

// MapKey derives a map or double map key from the pallet, the item and one
// or two hex encoded map keys. Map keys are hashed with Blake2_128Concat,
// or appended unchanged when preHashed is set.
func MapKey(segments []string, preHashed bool) ([]byte, error) {
	if len(segments) < 3 || len(segments) > 4 {
		return nil, errors.Arity(errors.PhaseDerive, "storage map segments", len(segments), "3 or 4")
	}

	hasher := Blake2_128Concat
	if preHashed {
		hasher = Identity
	}

	keys := make([]KeySegment, 0, len(segments)-2)
	for i, s := range segments[2:] {
		data, err := DecodeHex(s)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{"key[" + strconv.Itoa(i) + "]"}
			}
			return nil, err
		}
		keys = append(keys, KeySegment{Data: data, Hasher: hasher})
	}
	return MapKeyWith(segments[0], segments[1], keys...)
}

// MapKeyWith derives a map key with an explicit hasher per key segment.
func MapKeyWith(pallet, item string, keys ...KeySegment) ([]byte, error) {
	if len(keys) == 0 {
		return nil, errors.Arity(errors.PhaseDerive, "map key segments", 0, "at least 1")
	}

	size := PrefixSize
	for i, k := range keys {
		if !k.Hasher.Valid() {
			e := errors.Unsupported(errors.PhaseDerive, "unknown hasher "+k.Hasher.String())
			e.Path = []string{"key[" + strconv.Itoa(i) + "]"}
			return nil, e
		}
		size += k.Hasher.Size()
		if k.Hasher.Concat() {
			size += len(k.Data)
		}
	}

	key := make([]byte, 0, size)
	key = append(key, Prefix(pallet, item)...)
	for _, k := range keys {
		key = k.Hasher.Append(key, k.Data)
	}

	Logger().Debug("derived storage map key",
		zap.String("pallet", pallet),
		zap.String("item", item),
		zap.Int("keys", len(keys)),
		zap.Int("size", len(key)))
	return key, nil
}

// DecodeHex decodes a hex string with an optional 0x or 0X prefix. Every
// character must be a hex digit.
func DecodeHex(s string) ([]byte, error) {
	out, err := hexutil.Decode(hexutil.TrimPrefix(s))
	if err != nil {
		return nil, errors.New(errors.PhaseDerive, errors.KindInvalidData).
			Value(s).
			Cause(err).
			Detail("invalid hex %q", s).
			Build()
	}
	return out, nil
}

package scale

import (
	"math"
	"strconv"

	"go.uber.org/zap"

	substrate "github.com/wippyai/substrate-codec"
	"github.com/wippyai/substrate-codec/errors"
	"github.com/wippyai/substrate-codec/scale/internal/wire"
	"github.com/wippyai/substrate-codec/ss58"
)

// Encoder writes sequences of hinted values as one contiguous SCALE buffer.
// It holds no state between calls and is safe for concurrent use.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

var defaultEncoder = NewEncoder()

// Encode encodes values[i] with hints[i] using the default encoder.
func Encode(values []substrate.Value, hints []string) ([]byte, error) {
	return defaultEncoder.Encode(values, hints)
}

// Encode parses hints and encodes each value in order.
func (e *Encoder) Encode(values []substrate.Value, hints []string) ([]byte, error) {
	if len(values) != len(hints) {
		return nil, errors.Arity(errors.PhaseEncode, "values and hints", len(hints), strconv.Itoa(len(values)))
	}
	parsed, err := ParseHints(hints)
	if err != nil {
		return nil, err
	}
	return e.EncodeHinted(values, parsed)
}

// EncodeHinted encodes values with already parsed hints. The returned slice
// is owned by the caller.
func (e *Encoder) EncodeHinted(values []substrate.Value, hints []Hint) ([]byte, error) {
	if len(values) != len(hints) {
		return nil, errors.Arity(errors.PhaseEncode, "values and hints", len(hints), strconv.Itoa(len(values)))
	}

	w := getWriter()
	defer putWriter(w)

	for i, v := range values {
		if err := encodeValue(w, v, hints[i], valuePath(i)); err != nil {
			Logger().Debug("encode failed",
				zap.Int("index", i),
				zap.Stringer("hint", hints[i]),
				zap.Error(err))
			return nil, err
		}
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

// AppendValue appends the encoding of v to dst. On error dst is returned
// unchanged.
func AppendValue(dst []byte, v substrate.Value, h Hint) ([]byte, error) {
	w := wire.WriterOn(dst)
	if err := encodeValue(w, v, h, nil); err != nil {
		return dst, err
	}
	return w.Bytes(), nil
}

func encodeValue(w *wire.Writer, v substrate.Value, h Hint, path []string) error {
	switch v.Shape() {
	case substrate.ShapeNone:
		w.Byte(0)
		return nil

	case substrate.ShapeBool:
		b, _ := v.AsBool()
		if b {
			w.Byte(1)
		} else {
			w.Byte(0)
		}
		return nil

	case substrate.ShapeInt:
		i, _ := v.AsInt()
		return encodeInt(w, i, h, path)

	case substrate.ShapeBytes:
		b, _ := v.AsBytes()
		w.WriteCompact(uint64(len(b)))
		w.WriteBytes(b)
		return nil

	case substrate.ShapeString:
		s, _ := v.AsString()
		if h == HintAccount {
			key, err := ss58.DecodeAccount(s)
			if err != nil {
				return withPath(err, path)
			}
			w.WriteBytes(key)
			return nil
		}
		w.WriteCompact(uint64(len(s)))
		w.WriteString(s)
		return nil

	default:
		return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Path(path...).
			GoType(v.Shape().String()).
			Detail("invalid input value type").
			Build()
	}
}

func encodeInt(w *wire.Writer, i int64, h Hint, path []string) error {
	switch h {
	case HintU8:
		if i < 0 || i > math.MaxUint8 {
			return overflow(i, h, path)
		}
		w.Byte(byte(i))
	case HintI8:
		if i < math.MinInt8 || i > math.MaxInt8 {
			return overflow(i, h, path)
		}
		w.Byte(byte(int8(i)))
	case HintU16:
		if i < 0 || i > math.MaxUint16 {
			return overflow(i, h, path)
		}
		w.WriteU16LE(uint16(i))
	case HintI16:
		if i < math.MinInt16 || i > math.MaxInt16 {
			return overflow(i, h, path)
		}
		w.WriteU16LE(uint16(int16(i)))
	case HintU32:
		if i < 0 || i > math.MaxUint32 {
			return overflow(i, h, path)
		}
		w.WriteU32LE(uint32(i))
	case HintI32:
		if i < math.MinInt32 || i > math.MaxInt32 {
			return overflow(i, h, path)
		}
		w.WriteU32LE(uint32(int32(i)))
	case HintU64:
		if i < 0 {
			return overflow(i, h, path)
		}
		w.WriteU64LE(uint64(i))
	case HintI64:
		w.WriteU64LE(uint64(i))
	case HintU128:
		if i < 0 {
			return overflow(i, h, path)
		}
		w.WriteU128LE(uint64(i), 0)
	case HintI128:
		var hi uint64
		if i < 0 {
			hi = math.MaxUint64
		}
		w.WriteU128LE(uint64(i), hi)
	case HintCompact:
		if i < 0 {
			return overflow(i, h, path)
		}
		w.WriteCompact(uint64(i))
	case HintNone:
		return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Path(path...).
			GoType("int64").
			Detail("integer requires a width hint").
			Build()
	default:
		return errors.New(errors.PhaseEncode, errors.KindUnsupported).
			Path(path...).
			GoType("int64").
			Detail("hint %q does not apply to integers", h.String()).
			Build()
	}
	return nil
}

func overflow(i int64, h Hint, path []string) error {
	wireType := h.String()
	if h == HintCompact {
		wireType = "Compact<u64>"
	}
	return errors.Overflow(errors.PhaseEncode, path, i, wireType)
}

// withPath attaches path to structured errors returned by other packages.
func withPath(err error, path []string) error {
	if e, ok := err.(*errors.Error); ok && path != nil {
		e.Path = path
	}
	return err
}

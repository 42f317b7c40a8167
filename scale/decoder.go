package scale

import (
	goerrors "errors"
	"math"
	"strconv"
	"unicode/utf8"

	"go.uber.org/zap"

	substrate "github.com/wippyai/substrate-codec"
	"github.com/wippyai/substrate-codec/errors"
	"github.com/wippyai/substrate-codec/scale/internal/wire"
	"github.com/wippyai/substrate-codec/ss58"
)

// Decoder reads hinted SCALE fields into values. Account fields are
// rendered as SS58 text using the decoder's network version.
type Decoder struct {
	version uint16
}

// NewDecoder returns a Decoder for the generic Substrate network version.
func NewDecoder() *Decoder {
	return &Decoder{version: ss58.DefaultVersion}
}

// NewDecoderWithVersion returns a Decoder that renders accounts with the
// given network version (0-65535).
func NewDecoderWithVersion(version int) (*Decoder, error) {
	v, err := ss58.ValidateVersion(version)
	if err != nil {
		return nil, err
	}
	return &Decoder{version: v}, nil
}

// Version returns the network version used for account fields.
func (d *Decoder) Version() uint16 {
	return d.version
}

// Decode decodes one value per (tag, hint) pair from the start of data.
func Decode(data []byte, tags []TypeTag, hints []string, version int) ([]substrate.Value, error) {
	d, err := NewDecoderWithVersion(version)
	if err != nil {
		return nil, err
	}
	return d.Decode(data, tags, hints)
}

// Decode compiles tags and hints and decodes them left to right. Bytes left
// over after the last field are ignored.
func (d *Decoder) Decode(data []byte, tags []TypeTag, hints []string) ([]substrate.Value, error) {
	fields, err := Compile(tags, hints)
	if err != nil {
		return nil, err
	}
	return d.DecodeFields(data, fields)
}

// DecodeFields decodes pre-compiled fields. Bytes left over after the last
// field are ignored.
func (d *Decoder) DecodeFields(data []byte, fields []Field) ([]substrate.Value, error) {
	values, _, err := d.decode(data, fields)
	return values, err
}

// DecodeAll is DecodeFields but fails when data is not consumed exactly.
func (d *Decoder) DecodeAll(data []byte, fields []Field) ([]substrate.Value, error) {
	values, r, err := d.decode(data, fields)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Value(r.Len()).
			Detail("%d trailing bytes after position %d", r.Len(), r.Position()).
			Build()
	}
	return values, nil
}

func (d *Decoder) decode(data []byte, fields []Field) ([]substrate.Value, *wire.Reader, error) {
	r := wire.NewReader(data)
	values := make([]substrate.Value, len(fields))
	for i, f := range fields {
		start := r.Position()
		v, err := d.decodeField(r, f, fieldPath(i))
		if err != nil {
			Logger().Debug("decode failed",
				zap.Int("field", i),
				zap.Stringer("tag", f.Tag),
				zap.Int("offset", start),
				zap.Error(err))
			return nil, r, err
		}
		values[i] = v
	}
	return values, r, nil
}

func (d *Decoder) decodeField(r *wire.Reader, f Field, path []string) (substrate.Value, error) {
	switch f.Tag {
	case TagNone:
		if _, err := r.ReadByte(); err != nil {
			return substrate.Value{}, readError(err, path)
		}
		return substrate.None(), nil

	case TagBool:
		b, err := r.ReadByte()
		if err != nil {
			return substrate.Value{}, readError(err, path)
		}
		switch b {
		case 0:
			return substrate.Bool(false), nil
		case 1:
			return substrate.Bool(true), nil
		}
		return substrate.Value{}, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(path...).
			WireType("bool").
			Value(b).
			Detail("invalid bool byte 0x%02x", b).
			Build()

	case TagInt:
		i, err := decodeInt(r, f.Hint, path)
		if err != nil {
			return substrate.Value{}, err
		}
		return substrate.Int(i), nil

	case TagBytes:
		b, err := readPrefixed(r, path)
		if err != nil {
			return substrate.Value{}, err
		}
		out := make([]byte, len(b))
		copy(out, b)
		return substrate.Bytes(out), nil

	case TagString:
		if f.Hint == HintAccount {
			key, err := r.ReadBytes(ss58.AccountSize)
			if err != nil {
				return substrate.Value{}, readError(err, path)
			}
			addr, err := ss58.Encode(key, ss58.Sr25519, int(d.version))
			if err != nil {
				return substrate.Value{}, withPath(err, path)
			}
			return substrate.String(addr), nil
		}
		b, err := readPrefixed(r, path)
		if err != nil {
			return substrate.Value{}, err
		}
		if !utf8.Valid(b) {
			return substrate.Value{}, errors.InvalidUTF8(errors.PhaseDecode, path, b)
		}
		return substrate.String(string(b)), nil

	default:
		return substrate.Value{}, errors.New(errors.PhaseDecode, errors.KindUnsupported).
			Path(path...).
			Value(int(f.Tag)).
			Detail("invalid target type %d", int(f.Tag)).
			Build()
	}
}

func decodeInt(r *wire.Reader, h Hint, path []string) (int64, error) {
	switch h {
	case HintU8:
		b, err := r.ReadByte()
		if err != nil {
			return 0, readError(err, path)
		}
		return int64(b), nil
	case HintI8:
		b, err := r.ReadByte()
		if err != nil {
			return 0, readError(err, path)
		}
		return int64(int8(b)), nil
	case HintU16:
		v, err := r.ReadU16LE()
		if err != nil {
			return 0, readError(err, path)
		}
		return int64(v), nil
	case HintI16:
		v, err := r.ReadU16LE()
		if err != nil {
			return 0, readError(err, path)
		}
		return int64(int16(v)), nil
	case HintU32:
		v, err := r.ReadU32LE()
		if err != nil {
			return 0, readError(err, path)
		}
		return int64(v), nil
	case HintI32:
		v, err := r.ReadU32LE()
		if err != nil {
			return 0, readError(err, path)
		}
		return int64(int32(v)), nil
	case HintU64:
		v, err := r.ReadU64LE()
		if err != nil {
			return 0, readError(err, path)
		}
		if v > math.MaxInt64 {
			return 0, errors.Overflow(errors.PhaseDecode, path, v, "int64")
		}
		return int64(v), nil
	case HintI64:
		v, err := r.ReadU64LE()
		if err != nil {
			return 0, readError(err, path)
		}
		return int64(v), nil
	case HintU128:
		lo, hi, err := r.ReadU128LE()
		if err != nil {
			return 0, readError(err, path)
		}
		if hi != 0 || lo > math.MaxInt64 {
			return 0, wide128(path, "u128", lo, hi)
		}
		return int64(lo), nil
	case HintI128:
		lo, hi, err := r.ReadU128LE()
		if err != nil {
			return 0, readError(err, path)
		}
		// in range only when hi is the sign extension of lo
		v := int64(lo)
		if (v >= 0 && hi != 0) || (v < 0 && hi != math.MaxUint64) {
			return 0, wide128(path, "i128", lo, hi)
		}
		return v, nil
	case HintCompact:
		v, err := r.ReadCompact()
		if err != nil {
			return 0, readError(err, path)
		}
		if v > math.MaxInt64 {
			return 0, errors.Overflow(errors.PhaseDecode, path, v, "int64")
		}
		return int64(v), nil
	default:
		return 0, errors.New(errors.PhaseDecode, errors.KindUnsupported).
			Path(path...).
			WireType("int").
			Detail("hint %q does not apply to integers", h.String()).
			Build()
	}
}

func wide128(path []string, wireType string, lo, hi uint64) error {
	return errors.New(errors.PhaseDecode, errors.KindOverflow).
		Path(path...).
		GoType("int64").
		WireType(wireType).
		Detail("value 0x%016x%016x does not fit in int64", hi, lo).
		Build()
}

// readPrefixed reads a Compact length followed by that many bytes. The result
// aliases the input buffer.
func readPrefixed(r *wire.Reader, path []string) ([]byte, error) {
	n, err := r.ReadCompact()
	if err != nil {
		return nil, readError(err, path)
	}
	if n > uint64(r.Len()) {
		return nil, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Path(path...).
			Value(n).
			Detail("length prefix %d exceeds %d remaining bytes", n, r.Len()).
			Build()
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return nil, readError(err, path)
	}
	return b, nil
}

// readError converts a wire-level failure into a structured decode error.
func readError(err error, path []string) error {
	var underrun *wire.UnderrunError
	if goerrors.As(err, &underrun) {
		e := errors.OutOfBounds(errors.PhaseDecode, path, underrun.Need, underrun.Remaining)
		e.Detail = "at position " + strconv.Itoa(underrun.Position) + ": " + e.Detail
		return e
	}
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Path(path...).
		WireType("Compact<u64>").
		Cause(err).
		Detail("invalid compact integer").
		Build()
}

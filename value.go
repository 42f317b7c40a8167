package substrate

import (
	"bytes"
	"encoding/hex"
	"math"
	"reflect"
	"strconv"

	"github.com/wippyai/substrate-codec/errors"
)

// Shape discriminates the variants of Value.
type Shape uint8

const (
	ShapeInvalid Shape = iota
	ShapeNone
	ShapeBool
	ShapeInt
	ShapeBytes
	ShapeString
)

var shapeNames = [...]string{
	ShapeInvalid: "invalid",
	ShapeNone:    "none",
	ShapeBool:    "bool",
	ShapeInt:     "int",
	ShapeBytes:   "bytes",
	ShapeString:  "string",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Value is a tagged union over the primitive shapes the codec understands.
// The zero Value is invalid; use None for the explicit empty value.
type Value struct {
	b     []byte
	s     string
	i     int64
	shape Shape
}

func None() Value           { return Value{shape: ShapeNone} }
func Int(i int64) Value     { return Value{shape: ShapeInt, i: i} }
func Bytes(b []byte) Value  { return Value{shape: ShapeBytes, b: b} }
func String(s string) Value { return Value{shape: ShapeString, s: s} }

func Bool(b bool) Value {
	v := Value{shape: ShapeBool}
	if b {
		v.i = 1
	}
	return v
}

// Shape returns the variant held by v.
func (v Value) Shape() Shape { return v.shape }

// IsNone reports whether v is the explicit none value.
func (v Value) IsNone() bool { return v.shape == ShapeNone }

func (v Value) AsBool() (bool, bool) {
	return v.i != 0, v.shape == ShapeBool
}

func (v Value) AsInt() (int64, bool) {
	return v.i, v.shape == ShapeInt
}

func (v Value) AsBytes() ([]byte, bool) {
	return v.b, v.shape == ShapeBytes
}

func (v Value) AsString() (string, bool) {
	return v.s, v.shape == ShapeString
}

// Equal reports whether v and o hold the same shape and payload. A nil and an
// empty byte slice compare equal.
func (v Value) Equal(o Value) bool {
	if v.shape != o.shape {
		return false
	}
	switch v.shape {
	case ShapeBool, ShapeInt:
		return v.i == o.i
	case ShapeBytes:
		return bytes.Equal(v.b, o.b)
	case ShapeString:
		return v.s == o.s
	default:
		return true
	}
}

// String renders v for logs and the CLI, using the same literal syntax the CLI
// accepts (none, bool:true, int:5, bytes:0x.., str:..).
func (v Value) String() string {
	switch v.shape {
	case ShapeNone:
		return "none"
	case ShapeBool:
		return "bool:" + strconv.FormatBool(v.i != 0)
	case ShapeInt:
		return "int:" + strconv.FormatInt(v.i, 10)
	case ShapeBytes:
		return "bytes:0x" + hex.EncodeToString(v.b)
	case ShapeString:
		return "str:" + v.s
	default:
		return "invalid"
	}
}

// ValueOf converts a host Go value into a Value. Integers of every Go kind are
// widened to int64; unsigned values above math.MaxInt64 fail with an overflow
// error. Floats are accepted when they hold an integral value, which covers
// numbers decoded from JSON.
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return None(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case []byte:
		return Bytes(v), nil
	case string:
		return String(v), nil
	}
	if i, ok := coerceToInt64(x); ok {
		return Int(i), nil
	}
	if integralOutOfRange(x) {
		return Value{}, errors.Overflow(errors.PhaseEncode, nil, x, "int64")
	}
	return Value{}, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
		GoType(typeName(x)).
		Detail("invalid input value type").
		Build()
}

// ValuesOf converts a slice of host values, failing on the first value that
// cannot be represented.
func ValuesOf(xs []any) ([]Value, error) {
	out := make([]Value, len(xs))
	for i, x := range xs {
		v, err := ValueOf(x)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{"value[" + strconv.Itoa(i) + "]"}
			}
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func coerceToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		// 2^63 is representable as a float64 but not as an int64
		if v >= math.MinInt64 && v < math.MaxInt64 && v == math.Trunc(v) {
			return int64(v), true
		}
	case float32:
		f := float64(v)
		if f >= math.MinInt64 && f < math.MaxInt64 && f == math.Trunc(f) {
			return int64(f), true
		}
	}
	return 0, false
}

// integralOutOfRange reports whether a value rejected by coerceToInt64 was
// a whole number that int64 cannot hold, as opposed to a non-integer.
func integralOutOfRange(value any) bool {
	switch v := value.(type) {
	case uint, uint64:
		return true
	case float64:
		return v == math.Trunc(v) && !math.IsInf(v, 0)
	case float32:
		f := float64(v)
		return f == math.Trunc(f) && !math.IsInf(f, 0)
	}
	return false
}

// typeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

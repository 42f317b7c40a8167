package substrate

import (
	"math"
	"testing"

	"github.com/wippyai/substrate-codec/errors"
)

func TestValueConstructors(t *testing.T) {
	if v := None(); v.Shape() != ShapeNone || !v.IsNone() {
		t.Errorf("None() shape = %v", v.Shape())
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("Bool(true).AsBool() = %v, %v", b, ok)
	}
	if b, ok := Bool(false).AsBool(); !ok || b {
		t.Errorf("Bool(false).AsBool() = %v, %v", b, ok)
	}
	if i, ok := Int(-7).AsInt(); !ok || i != -7 {
		t.Errorf("Int(-7).AsInt() = %v, %v", i, ok)
	}
	if b, ok := Bytes([]byte{1, 2}).AsBytes(); !ok || len(b) != 2 {
		t.Errorf("Bytes.AsBytes() = %v, %v", b, ok)
	}
	if s, ok := String("hi").AsString(); !ok || s != "hi" {
		t.Errorf("String.AsString() = %v, %v", s, ok)
	}
	if _, ok := Int(1).AsString(); ok {
		t.Error("AsString on int should fail")
	}

	var zero Value
	if zero.Shape() != ShapeInvalid {
		t.Errorf("zero Value shape = %v, want invalid", zero.Shape())
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"none", None(), None(), true},
		{"bool", Bool(true), Bool(true), true},
		{"bool differs", Bool(true), Bool(false), false},
		{"int", Int(5), Int(5), true},
		{"int vs bool", Int(1), Bool(true), false},
		{"bytes nil vs empty", Bytes(nil), Bytes([]byte{}), true},
		{"bytes differ", Bytes([]byte{1}), Bytes([]byte{2}), false},
		{"string", String("a"), String("a"), true},
		{"string vs bytes", String("a"), Bytes([]byte("a")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{None(), "none"},
		{Bool(true), "bool:true"},
		{Int(-3), "int:-3"},
		{Bytes([]byte{0xde, 0xad}), "bytes:0xdead"},
		{String("x y"), "str:x y"},
		{Value{}, "invalid"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, None()},
		{"bool", true, Bool(true)},
		{"int", 42, Int(42)},
		{"int8", int8(-8), Int(-8)},
		{"uint16", uint16(65535), Int(65535)},
		{"uint64 max int64", uint64(math.MaxInt64), Int(math.MaxInt64)},
		{"float64 integral", float64(1000), Int(1000)},
		{"bytes", []byte{1}, Bytes([]byte{1})},
		{"string", "s", String("s")},
		{"value passthrough", Int(9), Int(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			if err != nil {
				t.Fatalf("ValueOf(%v): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ValueOf(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueOfErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind errors.Kind
	}{
		{"uint64 too large", uint64(math.MaxUint64), errors.KindOverflow},
		{"float too large", 1e30, errors.KindOverflow},
		{"fractional float", 1.5, errors.KindTypeMismatch},
		{"NaN", math.NaN(), errors.KindTypeMismatch},
		{"struct", struct{}{}, errors.KindTypeMismatch},
		{"slice of ints", []int{1}, errors.KindTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValueOf(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestValuesOf(t *testing.T) {
	vals, err := ValuesOf([]any{nil, 1, "a"})
	if err != nil {
		t.Fatalf("ValuesOf: %v", err)
	}
	if len(vals) != 3 || !vals[2].Equal(String("a")) {
		t.Errorf("ValuesOf = %v", vals)
	}

	_, err = ValuesOf([]any{1, map[string]int{}})
	if err == nil {
		t.Fatal("expected error")
	}
	var e *errors.Error
	if !asError(err, &e) || len(e.Path) != 1 || e.Path[0] != "value[1]" {
		t.Errorf("error path = %v", err)
	}
}

func asError(err error, target **errors.Error) bool {
	e, ok := err.(*errors.Error)
	if ok {
		*target = e
	}
	return ok
}

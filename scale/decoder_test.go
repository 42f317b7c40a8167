package scale

import (
	"bytes"
	"math"
	"testing"

	substrate "github.com/wippyai/substrate-codec"
	"github.com/wippyai/substrate-codec/errors"
)

func TestDecodeSingleValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		tag  TypeTag
		hint string
		want substrate.Value
	}{
		{"none", "00", TagNone, "", substrate.None()},
		{"none ignores byte value", "7f", TagNone, "", substrate.None()},
		{"bool false", "00", TagBool, "", substrate.Bool(false)},
		{"bool true", "01", TagBool, "", substrate.Bool(true)},
		{"u8", "ff", TagInt, "u8", substrate.Int(255)},
		{"i8", "ff", TagInt, "i8", substrate.Int(-1)},
		{"u16", "e803", TagInt, "u16", substrate.Int(1000)},
		{"i16", "0080", TagInt, "i16", substrate.Int(math.MinInt16)},
		{"u32", "ffffffff", TagInt, "u32", substrate.Int(math.MaxUint32)},
		{"i32", "ffffffff", TagInt, "i32", substrate.Int(-1)},
		{"u64", "ffffffffffffff7f", TagInt, "u64", substrate.Int(math.MaxInt64)},
		{"i64", "0000000000000080", TagInt, "i64", substrate.Int(math.MinInt64)},
		{"u128", "2a000000000000000000000000000000", TagInt, "u128", substrate.Int(42)},
		{"i128 negative", "feffffffffffffffffffffffffffffff", TagInt, "i128", substrate.Int(-2)},
		{"i128 min int64", "0000000000000080ffffffffffffffff", TagInt, "i128", substrate.Int(math.MinInt64)},
		{"compact", "0101", TagInt, "c", substrate.Int(64)},
		{"compact big", "0300000040", TagInt, "c", substrate.Int(1 << 30)},
		{"bytes", "0c010203", TagBytes, "", substrate.Bytes([]byte{1, 2, 3})},
		{"bytes ignore hint", "00", TagBytes, "u8", substrate.Bytes(nil)},
		{"string", "0c616263", TagString, "", substrate.String("abc")},
		{"string under width hint", "086869", TagString, "u8", substrate.String("hi")},
		{"string under compact hint", "086869", TagString, "c", substrate.String("hi")},
		{"account", alicePub, TagString, "a", substrate.String(aliceSS58)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(mustHex(t, tt.data), []TypeTag{tt.tag}, []string{tt.hint}, 42)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if len(got) != 1 || !got[0].Equal(tt.want) {
				t.Errorf("Decode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeAccountVersion(t *testing.T) {
	d, err := NewDecoderWithVersion(0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := d.Decode(mustHex(t, alicePub), []TypeTag{TagString}, []string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := got[0].AsString(); s != "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5" {
		t.Errorf("account = %s", s)
	}

	if v := NewDecoder().Version(); v != 42 {
		t.Errorf("default version = %d", v)
	}
}

func TestDecodeSequence(t *testing.T) {
	data := []byte{0xe8, 0x03, 0x08, 'h', 'i', 0x01, 0x00, 0x04}
	got, err := Decode(data,
		[]TypeTag{TagInt, TagString, TagBool, TagNone, TagInt},
		[]string{"u16", "", "", "", "c"}, 42)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []substrate.Value{
		substrate.Int(1000),
		substrate.String("hi"),
		substrate.Bool(true),
		substrate.None(),
		substrate.Int(1),
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("field %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		tags  []TypeTag
		hints []string
		kind  errors.Kind
	}{
		{"arity", nil, []TypeTag{TagInt}, nil, errors.KindArity},
		{"unknown tag", []byte{0}, []TypeTag{5}, []string{""}, errors.KindUnsupported},
		{"unknown hint", []byte{0}, []TypeTag{TagInt}, []string{"x"}, errors.KindUnsupported},
		{"int without hint", []byte{0}, []TypeTag{TagInt}, []string{""}, errors.KindUnsupported},
		{"int with account hint", []byte{0}, []TypeTag{TagInt}, []string{"a"}, errors.KindUnsupported},
		{"empty none", nil, []TypeTag{TagNone}, []string{""}, errors.KindOutOfBounds},
		{"bool 2", []byte{2}, []TypeTag{TagBool}, []string{""}, errors.KindInvalidData},
		{"short u32", []byte{1, 2}, []TypeTag{TagInt}, []string{"u32"}, errors.KindOutOfBounds},
		{"u64 above int64", bytes.Repeat([]byte{0xff}, 8), []TypeTag{TagInt}, []string{"u64"}, errors.KindOverflow},
		{"u128 high half", append(make([]byte, 8), 1, 0, 0, 0, 0, 0, 0, 0), []TypeTag{TagInt}, []string{"u128"}, errors.KindOverflow},
		{"u128 low half above int64", append(bytes.Repeat([]byte{0xff}, 8), make([]byte, 8)...), []TypeTag{TagInt}, []string{"u128"}, errors.KindOverflow},
		{"i128 positive above int64", append([]byte{0, 0, 0, 0, 0, 0, 0, 0x80}, make([]byte, 8)...), []TypeTag{TagInt}, []string{"i128"}, errors.KindOverflow},
		{"i128 negative below int64", append(make([]byte, 8), bytes.Repeat([]byte{0xff}, 8)...), []TypeTag{TagInt}, []string{"i128"}, errors.KindOverflow},
		{"compact non-canonical", []byte{0x01, 0x00}, []TypeTag{TagInt}, []string{"c"}, errors.KindInvalidData},
		{"compact above int64", []byte{0x13, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []TypeTag{TagInt}, []string{"c"}, errors.KindOverflow},
		{"bytes length past end", []byte{0x08, 0x01}, []TypeTag{TagBytes}, []string{""}, errors.KindOutOfBounds},
		{"bytes missing prefix", nil, []TypeTag{TagBytes}, []string{""}, errors.KindOutOfBounds},
		{"invalid utf8", []byte{0x04, 0xff}, []TypeTag{TagString}, []string{""}, errors.KindInvalidUTF8},
		{"short account", make([]byte, 31), []TypeTag{TagString}, []string{"a"}, errors.KindOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, tt.tags, tt.hints, 42)
			if err == nil {
				t.Fatalf("expected error, got %v", got)
			}
			if got != nil {
				t.Errorf("partial result returned: %v", got)
			}
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestDecodeErrorPath(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02}, []TypeTag{TagBool, TagBool}, []string{"", ""}, 42)
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error = %v", err)
	}
	if e.Phase != errors.PhaseDecode || len(e.Path) != 1 || e.Path[0] != "field[1]" {
		t.Errorf("error = %v", err)
	}
}

func TestDecodeVersionRange(t *testing.T) {
	for _, v := range []int{-1, 65536} {
		if _, err := Decode(nil, nil, nil, v); !errors.IsKind(err, errors.KindOverflow) {
			t.Errorf("version %d: error = %v, want overflow", v, err)
		}
	}
	if _, err := Decode(nil, nil, nil, 65535); err != nil {
		t.Errorf("version 65535: %v", err)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	data := []byte{0x01, 0xaa}
	fields := []Field{{Tag: TagBool}}

	d := NewDecoder()
	if _, err := d.DecodeFields(data, fields); err != nil {
		t.Errorf("DecodeFields should ignore trailing bytes: %v", err)
	}
	if _, err := d.DecodeAll(data, fields); !errors.IsKind(err, errors.KindInvalidData) {
		t.Errorf("DecodeAll error = %v, want invalid_data", err)
	}
	if got, err := d.DecodeAll(data[:1], fields); err != nil || !got[0].Equal(substrate.Bool(true)) {
		t.Errorf("DecodeAll = %v, %v", got, err)
	}
}

func TestDecodeBytesAreCopied(t *testing.T) {
	data := []byte{0x08, 0x01, 0x02}
	got, err := Decode(data, []TypeTag{TagBytes}, []string{""}, 42)
	if err != nil {
		t.Fatal(err)
	}
	data[1] = 0xff
	if b, _ := got[0].AsBytes(); b[0] != 0x01 {
		t.Errorf("decoded bytes alias input: %x", b)
	}
}

func TestDecodeFieldsInvalidTag(t *testing.T) {
	_, err := NewDecoder().DecodeFields([]byte{0}, []Field{{Tag: 9}})
	if !errors.IsKind(err, errors.KindUnsupported) {
		t.Errorf("error = %v, want unsupported", err)
	}
}

package scale

import (
	"math"
	"testing"

	substrate "github.com/wippyai/substrate-codec"
)

func TestRoundTrip(t *testing.T) {
	ints := map[string][]int64{
		"u8":   {0, 1, math.MaxUint8},
		"i8":   {math.MinInt8, -1, 0, math.MaxInt8},
		"u16":  {0, 1000, math.MaxUint16},
		"i16":  {math.MinInt16, -1000, math.MaxInt16},
		"u32":  {0, 1 << 20, math.MaxUint32},
		"i32":  {math.MinInt32, -1, math.MaxInt32},
		"u64":  {0, 1 << 40, math.MaxInt64},
		"i64":  {math.MinInt64, -1, 0, math.MaxInt64},
		"u128": {0, 1, math.MaxInt64},
		"i128": {math.MinInt64, -1, 0, math.MaxInt64},
		"c":    {0, 63, 64, 16383, 16384, 1<<30 - 1, 1 << 30, 1 << 32, math.MaxInt64},
	}

	for hint, values := range ints {
		for _, n := range values {
			v := substrate.Int(n)
			checkRoundTrip(t, v, TagInt, hint)
		}
	}

	checkRoundTrip(t, substrate.None(), TagNone, "")
	checkRoundTrip(t, substrate.Bool(true), TagBool, "")
	checkRoundTrip(t, substrate.Bool(false), TagBool, "")
	checkRoundTrip(t, substrate.Bytes([]byte{}), TagBytes, "")
	checkRoundTrip(t, substrate.Bytes(make([]byte, 300)), TagBytes, "")
	checkRoundTrip(t, substrate.String(""), TagString, "")
	checkRoundTrip(t, substrate.String("héllo wörld"), TagString, "")
	checkRoundTrip(t, substrate.String(aliceSS58), TagString, "a")
	for _, hint := range []string{"u8", "i128", "c"} {
		checkRoundTrip(t, substrate.String("hi"), TagString, hint)
	}
}

func checkRoundTrip(t *testing.T, v substrate.Value, tag TypeTag, hint string) {
	t.Helper()
	enc, err := Encode([]substrate.Value{v}, []string{hint})
	if err != nil {
		t.Fatalf("Encode(%v, %q): %v", v, hint, err)
	}
	fields, err := Compile([]TypeTag{tag}, []string{hint})
	if err != nil {
		t.Fatalf("Compile(%v, %q): %v", tag, hint, err)
	}
	got, err := NewDecoder().DecodeAll(enc, fields)
	if err != nil {
		t.Fatalf("DecodeAll(%x, %q): %v", enc, hint, err)
	}
	if !got[0].Equal(v) {
		t.Errorf("round trip %q: got %v, want %v", hint, got[0], v)
	}
}

func BenchmarkEncode(b *testing.B) {
	values := []substrate.Value{
		substrate.Int(1000),
		substrate.String("transfer"),
		substrate.Bytes(make([]byte, 64)),
		substrate.Int(1 << 40),
	}
	hints := []Hint{HintU16, HintNone, HintNone, HintCompact}
	enc := NewEncoder()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := enc.EncodeHinted(values, hints); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	fields := []Field{
		{Tag: TagInt, Hint: HintU16},
		{Tag: TagString},
		{Tag: TagBytes},
		{Tag: TagInt, Hint: HintCompact},
	}
	data, err := NewEncoder().EncodeHinted([]substrate.Value{
		substrate.Int(1000),
		substrate.String("transfer"),
		substrate.Bytes(make([]byte, 64)),
		substrate.Int(1 << 40),
	}, []Hint{HintU16, HintNone, HintNone, HintCompact})
	if err != nil {
		b.Fatal(err)
	}
	d := NewDecoder()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := d.DecodeFields(data, fields); err != nil {
			b.Fatal(err)
		}
	}
}

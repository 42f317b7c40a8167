package scale

import (
	"bytes"
	"math"
	"testing"

	"github.com/wippyai/substrate-codec/errors"
)

func TestCompactBoundaries(t *testing.T) {
	tests := []struct {
		v    uint64
		size int
	}{
		{0, 1},
		{63, 1},
		{64, 2},
		{16383, 2},
		{16384, 4},
		{1<<30 - 1, 4},
		{1 << 30, 5},
		{1<<32 - 1, 5},
		{1 << 32, 6},
		{math.MaxInt64, 9},
		{math.MaxUint64, 9},
	}
	for _, tt := range tests {
		enc := AppendCompact(nil, tt.v)
		if len(enc) != tt.size {
			t.Errorf("AppendCompact(%d) = %x, want %d bytes", tt.v, enc, tt.size)
		}
		if CompactSize(tt.v) != tt.size {
			t.Errorf("CompactSize(%d) = %d, want %d", tt.v, CompactSize(tt.v), tt.size)
		}
		got, n, err := DecodeCompact(enc)
		if err != nil {
			t.Fatalf("DecodeCompact(%x): %v", enc, err)
		}
		if got != tt.v || n != tt.size {
			t.Errorf("DecodeCompact(%x) = %d, %d", enc, got, n)
		}
	}
}

func TestCompactKnownBytes(t *testing.T) {
	tests := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x04}},
		{63, []byte{0xfc}},
		{64, []byte{0x01, 0x01}},
		{16383, []byte{0xfd, 0xff}},
		{16384, []byte{0x02, 0x00, 0x01, 0x00}},
		{1 << 30, []byte{0x03, 0x00, 0x00, 0x00, 0x40}},
		{math.MaxUint64, []byte{0x13, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		if got := AppendCompact(nil, tt.v); !bytes.Equal(got, tt.want) {
			t.Errorf("AppendCompact(%d) = %x, want %x", tt.v, got, tt.want)
		}
	}
}

func TestDecodeCompactErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		kind errors.Kind
	}{
		{"empty", nil, errors.KindOutOfBounds},
		{"truncated two byte", []byte{0x01}, errors.KindOutOfBounds},
		{"truncated big", []byte{0x03, 0x00}, errors.KindOutOfBounds},
		{"non-canonical two byte", []byte{0xfd, 0x00}, errors.KindInvalidData},
		{"too wide", []byte{0x17, 1, 2, 3, 4, 5, 6, 7, 8, 9}, errors.KindInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeCompact(tt.data)
			if !errors.IsKind(err, tt.kind) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

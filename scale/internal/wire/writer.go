package wire

import (
	"encoding/binary"
	"math/bits"
)

// Writer appends SCALE primitives to a byte slice.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// WriterOn creates a Writer that appends after the existing contents of dst.
func WriterOn(dst []byte) *Writer {
	return &Writer{buf: dst}
}

// Bytes returns the written bytes. The slice is only valid until the next
// write or Reset.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Cap returns the capacity of the underlying buffer.
func (w *Writer) Cap() int {
	return cap(w.buf)
}

// Reset discards written bytes, keeping the allocation.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteString writes the raw bytes of s.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteU16LE writes a little-endian uint16 (fixed 2 bytes).
func (w *Writer) WriteU16LE(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteU32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteU32LE(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteU64LE writes a little-endian uint64 (fixed 8 bytes).
func (w *Writer) WriteU64LE(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// WriteU128LE writes a little-endian 128-bit integer given as halves.
func (w *Writer) WriteU128LE(lo, hi uint64) {
	w.WriteU64LE(lo)
	w.WriteU64LE(hi)
}

// WriteCompact writes v as a SCALE Compact integer.
func (w *Writer) WriteCompact(v uint64) {
	w.buf = AppendCompact(w.buf, v)
}

// AppendCompact appends the canonical Compact encoding of v to dst.
//
//	0b00  single byte          v < 2^6
//	0b01  two bytes            v < 2^14
//	0b10  four bytes           v < 2^30
//	0b11  (len-4)<<2 | 0b11, then len little-endian bytes
func AppendCompact(dst []byte, v uint64) []byte {
	switch {
	case v < 1<<6:
		return append(dst, byte(v)<<2)
	case v < 1<<14:
		return binary.LittleEndian.AppendUint16(dst, uint16(v<<2|0b01))
	case v < 1<<30:
		return binary.LittleEndian.AppendUint32(dst, uint32(v<<2|0b10))
	default:
		n := 8 - bits.LeadingZeros64(v)/8
		dst = append(dst, byte(n-4)<<2|0b11)
		for i := 0; i < n; i++ {
			dst = append(dst, byte(v>>(8*i)))
		}
		return dst
	}
}

// CompactSize returns the number of bytes AppendCompact writes for v.
func CompactSize(v uint64) int {
	switch {
	case v < 1<<6:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<30:
		return 4
	default:
		return 1 + 8 - bits.LeadingZeros64(v)/8
	}
}

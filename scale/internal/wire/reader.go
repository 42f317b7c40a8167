package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNonCanonical is returned when a Compact integer uses a wider mode
	// than its value requires.
	ErrNonCanonical = errors.New("compact: non-canonical encoding")
	// ErrCompactTooLarge is returned when a Compact integer needs more than
	// 64 bits.
	ErrCompactTooLarge = errors.New("compact: value exceeds 64 bits")
)

// UnderrunError reports a read past the end of the buffer.
type UnderrunError struct {
	Position  int
	Need      int
	Remaining int
}

func (e *UnderrunError) Error() string {
	return fmt.Sprintf("at position %d: need %d bytes, %d remaining", e.Position, e.Need, e.Remaining)
}

// Unwrap lets callers match with errors.Is(err, io.ErrUnexpectedEOF).
func (e *UnderrunError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// Reader is a read cursor over an in-memory SCALE buffer. The position only
// moves forward and never exceeds the buffer length.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, r.underrun(1)
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes returns the next n bytes. The result aliases the underlying
// buffer; callers that keep it must copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, r.underrun(n)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU16LE reads a little-endian uint16 (fixed 2 bytes).
func (r *Reader) ReadU16LE() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadU64LE reads a little-endian uint64 (fixed 8 bytes).
func (r *Reader) ReadU64LE() (uint64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// ReadU128LE reads a little-endian 128-bit integer as its low and high halves.
func (r *Reader) ReadU128LE() (lo, hi uint64, err error) {
	buf, err := r.ReadBytes(16)
	if err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:]), nil
}

// ReadCompact reads a SCALE Compact unsigned integer of at most 64 bits.
// Non-canonical encodings are rejected.
func (r *Reader) ReadCompact() (uint64, error) {
	b0, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch b0 & 0b11 {
	case 0b00:
		return uint64(b0 >> 2), nil

	case 0b01:
		b1, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v := (uint64(b0) | uint64(b1)<<8) >> 2
		if v < 1<<6 {
			return 0, r.wrapError(ErrNonCanonical)
		}
		return v, nil

	case 0b10:
		rest, err := r.ReadBytes(3)
		if err != nil {
			return 0, err
		}
		v := (uint64(b0) | uint64(rest[0])<<8 | uint64(rest[1])<<16 | uint64(rest[2])<<24) >> 2
		if v < 1<<14 {
			return 0, r.wrapError(ErrNonCanonical)
		}
		return v, nil

	default:
		n := int(b0>>2) + 4
		if n > 8 {
			return 0, r.wrapError(ErrCompactTooLarge)
		}
		buf, err := r.ReadBytes(n)
		if err != nil {
			return 0, err
		}
		var v uint64
		for i := n - 1; i >= 0; i-- {
			v = v<<8 | uint64(buf[i])
		}
		if v < 1<<30 || v < 1<<((n-1)*8) {
			return 0, r.wrapError(ErrNonCanonical)
		}
		return v, nil
	}
}

func (r *Reader) underrun(n int) error {
	return &UnderrunError{Position: r.pos, Need: n, Remaining: r.Len()}
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at position %d: %w", r.pos, err)
}

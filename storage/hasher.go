package storage

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/wippyai/substrate-codec/errors"
)

// Hasher is a storage hashing scheme as declared in pallet metadata.
type Hasher uint8

const (
	Identity Hasher = iota
	Twox64Concat
	Twox128
	Twox256
	Blake2_128
	Blake2_128Concat
	Blake2_256
)

var hasherNames = [...]string{
	Identity:         "identity",
	Twox64Concat:     "twox64concat",
	Twox128:          "twox128",
	Twox256:          "twox256",
	Blake2_128:       "blake2_128",
	Blake2_128Concat: "blake2_128concat",
	Blake2_256:       "blake2_256",
}

func (h Hasher) String() string {
	if int(h) < len(hasherNames) {
		return hasherNames[h]
	}
	return "hasher(" + strconv.Itoa(int(h)) + ")"
}

// ParseHasher resolves a hasher by its metadata name.
func ParseHasher(s string) (Hasher, error) {
	for i, name := range hasherNames {
		if name == s {
			return Hasher(i), nil
		}
	}
	return 0, errors.Unsupported(errors.PhaseDerive, "unknown hasher "+strconv.Quote(s))
}

// Concat reports whether h appends the raw input after the digest, which
// keeps the original key recoverable from the storage key.
func (h Hasher) Concat() bool {
	return h == Identity || h == Twox64Concat || h == Blake2_128Concat
}

// Size returns the digest width in bytes, excluding any concatenated input.
func (h Hasher) Size() int {
	switch h {
	case Twox64Concat:
		return 8
	case Twox128, Blake2_128, Blake2_128Concat:
		return 16
	case Twox256, Blake2_256:
		return 32
	}
	return 0
}

// Hash applies h to data.
func (h Hasher) Hash(data []byte) []byte {
	return h.Append(make([]byte, 0, h.Size()+len(data)), data)
}

// Append appends the hash of data to dst.
func (h Hasher) Append(dst, data []byte) []byte {
	switch h {
	case Identity:
		return append(dst, data...)
	case Twox64Concat:
		return append(appendTwox(dst, data, 1), data...)
	case Twox128:
		return appendTwox(dst, data, 2)
	case Twox256:
		return appendTwox(dst, data, 4)
	case Blake2_128:
		return appendBlake2_128(dst, data)
	case Blake2_128Concat:
		return append(appendBlake2_128(dst, data), data...)
	case Blake2_256:
		sum := blake2b.Sum256(data)
		return append(dst, sum[:]...)
	}
	panic("storage: unknown hasher " + h.String())
}

// Valid reports whether h is a known hasher.
func (h Hasher) Valid() bool {
	return int(h) < len(hasherNames)
}

// appendTwox appends n little-endian xxhash64 digests of data, seeded 0..n-1.
func appendTwox(dst, data []byte, n int) []byte {
	for seed := 0; seed < n; seed++ {
		d := xxhash.NewWithSeed(uint64(seed))
		_, _ = d.Write(data)
		dst = binary.LittleEndian.AppendUint64(dst, d.Sum64())
	}
	return dst
}

func appendBlake2_128(dst, data []byte) []byte {
	d, err := blake2b.New(16, nil)
	if err != nil {
		// only fails for sizes outside 1..64 or oversized keys
		panic(err)
	}
	_, _ = d.Write(data)
	return d.Sum(dst)
}

package ss58

import (
	"bytes"

	"github.com/mr-tron/base58"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"github.com/wippyai/substrate-codec/errors"
	"github.com/wippyai/substrate-codec/internal/hexutil"
)

// Family selects the key width of the public key being rendered.
type Family uint8

const (
	Sr25519 Family = iota
	Ed25519
	Ecdsa
)

func (f Family) String() string {
	switch f {
	case Sr25519:
		return "sr25519"
	case Ed25519:
		return "ed25519"
	case Ecdsa:
		return "ecdsa"
	}
	return "unknown"
}

// KeySize returns the raw public key width for f.
func (f Family) KeySize() int {
	if f == Ecdsa {
		return 33
	}
	return AccountSize
}

const (
	// DefaultVersion is the generic Substrate network prefix.
	DefaultVersion = 42
	// MaxVersion is the largest version accepted at the API boundary.
	MaxVersion = 1<<16 - 1
	// AccountSize is the width of an AccountId32.
	AccountSize = 32

	checksumLen = 2
	identMask   = 0b0011_1111_1111_1111
)

var checksumContext = []byte("SS58PRE")

// ValidateVersion checks that version fits in 16 bits.
func ValidateVersion(version int) (uint16, error) {
	if version < 0 || version > MaxVersion {
		return 0, errors.Overflow(errors.PhaseAddress, nil, version, "u16")
	}
	return uint16(version), nil
}

// Encode renders key as an SS58 identifier for the given network version.
func Encode(key []byte, family Family, version int) (string, error) {
	v, err := ValidateVersion(version)
	if err != nil {
		return "", err
	}
	if want := family.KeySize(); len(key) != want {
		return "", errors.New(errors.PhaseAddress, errors.KindInvalidData).
			WireType(family.String()).
			Value(len(key)).
			Detail("invalid key length %d, want %d", len(key), want).
			Build()
	}

	payload := appendPrefix(make([]byte, 0, 2+len(key)+checksumLen), v)
	payload = append(payload, key...)
	sum := checksum(payload)
	payload = append(payload, sum[:checksumLen]...)
	return base58.Encode(payload), nil
}

// Decode parses an SS58 identifier and returns the raw key (32 or 33 bytes)
// together with the network version embedded in it.
func Decode(s string) ([]byte, uint16, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return nil, 0, errors.Wrap(errors.PhaseAddress, errors.KindInvalidData, err, "invalid base58")
	}
	if len(data) < 2 {
		return nil, 0, errors.InvalidData(errors.PhaseAddress, nil, "identifier too short")
	}

	prefixLen, version, err := parsePrefix(data)
	if err != nil {
		return nil, 0, err
	}

	bodyLen := len(data) - prefixLen - checksumLen
	if bodyLen != AccountSize && bodyLen != Ecdsa.KeySize() {
		return nil, 0, errors.New(errors.PhaseAddress, errors.KindInvalidData).
			Value(bodyLen).
			Detail("invalid key length %d", bodyLen).
			Build()
	}

	body := data[:prefixLen+bodyLen]
	want := checksum(body)
	got := data[prefixLen+bodyLen:]
	if !bytes.Equal(got, want[:checksumLen]) {
		Logger().Debug("ss58 checksum mismatch",
			zap.String("address", s),
			zap.Binary("got", got))
		return nil, 0, errors.Checksum(errors.PhaseAddress, got, want[:checksumLen])
	}

	key := make([]byte, bodyLen)
	copy(key, data[prefixLen:])
	return key, version, nil
}

// DecodeAccount parses a 32-byte account identifier. Besides SS58 text it
// accepts 64 hex digits with an optional 0x prefix.
func DecodeAccount(s string) ([]byte, error) {
	if h := hexutil.TrimPrefix(s); len(h) == 2*AccountSize {
		key, err := hexutil.Decode(h)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseAddress, errors.KindInvalidData, err, "invalid hex account")
		}
		return key, nil
	}

	key, _, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(key) != AccountSize {
		return nil, errors.New(errors.PhaseAddress, errors.KindInvalidData).
			WireType("AccountId32").
			Value(len(key)).
			Detail("invalid account length %d", len(key)).
			Build()
	}
	return key, nil
}

// appendPrefix appends the 1 or 2 byte network prefix of version.
func appendPrefix(dst []byte, version uint16) []byte {
	ident := version & identMask
	if ident < 64 {
		return append(dst, byte(ident))
	}
	first := byte((ident&0b1111_1100)>>2) | 0b0100_0000
	second := byte(ident>>8) | byte(ident&0b11)<<6
	return append(dst, first, second)
}

func parsePrefix(data []byte) (int, uint16, error) {
	switch b := data[0]; {
	case b < 64:
		return 1, uint16(b), nil
	case b < 128:
		lower := data[0]<<2 | data[1]>>6
		upper := data[1] & 0b0011_1111
		return 2, uint16(lower) | uint16(upper)<<8, nil
	default:
		return 0, 0, errors.New(errors.PhaseAddress, errors.KindInvalidData).
			Value(b).
			Detail("invalid prefix byte 0x%02x", b).
			Build()
	}
}

func checksum(payload []byte) [blake2b.Size]byte {
	buf := make([]byte, 0, len(checksumContext)+len(payload))
	buf = append(buf, checksumContext...)
	buf = append(buf, payload...)
	return blake2b.Sum512(buf)
}

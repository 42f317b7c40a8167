// Package hexutil decodes hex text for the address and storage packages.
package hexutil

import (
	"fmt"

	"github.com/templexxx/xhex"
)

// InvalidByteError reports a character that is not a hex digit.
type InvalidByteError struct {
	Pos  int
	Byte byte
}

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("invalid hex digit %q at position %d", e.Byte, e.Pos)
}

// OddLengthError reports hex text with an odd number of digits.
type OddLengthError int

func (e OddLengthError) Error() string {
	return fmt.Sprintf("odd length hex (%d digits)", int(e))
}

// TrimPrefix strips a leading 0x or 0X.
func TrimPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// Check returns an error for the first character of h that is not a hex
// digit. xhex skips this check on its vector path.
func Check(h string) error {
	for i := 0; i < len(h); i++ {
		if !isHex(h[i]) {
			return InvalidByteError{Pos: i, Byte: h[i]}
		}
	}
	return nil
}

// Decode decodes h, which carries no prefix.
func Decode(h string) ([]byte, error) {
	if len(h)%2 != 0 {
		return nil, OddLengthError(len(h))
	}
	if err := Check(h); err != nil {
		return nil, err
	}
	out := make([]byte, len(h)/2)
	if len(out) == 0 {
		return out, nil
	}
	if err := xhex.Decode(out, []byte(h)); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode returns the 0x prefixed lowercase hex form of b.
func Encode(b []byte) string {
	out := make([]byte, 2+2*len(b))
	out[0], out[1] = '0', 'x'
	if len(b) > 0 {
		xhex.Encode(out[2:], b)
	}
	return string(out)
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

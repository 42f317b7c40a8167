package scale

import "github.com/wippyai/substrate-codec/scale/internal/wire"

// AppendCompact appends the SCALE Compact encoding of v to dst.
func AppendCompact(dst []byte, v uint64) []byte {
	return wire.AppendCompact(dst, v)
}

// CompactSize returns the number of bytes AppendCompact writes for v.
func CompactSize(v uint64) int {
	return wire.CompactSize(v)
}

// DecodeCompact reads a Compact integer from the start of data and returns
// the value and the number of bytes consumed.
func DecodeCompact(data []byte) (uint64, int, error) {
	r := wire.NewReader(data)
	v, err := r.ReadCompact()
	if err != nil {
		return 0, 0, readError(err, nil)
	}
	return v, r.Position(), nil
}

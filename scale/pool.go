package scale

import (
	"sync"

	"github.com/wippyai/substrate-codec/scale/internal/wire"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 64 << 10
	poolInitCap = 256
)

// scratch buffer pool for encoding
var writerPool = sync.Pool{
	New: func() any {
		return wire.NewWriter(poolInitCap)
	},
}

func getWriter() *wire.Writer {
	w := writerPool.Get().(*wire.Writer)
	w.Reset()
	return w
}

func putWriter(w *wire.Writer) {
	if w == nil || w.Cap() > poolMaxCap {
		return // reject oversized
	}
	writerPool.Put(w)
}

package handler

import (
	"bytes"
	"sync"
)

// bufferPool recycles encode buffers across responses. Game payloads are a
// few hundred bytes at most, so 256 covers the common case without a regrow.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

package handler

import (
	"bytes"
	"sync"
)

// maxPooledBufferSize keeps oversized buffers out of the pool so one large
// browse response does not pin its allocation for the process lifetime.
const maxPooledBufferSize = 64 * 1024

// bufferPool reuses bytes.Buffers across JSON response encodes
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

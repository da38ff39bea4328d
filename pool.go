package wcwidth

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Expanding and padding strings needs a short-lived output buffer per call.
// To avoid repeated allocation of growing buffers we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return bytes.NewBuffer(make([]byte, 0, 128)), nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowBuffer returns an empty buffer from the pool.
func borrowBuffer() *bytes.Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow buffer from pool: %v", err)
		return &bytes.Buffer{}
	}
	buf := o.(*bytes.Buffer)
	buf.Reset()
	return buf
}

// releaseBuffer clears buf and puts it back into the pool.
func releaseBuffer(buf *bytes.Buffer) {
	buf.Reset()
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}

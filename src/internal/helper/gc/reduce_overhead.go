// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
	ReadFrom(r io.Reader) (int64, error)
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put resets b and returns it to the pool. Buffers that did not come from a
// bytebufferpool are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		buf.Reset()
		p.p.Put(buf)
	}
}

// Default is the buffer pool shared across the module.
//
// Bytes returned by a pooled buffer are only valid until the buffer is put
// back, so callers copy out anything that must outlive the call:
//
//	buf := gc.Default.Get()
//	defer gc.Default.Put(buf)
//
//	buf.WriteString(payload)
//	buf.WriteByte(0)
//	owned := bytes.Clone(buf.Bytes())
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// With runs fn with a pooled buffer and returns it to [Default] afterwards.
func With(fn func(buf Buffer) error) error {
	buf := Default.Get()
	defer Default.Put(buf)
	return fn(buf)
}

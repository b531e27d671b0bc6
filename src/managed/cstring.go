// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package managed

import (
	"bytes"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/cstr-exchange/src/cstr"
	"github.com/H0llyW00dzZ/cstr-exchange/src/internal/helper/gc"
)

// CString is a ManagedOwned terminated string. The zero value is not usable;
// construct one with [New], [FromBytesWithSentinel] or [ReadFrom].
type CString struct {
	buf []byte // content followed by exactly one sentinel
}

// New copies s into a terminated buffer. s must not contain a sentinel byte.
func New(s string) (*CString, error) {
	buf, err := cstr.Terminate(make([]byte, 0, len(s)+1), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("managed: %w", err)
	}
	return &CString{buf: buf}, nil
}

// FromBytesWithSentinel copies b, which must already end with its one and
// only sentinel byte.
func FromBytesWithSentinel(b []byte) (*CString, error) {
	if err := cstr.Validate(b); err != nil {
		return nil, fmt.Errorf("managed: %w", err)
	}
	return &CString{buf: bytes.Clone(b)}, nil
}

// ReadFrom reads at most limit bytes from r and terminates them.
func ReadFrom(r io.Reader, limit int64) (*CString, error) {
	var c *CString
	err := gc.With(func(buf gc.Buffer) error {
		if _, err := buf.ReadFrom(io.LimitReader(r, limit)); err != nil {
			return fmt.Errorf("managed: reading source: %w", err)
		}
		data, err := cstr.Terminate(make([]byte, 0, buf.Len()+1), buf.Bytes())
		if err != nil {
			return fmt.Errorf("managed: %w", err)
		}
		c = &CString{buf: data}
		return nil
	})
	return c, err
}

// String returns the content without the sentinel.
func (c *CString) String() string {
	if c == nil {
		return ""
	}
	return string(c.buf[:len(c.buf)-1])
}

// Len returns the content length, sentinel excluded.
func (c *CString) Len() int {
	if c == nil {
		return 0
	}
	return len(c.buf) - 1
}

// BytesWithSentinel returns a copy of the full buffer.
func (c *CString) BytesWithSentinel() []byte {
	if c == nil {
		return nil
	}
	return bytes.Clone(c.buf)
}

// Provenance returns ManagedOwned, or None for a nil CString.
func (c *CString) Provenance() cstr.Provenance {
	if c == nil {
		return cstr.None
	}
	return cstr.ManagedOwned
}

// Lend hands fn a read-only view of c that is valid only until fn returns.
// A nil CString lends a null view.
func (c *CString) Lend(fn func(Borrowed)) {
	if c == nil {
		fn(Borrowed{})
		return
	}
	l := &lease{data: c.buf}
	defer l.expired.Store(true)
	fn(Borrowed{lease: l})
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package native

import (
	"bytes"

	"github.com/H0llyW00dzZ/cstr-exchange/src/cstr"
	"github.com/H0llyW00dzZ/cstr-exchange/src/internal/heap"
)

// Releasable is implemented by handles the receiver must release.
// The unexported method keeps the set closed to [*HeapString] and
// [*MalformedBuffer].
type Releasable interface {
	releaseBlock() *heap.Block
}

// StaticString is a process-lifetime, read-only string. It is never
// released and does not implement [Releasable].
type StaticString struct {
	data []byte // content and sentinel; shared, never written
}

// Text returns the content.
func (s StaticString) Text() string {
	if len(s.data) == 0 {
		return ""
	}
	return string(s.data[:len(s.data)-1])
}

// Len returns the content length, sentinel excluded.
func (s StaticString) Len() int { return max(0, len(s.data)-1) }

// BytesWithSentinel returns a copy of the full extent.
func (s StaticString) BytesWithSentinel() []byte { return bytes.Clone(s.data) }

// Provenance returns StaticConst, or None for the zero value.
func (s StaticString) Provenance() cstr.Provenance {
	if s.data == nil {
		return cstr.None
	}
	return cstr.StaticConst
}

// HeapString is an exclusively owned NativeHeap string. Reads succeed until
// the handle is released; afterwards they return a [cstr.OwnershipError].
type HeapString struct {
	heap  *heap.Heap
	block *heap.Block
}

func (h *HeapString) releaseBlock() *heap.Block {
	if h == nil {
		return nil
	}
	return h.block
}

// Text returns a copy of the content.
func (h *HeapString) Text() (string, error) {
	raw, err := h.BytesWithSentinel()
	if err != nil {
		return "", err
	}
	content, err := cstr.Content(raw)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Len returns the content length, sentinel excluded.
func (h *HeapString) Len() (int, error) {
	raw, err := h.BytesWithSentinel()
	if err != nil {
		return 0, err
	}
	return cstr.ScanLen(raw)
}

// BytesWithSentinel returns a copy of the full extent.
func (h *HeapString) BytesWithSentinel() ([]byte, error) {
	if h == nil {
		return nil, cstr.ErrNullInput
	}
	return h.heap.Read(h.block, "Read")
}

// ID returns the heap ledger identifier.
// A nil handle reports 0.
func (h *HeapString) ID() uint64 {
	if h == nil {
		return 0
	}
	return h.block.ID()
}

// Released reports whether the handle has been released.
// A nil handle reports false.
func (h *HeapString) Released() bool {
	if h == nil {
		return false
	}
	return h.block.Released()
}

// Provenance returns NativeHeap, or None for a nil handle.
func (h *HeapString) Provenance() cstr.Provenance {
	if h == nil {
		return cstr.None
	}
	return cstr.NativeHeap
}

// MalformedBuffer is the unterminated fixture produced by
// [Module.MalformedFixture]. It has no sentinel-scanning accessor.
type MalformedBuffer struct {
	heap  *heap.Heap
	block *heap.Block
}

func (b *MalformedBuffer) releaseBlock() *heap.Block {
	if b == nil {
		return nil
	}
	return b.block
}

// Extent returns the allocation size in bytes.
// A nil buffer reports 0.
func (b *MalformedBuffer) Extent() int {
	if b == nil {
		return 0
	}
	return b.block.Size()
}

// ReadBounded returns at most limit bytes, stopping early at a sentinel. When
// no sentinel lies within the bytes read it also returns
// [cstr.ErrMissingTerminator].
func (b *MalformedBuffer) ReadBounded(limit int) (string, error) {
	if b == nil {
		return "", cstr.ErrNullInput
	}
	raw, err := b.heap.ReadBounded(b.block, limit, "ReadBounded")
	if err != nil {
		return "", err
	}
	n, err := cstr.ScanLen(raw)
	return string(raw[:n]), err
}

// Provenance returns Malformed, or None for a nil buffer.
func (b *MalformedBuffer) Provenance() cstr.Provenance {
	if b == nil {
		return cstr.None
	}
	return cstr.Malformed
}

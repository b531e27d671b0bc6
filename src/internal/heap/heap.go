// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package heap

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/H0llyW00dzZ/cstr-exchange/src/cstr"
)

// Block is one native allocation. Its fields are guarded by the owning
// heap's mutex; callers only hold the pointer.
type Block struct {
	heap       *Heap
	id         uint64
	provenance cstr.Provenance
	data       []byte
	size       int
	released   bool
}

// ID returns the ledger identifier of the block.
func (b *Block) ID() uint64 { return b.id }

// Provenance returns NativeHeap for terminated strings and Malformed for the
// unterminated fixture.
func (b *Block) Provenance() cstr.Provenance { return b.provenance }

// Size returns the extent in bytes, sentinel included.
func (b *Block) Size() int { return b.size }

// Released reports whether the block has been released.
func (b *Block) Released() bool {
	b.heap.mu.Lock()
	defer b.heap.mu.Unlock()
	return b.released
}

// BlockInfo is a snapshot of a live block.
type BlockInfo struct {
	ID         uint64
	Provenance cstr.Provenance
	Size       int
}

// Stats summarises the ledger.
type Stats struct {
	Allocator   string
	Allocations uint64
	Releases    uint64
	Failures    uint64
	Violations  uint64
	LiveBlocks  int
	LiveBytes   int
}

// Heap pairs an [Allocator] with a ledger of live blocks.
//
// Heap is safe for concurrent use by multiple goroutines. It does not make
// concurrent release of one handle meaningful; it only guarantees the second
// release is reported instead of reaching the allocator.
type Heap struct {
	mu        sync.Mutex
	allocator Allocator
	nextID    uint64
	live      map[uint64]*Block
	stats     Stats
}

// New creates a heap over a. A nil allocator selects [Default].
func New(a Allocator) *Heap {
	if a == nil {
		a = Default()
	}
	return &Heap{
		allocator: a,
		live:      make(map[uint64]*Block),
		stats:     Stats{Allocator: a.Name()},
	}
}

// AllocString allocates len(payload)+1 bytes, copies payload in and writes
// the sentinel after it. The extent is sealed before the block is returned.
func (h *Heap) AllocString(payload []byte) (*Block, error) {
	return h.allocate(len(payload)+1, cstr.NativeHeap, func(dst []byte) error {
		_, err := cstr.Terminate(dst[:0], payload)
		return err
	})
}

// AllocUnterminated allocates exactly len(payload) bytes and fills all of
// them, leaving no room for a sentinel. It exists for the malformed-producer
// fixture only.
func (h *Heap) AllocUnterminated(payload []byte) (*Block, error) {
	return h.allocate(len(payload), cstr.Malformed, func(dst []byte) error {
		copy(dst, payload)
		return nil
	})
}

func (h *Heap) allocate(size int, provenance cstr.Provenance, fill func([]byte) error) (*Block, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := h.allocator.Alloc(size)
	if err != nil {
		h.stats.Failures++
		return nil, &cstr.AllocationError{Size: size, Err: err}
	}

	if err := fill(data); err != nil {
		return nil, errors.Join(err, h.allocator.Free(data))
	}
	if err := h.allocator.Seal(data); err != nil {
		return nil, errors.Join(err, h.allocator.Free(data))
	}

	h.nextID++
	b := &Block{
		heap:       h,
		id:         h.nextID,
		provenance: provenance,
		data:       data,
		size:       size,
	}
	h.live[b.id] = b
	h.stats.Allocations++
	return b, nil
}

// Read returns a copy of the block's full extent.
func (h *Heap) Read(b *Block, op string) ([]byte, error) {
	if b == nil {
		return nil, cstr.ErrNullInput
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.checkLocked(b, op, cstr.UseAfterRelease); err != nil {
		return nil, err
	}
	return slices.Clone(b.data[:b.size]), nil
}

// ReadBounded returns a copy of at most limit bytes from the start of the
// block. It never reads past the block's extent.
func (h *Heap) ReadBounded(b *Block, limit int, op string) ([]byte, error) {
	if b == nil {
		return nil, cstr.ErrNullInput
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.checkLocked(b, op, cstr.UseAfterRelease); err != nil {
		return nil, err
	}
	limit = max(0, min(limit, b.size))
	return slices.Clone(b.data[:limit]), nil
}

// Free releases b back to the allocator that produced it. A block from
// another heap, or one already released, is rejected with a
// [cstr.OwnershipError] and never reaches the allocator. If the allocator
// fails to free the extent, the block stays live and can be released again.
func (h *Heap) Free(b *Block, op string) error {
	if b == nil {
		return cstr.ErrNullInput
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.checkLocked(b, op, cstr.DoubleRelease); err != nil {
		return err
	}

	if err := h.allocator.Free(b.data); err != nil {
		return fmt.Errorf("heap: release #%d: %w", b.id, err)
	}

	b.released = true
	b.data = nil
	delete(h.live, b.id)
	h.stats.Releases++
	return nil
}

// checkLocked validates that b belongs to h and is still live. released is
// the violation reported for a block that has already been freed.
func (h *Heap) checkLocked(b *Block, op string, released cstr.Violation) error {
	if b.heap != h {
		h.stats.Violations++
		return &cstr.OwnershipError{Op: op, Provenance: b.provenance, ID: b.id, Violation: cstr.ForeignAllocator}
	}
	if b.released {
		h.stats.Violations++
		return &cstr.OwnershipError{Op: op, Provenance: b.provenance, ID: b.id, Violation: released}
	}
	return nil
}

// Stats returns a snapshot of the ledger counters.
func (h *Heap) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.stats
	s.LiveBlocks = len(h.live)
	for _, b := range h.live {
		s.LiveBytes += b.size
	}
	return s
}

// Live returns the live blocks ordered by ID.
func (h *Heap) Live() []BlockInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	infos := make([]BlockInfo, 0, len(h.live))
	for _, b := range h.live {
		infos = append(infos, BlockInfo{ID: b.id, Provenance: b.provenance, Size: b.size})
	}
	slices.SortFunc(infos, func(a, b BlockInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

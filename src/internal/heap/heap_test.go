// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package heap

import (
	"errors"
	"sync"
	"syscall"
	"testing"

	"github.com/H0llyW00dzZ/cstr-exchange/src/cstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocators(t *testing.T) []Allocator {
	t.Helper()
	list := []Allocator{GoAllocator{}}
	if a, err := newMmap(); err == nil {
		list = append(list, a)
	}
	return list
}

func TestAllocString(t *testing.T) {
	for _, a := range allocators(t) {
		t.Run(a.Name(), func(t *testing.T) {
			h := New(a)

			b, err := h.AllocString([]byte("abc"))
			require.NoError(t, err)
			assert.Equal(t, cstr.NativeHeap, b.Provenance())
			assert.Equal(t, 4, b.Size())

			raw, err := h.Read(b, "test")
			require.NoError(t, err)
			assert.Equal(t, []byte{'a', 'b', 'c', 0}, raw)
			assert.NoError(t, cstr.Validate(raw))

			require.NoError(t, h.Free(b, "test"))
			assert.True(t, b.Released())
		})
	}
}

func TestAllocString_InteriorSentinel(t *testing.T) {
	h := New(GoAllocator{})

	_, err := h.AllocString([]byte("a\x00b"))
	require.ErrorIs(t, err, cstr.ErrInteriorSentinel)

	stats := h.Stats()
	assert.Zero(t, stats.Allocations, "rejected payload must not be recorded")
	assert.Zero(t, stats.LiveBlocks)
}

func TestAllocUnterminated(t *testing.T) {
	for _, a := range allocators(t) {
		t.Run(a.Name(), func(t *testing.T) {
			h := New(a)

			b, err := h.AllocUnterminated([]byte("abcd"))
			require.NoError(t, err)
			assert.Equal(t, cstr.Malformed, b.Provenance())
			assert.Equal(t, 4, b.Size())

			raw, err := h.Read(b, "test")
			require.NoError(t, err)
			assert.ErrorIs(t, cstr.Validate(raw), cstr.ErrMissingTerminator)

			require.NoError(t, h.Free(b, "test"))
		})
	}
}

func TestAllocFailure(t *testing.T) {
	h := New(FailingAllocator{})

	b, err := h.AllocString([]byte("Dynamic string from C"))
	assert.Nil(t, b)
	require.ErrorIs(t, err, cstr.ErrAllocationFailure)
	assert.ErrorIs(t, err, syscall.ENOMEM)

	var aerr *cstr.AllocationError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, 22, aerr.Size)

	assert.Equal(t, uint64(1), h.Stats().Failures)
}

func TestAllocFailure_CustomError(t *testing.T) {
	boom := errors.New("boom")
	h := New(FailingAllocator{Err: boom})

	_, err := h.AllocString([]byte("x"))
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, cstr.ErrAllocationFailure)
}

func TestFree_DoubleRelease(t *testing.T) {
	h := New(GoAllocator{})
	b, err := h.AllocString([]byte("abc"))
	require.NoError(t, err)

	require.NoError(t, h.Free(b, "Release"))

	err = h.Free(b, "Release")
	require.ErrorIs(t, err, cstr.ErrOwnershipViolation)

	var oerr *cstr.OwnershipError
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, cstr.DoubleRelease, oerr.Violation)
	assert.Equal(t, b.ID(), oerr.ID)

	stats := h.Stats()
	assert.Equal(t, uint64(1), stats.Releases)
	assert.Equal(t, uint64(1), stats.Violations)
}

func TestFree_ForeignHeap(t *testing.T) {
	owner := New(GoAllocator{})
	other := New(GoAllocator{})

	b, err := owner.AllocString([]byte("abc"))
	require.NoError(t, err)

	err = other.Free(b, "Release")
	var oerr *cstr.OwnershipError
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, cstr.ForeignAllocator, oerr.Violation)

	assert.False(t, b.Released(), "foreign release must not touch the block")
	assert.NoError(t, owner.Free(b, "Release"))
}

func TestFree_Null(t *testing.T) {
	h := New(GoAllocator{})
	assert.ErrorIs(t, h.Free(nil, "Release"), cstr.ErrNullInput)
	_, err := h.Read(nil, "Read")
	assert.ErrorIs(t, err, cstr.ErrNullInput)
}

// faultyAllocator is a Go heap allocator whose Seal and Free can be made to fail.
type faultyAllocator struct {
	GoAllocator
	sealErr error
	freeErr error
	freed   int
}

func (f *faultyAllocator) Seal([]byte) error { return f.sealErr }

func (f *faultyAllocator) Free([]byte) error {
	if f.freeErr != nil {
		return f.freeErr
	}
	f.freed++
	return nil
}

func TestAllocString_SealFailure(t *testing.T) {
	a := &faultyAllocator{sealErr: syscall.EACCES, freeErr: syscall.EINVAL}
	h := New(a)

	b, err := h.AllocString([]byte("abc"))
	assert.Nil(t, b)
	assert.ErrorIs(t, err, syscall.EACCES)
	assert.ErrorIs(t, err, syscall.EINVAL, "the failed release of the unsealed extent is reported too")
	assert.Zero(t, h.Stats().Allocations)
}

func TestFree_AllocatorFailure(t *testing.T) {
	a := &faultyAllocator{}
	h := New(a)

	b, err := h.AllocString([]byte("abc"))
	require.NoError(t, err)

	a.freeErr = syscall.EINVAL
	err = h.Free(b, "Release")
	require.ErrorIs(t, err, syscall.EINVAL)
	assert.False(t, b.Released(), "a block the allocator did not free stays live")
	assert.Equal(t, 1, h.Stats().LiveBlocks)
	assert.Zero(t, h.Stats().Releases)

	raw, err := h.Read(b, "Read")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b', 'c', 0}, raw)

	a.freeErr = nil
	require.NoError(t, h.Free(b, "Release"))
	assert.True(t, b.Released())
	assert.Equal(t, 1, a.freed)
	assert.Zero(t, h.Stats().LiveBlocks)
}

func TestRead_AfterRelease(t *testing.T) {
	for _, a := range allocators(t) {
		t.Run(a.Name(), func(t *testing.T) {
			h := New(a)
			b, err := h.AllocString([]byte("abc"))
			require.NoError(t, err)
			require.NoError(t, h.Free(b, "Release"))

			_, err = h.Read(b, "Read")
			var oerr *cstr.OwnershipError
			require.ErrorAs(t, err, &oerr)
			assert.Equal(t, cstr.UseAfterRelease, oerr.Violation)

			_, err = h.ReadBounded(b, 2, "Read")
			assert.ErrorIs(t, err, cstr.ErrOwnershipViolation)
		})
	}
}

func TestReadBounded(t *testing.T) {
	h := New(GoAllocator{})
	b, err := h.AllocUnterminated([]byte("abcd"))
	require.NoError(t, err)
	defer h.Free(b, "test")

	tests := []struct {
		name  string
		limit int
		want  string
	}{
		{name: "within extent", limit: 2, want: "ab"},
		{name: "exact extent", limit: 4, want: "abcd"},
		{name: "beyond extent is clamped", limit: 64, want: "abcd"},
		{name: "negative", limit: -1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.ReadBounded(b, tt.limit, "test")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestStatsAndLive(t *testing.T) {
	h := New(GoAllocator{})

	first, err := h.AllocString([]byte("one"))
	require.NoError(t, err)
	second, err := h.AllocString([]byte("three"))
	require.NoError(t, err)
	third, err := h.AllocUnterminated([]byte("abcd"))
	require.NoError(t, err)

	require.NoError(t, h.Free(second, "Release"))

	stats := h.Stats()
	assert.Equal(t, NameGo, stats.Allocator)
	assert.Equal(t, uint64(3), stats.Allocations)
	assert.Equal(t, uint64(1), stats.Releases)
	assert.Equal(t, 2, stats.LiveBlocks)
	assert.Equal(t, 4+4, stats.LiveBytes)

	assert.Equal(t, []BlockInfo{
		{ID: first.ID(), Provenance: cstr.NativeHeap, Size: 4},
		{ID: third.ID(), Provenance: cstr.Malformed, Size: 4},
	}, h.Live())
}

func TestFree_ConcurrentSingleWinner(t *testing.T) {
	h := New(GoAllocator{})
	b, err := h.AllocString([]byte("contended"))
	require.NoError(t, err)

	const releasers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < releasers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if h.Free(b, "Release") == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes, "exactly one release may succeed")
	assert.Equal(t, uint64(releasers-1), h.Stats().Violations)
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: NameGo, want: NameGo},
		{name: NameFailing, want: NameFailing},
		{name: "", want: Default().Name()},
		{name: "jemalloc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ByName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Name())
		})
	}
}

func TestNew_NilAllocator(t *testing.T) {
	h := New(nil)
	assert.Equal(t, Default().Name(), h.Stats().Allocator)
}

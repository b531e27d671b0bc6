// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/cstr-exchange/src/cstr"
	"github.com/H0llyW00dzZ/cstr-exchange/src/managed"
	"github.com/H0llyW00dzZ/cstr-exchange/src/native"
)

// Result is the outcome of one case.
type Result struct {
	Name       string
	Provenance cstr.Provenance
	Want       string
	Got        string
	OK         bool
}

// Case is one ownership path.
type Case struct {
	Name       string
	Provenance cstr.Provenance
	Want       string
	Run        func(m *native.Module) (got string, ok bool)
}

// Cases returns the full suite in execution order.
func Cases() []Case {
	return []Case{
		{
			Name:       "pass/from-string",
			Provenance: cstr.ManagedOwned,
			Want:       "presented",
			Run: func(m *native.Module) (string, bool) {
				c, err := managed.New("A String that is owned by Go")
				if err != nil {
					return err.Error(), false
				}
				return lend(m, c)
			},
		},
		{
			Name:       "pass/from-bytes-with-sentinel",
			Provenance: cstr.ManagedOwned,
			Want:       "presented",
			Run: func(m *native.Module) (string, bool) {
				c, err := managed.FromBytesWithSentinel([]byte("A byte slice with nul that is owned by Go\x00"))
				if err != nil {
					return err.Error(), false
				}
				return lend(m, c)
			},
		},
		{
			Name:       "pass/read-from-stream",
			Provenance: cstr.ManagedOwned,
			Want:       "presented",
			Run: func(m *native.Module) (string, bool) {
				c, err := managed.ReadFrom(strings.NewReader("A stream that is owned by Go"), 1<<10)
				if err != nil {
					return err.Error(), false
				}
				return lend(m, c)
			},
		},
		{
			Name:       "pass/null",
			Provenance: cstr.None,
			Want:       "no-op",
			Run: func(m *native.Module) (string, bool) {
				if err := m.Pass(managed.Null); err != nil {
					return err.Error(), false
				}
				return "no-op", true
			},
		},
		{
			Name:       "pass/missing-terminator",
			Provenance: cstr.ManagedOwned,
			Want:       "rejected",
			Run: func(*native.Module) (string, bool) {
				_, err := managed.FromBytesWithSentinel([]byte("The byte slice must end with a nul character"))
				return rejected(err, cstr.ErrMissingTerminator)
			},
		},
		{
			Name:       "pass/interior-sentinel",
			Provenance: cstr.ManagedOwned,
			Want:       "rejected",
			Run: func(*native.Module) (string, bool) {
				_, err := managed.New("The byte slice must not contain\x00 nul")
				return rejected(err, cstr.ErrInteriorSentinel)
			},
		},
		{
			Name:       "pass/retained-view",
			Provenance: cstr.ManagedOwned,
			Want:       "rejected",
			Run: func(m *native.Module) (string, bool) {
				c, err := managed.New("kept past the call")
				if err != nil {
					return err.Error(), false
				}
				var kept managed.Borrowed
				c.Lend(func(v managed.Borrowed) { kept = v })
				return rejected(m.Pass(kept), cstr.ErrOwnershipViolation)
			},
		},
		{
			Name:       "static/repeat",
			Provenance: cstr.StaticConst,
			Want:       "equal",
			Run: func(m *native.Module) (string, bool) {
				first, second := m.ReturnStatic(), m.ReturnStatic()
				if first.Text() != second.Text() {
					return fmt.Sprintf("%q != %q", first.Text(), second.Text()), false
				}
				if err := cstr.Validate(first.BytesWithSentinel()); err != nil {
					return err.Error(), false
				}
				return "equal", true
			},
		},
		{
			Name:       "alloc/round-trip",
			Provenance: cstr.NativeHeap,
			Want:       "released",
			Run: func(m *native.Module) (string, bool) {
				h, err := m.ReturnAlloc()
				if err != nil {
					return allocFailed(err)
				}
				raw, err := h.BytesWithSentinel()
				if err != nil {
					return err.Error(), false
				}
				if err := cstr.Validate(raw); err != nil {
					return err.Error(), false
				}
				if err := m.Release(h); err != nil {
					return err.Error(), false
				}
				return "released", true
			},
		},
		{
			Name:       "alloc/double-release",
			Provenance: cstr.NativeHeap,
			Want:       "rejected",
			Run: func(m *native.Module) (string, bool) {
				h, err := m.ReturnAlloc()
				if err != nil {
					return allocFailed(err)
				}
				if err := m.Release(h); err != nil {
					return err.Error(), false
				}
				return rejected(m.Release(h), cstr.ErrOwnershipViolation)
			},
		},
		{
			Name:       "alloc/read-after-release",
			Provenance: cstr.NativeHeap,
			Want:       "rejected",
			Run: func(m *native.Module) (string, bool) {
				h, err := m.ReturnAlloc()
				if err != nil {
					return allocFailed(err)
				}
				if err := m.Release(h); err != nil {
					return err.Error(), false
				}
				_, err = h.Text()
				return rejected(err, cstr.ErrOwnershipViolation)
			},
		},
		{
			Name:       "release/null",
			Provenance: cstr.None,
			Want:       "no-op",
			Run: func(m *native.Module) (string, bool) {
				var h *native.HeapString
				if err := m.Release(h); err != nil {
					return err.Error(), false
				}
				return "no-op", true
			},
		},
		{
			Name:       "malformed/bounded-read",
			Provenance: cstr.Malformed,
			Want:       "rejected",
			Run: func(m *native.Module) (string, bool) {
				b, err := m.MalformedFixture()
				if err != nil {
					return allocFailed(err)
				}
				defer m.Release(b)
				_, err = b.ReadBounded(b.Extent())
				return rejected(err, cstr.ErrMissingTerminator)
			},
		},
	}
}

// Run executes every case against m. It stops early, returning the results
// gathered so far, when ctx is cancelled.
func Run(ctx context.Context, m *native.Module) ([]Result, error) {
	cases := Cases()
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		got, ok := c.Run(m)
		results = append(results, Result{
			Name:       c.Name,
			Provenance: c.Provenance,
			Want:       c.Want,
			Got:        got,
			OK:         ok,
		})
	}
	return results, nil
}

// Failed returns the results that did not match the contract.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.OK {
			failed = append(failed, r)
		}
	}
	return failed
}

func lend(m *native.Module, c *managed.CString) (string, bool) {
	var err error
	c.Lend(func(v managed.Borrowed) { err = m.Pass(v) })
	if err != nil {
		return err.Error(), false
	}
	return "presented", true
}

// rejected reports success when err matches want.
func rejected(err, want error) (string, bool) {
	switch {
	case err == nil:
		return "accepted", false
	case errors.Is(err, want):
		return "rejected", true
	default:
		return err.Error(), false
	}
}

// allocFailed treats an allocation failure as a correctly handled null
// result, and anything else as a failure.
func allocFailed(err error) (string, bool) {
	if errors.Is(err, cstr.ErrAllocationFailure) {
		return "null (allocation failure)", true
	}
	return err.Error(), false
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package managed

import (
	"sync/atomic"

	"github.com/H0llyW00dzZ/cstr-exchange/src/cstr"
)

type lease struct {
	data    []byte
	expired atomic.Bool
}

// Borrowed is a transient read-only view of a [CString]. The zero value is the
// null view.
type Borrowed struct {
	lease *lease
}

// Null is the null view.
var Null = Borrowed{}

// IsNull reports whether the view refers to no string.
func (b Borrowed) IsNull() bool { return b.lease == nil }

// Provenance returns ManagedOwned, or None for the null view.
func (b Borrowed) Provenance() cstr.Provenance {
	if b.IsNull() {
		return cstr.None
	}
	return cstr.ManagedOwned
}

// Text returns a copy of the content up to the first sentinel.
//
// It fails with [cstr.ErrNullInput] on the null view and with a
// [cstr.OwnershipError] once the lending call has returned.
func (b Borrowed) Text() (string, error) {
	content, err := b.content()
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Len returns the content length up to the first sentinel.
func (b Borrowed) Len() (int, error) {
	content, err := b.content()
	if err != nil {
		return 0, err
	}
	return len(content), nil
}

func (b Borrowed) content() ([]byte, error) {
	if b.IsNull() {
		return nil, cstr.ErrNullInput
	}
	if b.lease.expired.Load() {
		return nil, &cstr.OwnershipError{Op: "Read", Provenance: cstr.ManagedOwned, Violation: cstr.UseAfterRelease}
	}
	return cstr.Content(b.lease.data)
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cstr

import (
	"errors"
	"fmt"
)

var (
	// ErrNullInput reports an absent handle. Operations treat it as a
	// documented degenerate input, not a failure.
	ErrNullInput = errors.New("cstr: null handle")
	// ErrAllocationFailure reports that the native allocator could not
	// provide a buffer.
	ErrAllocationFailure = errors.New("cstr: allocation failed")
	// ErrMissingTerminator reports a buffer with no sentinel inside its extent.
	ErrMissingTerminator = errors.New("cstr: missing terminating sentinel")
	// ErrInteriorSentinel reports a sentinel byte inside a payload.
	ErrInteriorSentinel = errors.New("cstr: sentinel inside payload")
	// ErrOwnershipViolation reports a release or read that the caller had no
	// authority to perform.
	ErrOwnershipViolation = errors.New("cstr: ownership violation")
)

// SentinelError carries the offset at which a sentinel check failed.
type SentinelError struct {
	Err    error
	Offset int
}

func (e *SentinelError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *SentinelError) Unwrap() error { return e.Err }

// AllocationError reports a failed native allocation together with the
// underlying system error code.
type AllocationError struct {
	Size int
	Err  error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%v: %d bytes: %v", ErrAllocationFailure, e.Size, e.Err)
}

// Unwrap exposes both [ErrAllocationFailure] and the system error.
func (e *AllocationError) Unwrap() []error { return []error{ErrAllocationFailure, e.Err} }

// Violation classifies an [OwnershipError].
type Violation uint8

const (
	// DoubleRelease is a second release of the same handle.
	DoubleRelease Violation = iota + 1
	// ForeignAllocator is a release through an allocator that did not
	// produce the handle.
	ForeignAllocator
	// UseAfterRelease is a read through a handle whose buffer is gone, or a
	// borrowed view used after its lending call returned.
	UseAfterRelease
	// NotOwned is a release attempt on a handle the receiver does not own.
	NotOwned
)

func (v Violation) String() string {
	switch v {
	case DoubleRelease:
		return "double release"
	case ForeignAllocator:
		return "foreign allocator"
	case UseAfterRelease:
		return "use after release"
	case NotOwned:
		return "not owned"
	default:
		return "unknown violation"
	}
}

// OwnershipError is the checked form of what would otherwise be a
// use-after-free, double free or cross-allocator free.
type OwnershipError struct {
	Op         string
	Provenance Provenance
	ID         uint64
	Violation  Violation
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("%v: %s: %s handle #%d: %s", ErrOwnershipViolation, e.Op, e.Provenance, e.ID, e.Violation)
}

func (e *OwnershipError) Unwrap() error { return ErrOwnershipViolation }

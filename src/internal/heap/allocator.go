// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package heap

import (
	"fmt"
	"syscall"
)

// Allocator provides raw extents for native strings.
//
// Extents returned by Alloc must be released with Free on the same
// Allocator. Seal is called once the content is final and may make the extent
// read-only.
type Allocator interface {
	Name() string
	Alloc(size int) ([]byte, error)
	Seal(b []byte) error
	Free(b []byte) error
}

// Allocator names accepted by [ByName].
const (
	NameMmap    = "mmap"
	NameGo      = "go"
	NameFailing = "failing"
)

// GoAllocator allocates from the Go heap. Free and Seal are no-ops; the
// ledger in [Heap] still enforces single release.
type GoAllocator struct{}

func (GoAllocator) Name() string { return NameGo }

func (GoAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, syscall.EINVAL
	}
	return make([]byte, size), nil
}

func (GoAllocator) Seal([]byte) error { return nil }

func (GoAllocator) Free([]byte) error { return nil }

// FailingAllocator fails every allocation with Err, or ENOMEM when Err is nil.
type FailingAllocator struct {
	Err error
}

func (FailingAllocator) Name() string { return NameFailing }

func (f FailingAllocator) Alloc(int) ([]byte, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return nil, syscall.ENOMEM
}

func (FailingAllocator) Seal([]byte) error { return nil }

func (FailingAllocator) Free([]byte) error { return syscall.EINVAL }

// Default returns the mmap allocator where the platform supports it and
// [GoAllocator] otherwise.
func Default() Allocator {
	if a, err := newMmap(); err == nil {
		return a
	}
	return GoAllocator{}
}

// ByName returns the allocator registered under name. An empty name selects
// [Default].
func ByName(name string) (Allocator, error) {
	switch name {
	case "":
		return Default(), nil
	case NameMmap:
		return newMmap()
	case NameGo:
		return GoAllocator{}, nil
	case NameFailing:
		return FailingAllocator{}, nil
	default:
		return nil, fmt.Errorf("heap: unknown allocator %q", name)
	}
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build linux || darwin || freebsd || netbsd || openbsd

package heap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator maps each extent as private anonymous memory. The garbage
// collector never sees these pages, so lifetime is governed entirely by Free.
type MmapAllocator struct{}

func newMmap() (Allocator, error) { return MmapAllocator{}, nil }

func (MmapAllocator) Name() string { return NameMmap }

func (MmapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, unix.EINVAL
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("heap: mmap %d bytes: %w", size, err)
	}
	return data, nil
}

// Seal drops write permission on the extent.
func (MmapAllocator) Seal(b []byte) error {
	if err := unix.Mprotect(b, unix.PROT_READ); err != nil {
		return fmt.Errorf("heap: mprotect: %w", err)
	}
	return nil
}

func (MmapAllocator) Free(b []byte) error {
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("heap: munmap: %w", err)
	}
	return nil
}

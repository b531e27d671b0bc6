// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package heap is the native side's allocator family and allocation ledger.
//
// An [Allocator] hands out raw extents. The default on Unix-like systems is
// [MmapAllocator], which maps anonymous memory outside the Go heap via
// [golang.org/x/sys/unix], seals finished strings read-only with mprotect and
// unmaps them on release. [GoAllocator] is the portable fallback and
// [FailingAllocator] forces the allocation-failure path.
//
// A [Heap] wraps one allocator and records every live [Block]. Release and
// read requests are checked against the ledger, so double releases, releases
// through a foreign heap and reads after release surface as
// [cstr.OwnershipError] values instead of memory corruption.
//
// [Heap.AllocString] is the only constructor for terminated strings and is the one
// place the sentinel is written.
package heap

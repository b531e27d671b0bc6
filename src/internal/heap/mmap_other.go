// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package heap

import (
	"fmt"
	"runtime"
)

func newMmap() (Allocator, error) {
	return nil, fmt.Errorf("heap: mmap allocator is not supported on %s", runtime.GOOS)
}

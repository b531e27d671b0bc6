// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package managed is the caller's side of the string boundary.
//
// A [CString] is a ManagedOwned, sentinel-terminated string allocated and
// collected by the Go runtime. Native code never receives the CString itself,
// only a [Borrowed] view handed out by [CString.Lend]. The view is read-only
// and expires when the lending call returns, so a callee that keeps it gets
// an ownership error on the next read instead of a dangling reference.
package managed

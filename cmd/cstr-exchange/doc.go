// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// cstr-exchange drives a native string module through every ownership path
// of the NUL-terminated string boundary and reports whether each one held.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/cstr-exchange/cmd/cstr-exchange@latest
//
// # Usage
//
//	cstr-exchange [FLAGS]
//
// # Flags
//
//	-c, --config       Configuration file (.json, .yaml, .yml)
//	-a, --allocator    Native allocator: mmap, go or failing
//	    --fail-alloc   Force every native allocation to fail
//	-t, --table        Print case results as a markdown table
//	-s, --stats        Print native heap ledger statistics
//	-j, --json         Emit diagnostics as JSON lines
//
// # Examples
//
// Run every case on the default allocator:
//
//	cstr-exchange
//
// Check that allocation failure is handled without a crash:
//
//	cstr-exchange --fail-alloc --table
//
// Use a configuration file:
//
//	CSTR_EXCHANGE_CONFIG=config.yaml cstr-exchange --stats
package main

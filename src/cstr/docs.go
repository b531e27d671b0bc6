// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cstr defines the ownership contract for null-terminated byte strings
// that cross the boundary between the managed caller and the native callee.
//
// It provides:
//   - [Provenance]: which side allocated a buffer and who may release it
//   - [Terminate]: the single place where the terminating [Sentinel] is appended
//   - [ScanLen] and [Validate]: bounded sentinel scanning that never reads past
//     the extent it is given
//   - The error taxonomy shared by both sides ([ErrNullInput],
//     [ErrAllocationFailure], [ErrMissingTerminator], [ErrOwnershipViolation])
//
// Handles themselves live in the managed and native packages; this package has
// no dependencies on either.
package cstr

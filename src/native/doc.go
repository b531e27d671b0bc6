// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package native is the callee's side of the string boundary.
//
// A [Module] exposes the four boundary operations:
//
//   - [Module.Pass]: read a managed string for the duration of the call
//   - [Module.ReturnStatic]: return a process-lifetime [StaticString]
//   - [Module.ReturnAlloc]: return a [HeapString] the caller must release
//   - [Module.Release]: release a handle produced by this module's heap
//
// Ownership is carried by type. Only [HeapString] and the test fixture
// [MalformedBuffer] satisfy [Releasable], so releasing a static or managed
// string does not compile. Misuse that types cannot catch (a second release,
// a release through the wrong module, a read after release) returns a
// [cstr.OwnershipError].
//
// [Module.MalformedFixture] produces a deliberately unterminated buffer for
// negative tests. It can only be read through an explicit length bound.
package native

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cstr

// Provenance identifies which side allocated a string buffer and therefore
// which side is responsible for releasing it.
type Provenance uint8

const (
	// None is carried by null handles.
	None Provenance = iota
	// StaticConst lives for the process lifetime and is never released.
	StaticConst
	// NativeHeap is allocated by the native side and must be released exactly
	// once through the native release operation.
	NativeHeap
	// ManagedOwned is allocated by the managed side. Native code may only read it
	// for the duration of a call.
	ManagedOwned
	// Malformed is a NativeHeap allocation filled without its sentinel.
	// It only exists as a negative-test fixture.
	Malformed
)

// String returns the name of the provenance.
func (p Provenance) String() string {
	switch p {
	case None:
		return "None"
	case StaticConst:
		return "StaticConst"
	case NativeHeap:
		return "NativeHeap"
	case ManagedOwned:
		return "ManagedOwned"
	case Malformed:
		return "Malformed"
	default:
		return "Unknown"
	}
}

// Releasable reports whether a handle of this provenance must be released by
// its receiver.
func (p Provenance) Releasable() bool { return p == NativeHeap || p == Malformed }

// Terminated reports whether buffers of this provenance end with a sentinel.
func (p Provenance) Terminated() bool { return p != Malformed && p != None }

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package scenario drives a native module through every ownership path:
// managed strings passed in, static and heap strings returned, releases,
// null handles, deliberate misuse and the malformed fixture.
//
// Each case reports whether the module behaved as the ownership contract
// requires, so misuse cases pass when the module rejects them.
package scenario

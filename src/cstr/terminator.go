// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cstr

import "bytes"

// Sentinel is the byte marking the logical end of content.
const Sentinel byte = 0

// Terminate appends payload followed by exactly one [Sentinel] to dst and
// returns the extended slice.
//
// It returns [ErrInteriorSentinel] if payload already contains a sentinel,
// since the result would be read back truncated.
func Terminate(dst, payload []byte) ([]byte, error) {
	if i := bytes.IndexByte(payload, Sentinel); i >= 0 {
		return dst, &SentinelError{Err: ErrInteriorSentinel, Offset: i}
	}
	dst = append(dst, payload...)
	return append(dst, Sentinel), nil
}

// ScanLen returns the number of content bytes before the first sentinel in
// buf. The scan never goes past len(buf); if the extent holds no sentinel it
// returns [ErrMissingTerminator] with the extent length.
func ScanLen(buf []byte) (int, error) {
	if i := bytes.IndexByte(buf, Sentinel); i >= 0 {
		return i, nil
	}
	return len(buf), &SentinelError{Err: ErrMissingTerminator, Offset: len(buf)}
}

// Validate checks that buf holds exactly one sentinel and that it is the last
// byte of the extent.
func Validate(buf []byte) error {
	n, err := ScanLen(buf)
	if err != nil {
		return err
	}
	if n != len(buf)-1 {
		return &SentinelError{Err: ErrInteriorSentinel, Offset: n}
	}
	return nil
}

// Content returns the bytes before the first sentinel of buf.
// The returned slice aliases buf.
func Content(buf []byte) ([]byte, error) {
	n, err := ScanLen(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// TextSink presents strings received across the boundary on a Logger.
// It accepts a read-only copy of the text and a label naming the operation
// that produced it, and returns nothing to the caller.
type TextSink struct {
	log Logger
}

// NewTextSink returns a sink writing through l.
func NewTextSink(l Logger) *TextSink { return &TextSink{log: l} }

// Present writes one line for text. Ill-formed UTF-8 is replaced with U+FFFD
// so that raw foreign bytes never reach the terminal unmodified.
func (s *TextSink) Present(label, text string) {
	clean, _, err := transform.String(runes.ReplaceIllFormed(), text)
	if err != nil {
		clean = text
	}
	s.log.Printf("%s: Pointer points to: '%s'", label, clean)
}

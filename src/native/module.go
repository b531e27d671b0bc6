// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package native

import (
	"bytes"
	"fmt"

	"github.com/H0llyW00dzZ/cstr-exchange/src/cstr"
	"github.com/H0llyW00dzZ/cstr-exchange/src/internal/heap"
	"github.com/H0llyW00dzZ/cstr-exchange/src/logger"
	"github.com/H0llyW00dzZ/cstr-exchange/src/managed"
)

// Default payloads.
const (
	DefaultStaticText       = "Static string from C"
	DefaultDynamicPayload   = "Dynamic string from C"
	DefaultMalformedPayload = "abcd"
)

// Operation labels, used for diagnostics and as the sink label.
const (
	OpPass             = "Pass"
	OpReturnStatic     = "ReturnStatic"
	OpReturnAlloc      = "ReturnAlloc"
	OpRelease          = "Release"
	OpMalformedFixture = "MalformedFixture"
)

// Sink receives strings the module presents. It gets a read-only copy and a
// label naming the calling operation, and returns nothing.
type Sink interface {
	Present(label, text string)
}

// Option configures a [Module].
type Option func(*options)

type options struct {
	allocator heap.Allocator
	sink      Sink
	log       logger.Logger
	static    string
	dynamic   string
	malformed string
}

// WithAllocator selects the allocator family backing heap strings.
func WithAllocator(a heap.Allocator) Option { return func(o *options) { o.allocator = a } }

// WithSink sets the collaborator that Pass presents strings to. Defaults to a
// [logger.TextSink] over the module logger.
func WithSink(s Sink) Option { return func(o *options) { o.sink = s } }

// WithLogger sets where diagnostics go. Defaults to a silent logger.
func WithLogger(l logger.Logger) Option { return func(o *options) { o.log = l } }

// WithStaticText overrides the text returned by ReturnStatic.
func WithStaticText(s string) Option { return func(o *options) { o.static = s } }

// WithDynamicPayload overrides the payload copied by ReturnAlloc.
func WithDynamicPayload(s string) Option { return func(o *options) { o.dynamic = s } }

// WithMalformedPayload overrides the bytes written by MalformedFixture.
func WithMalformedPayload(s string) Option { return func(o *options) { o.malformed = s } }

// Module is the native callee.
type Module struct {
	heap      *heap.Heap
	static    StaticString
	dynamic   []byte
	malformed []byte
	sink      Sink
	log       logger.Logger
}

// New builds a module. Payloads containing a sentinel byte are rejected, and
// the malformed payload must be non-empty.
func New(opts ...Option) (*Module, error) {
	o := options{
		static:    DefaultStaticText,
		dynamic:   DefaultDynamicPayload,
		malformed: DefaultMalformedPayload,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.NewJSONLogger(nil, true)
	}
	if o.sink == nil {
		o.sink = logger.NewTextSink(o.log)
	}

	static, err := cstr.Terminate(nil, []byte(o.static))
	if err != nil {
		return nil, fmt.Errorf("native: static text: %w", err)
	}
	if _, err := cstr.Terminate(nil, []byte(o.dynamic)); err != nil {
		return nil, fmt.Errorf("native: dynamic payload: %w", err)
	}
	if o.malformed == "" {
		return nil, fmt.Errorf("native: malformed payload must not be empty")
	}
	if bytes.IndexByte([]byte(o.malformed), cstr.Sentinel) >= 0 {
		return nil, fmt.Errorf("native: malformed payload: %w", cstr.ErrInteriorSentinel)
	}

	return &Module{
		heap:      heap.New(o.allocator),
		static:    StaticString{data: static},
		dynamic:   []byte(o.dynamic),
		malformed: []byte(o.malformed),
		sink:      o.sink,
		log:       o.log,
	}, nil
}

// Pass reads v for the duration of the call and presents it to the sink.
// A null view emits one diagnostic and is otherwise a no-op.
func (m *Module) Pass(v managed.Borrowed) error {
	if v.IsNull() {
		m.log.Printf("%s: Pointer is null", OpPass)
		return nil
	}
	text, err := v.Text()
	if err != nil {
		m.log.Printf("%s: %v", OpPass, err)
		return err
	}
	m.sink.Present(OpPass, text)
	return nil
}

// ReturnStatic returns the module's static text. The result lives as long as
// the process and has no release path.
func (m *Module) ReturnStatic() StaticString { return m.static }

// ReturnAlloc returns a new heap string holding the dynamic payload. The
// caller owns the result and must hand it to Release exactly once.
//
// On allocation failure it returns nil and a [cstr.AllocationError] carrying
// the system error code.
func (m *Module) ReturnAlloc() (*HeapString, error) {
	b, err := m.heap.AllocString(m.dynamic)
	if err != nil {
		m.log.Printf("%s: %v", OpReturnAlloc, err)
		return nil, err
	}
	return &HeapString{heap: m.heap, block: b}, nil
}

// Release destroys h. A null handle emits one diagnostic and is otherwise a
// no-op. Releasing a handle twice, or releasing one produced by another
// module, returns a [cstr.OwnershipError] and leaves memory untouched.
func (m *Module) Release(h Releasable) error {
	var b *heap.Block
	if h != nil {
		b = h.releaseBlock()
	}
	if b == nil {
		m.log.Printf("%s: Pointer is null", OpRelease)
		return nil
	}
	if err := m.heap.Free(b, OpRelease); err != nil {
		m.log.Printf("%s: %v", OpRelease, err)
		return err
	}
	return nil
}

// MalformedFixture returns a heap buffer filled to its last byte with the
// malformed payload and no sentinel. It exists for negative tests of readers
// and must still be released through Release.
func (m *Module) MalformedFixture() (*MalformedBuffer, error) {
	b, err := m.heap.AllocUnterminated(m.malformed)
	if err != nil {
		m.log.Printf("%s: %v", OpMalformedFixture, err)
		return nil, err
	}
	return &MalformedBuffer{heap: m.heap, block: b}, nil
}

// Stats returns the heap ledger counters.
func (m *Module) Stats() heap.Stats { return m.heap.Stats() }

// Live returns the heap blocks not yet released.
func (m *Module) Live() []heap.BlockInfo { return m.heap.Live() }

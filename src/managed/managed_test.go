// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package managed_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/cstr-exchange/src/cstr"
	"github.com/H0llyW00dzZ/cstr-exchange/src/managed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "from string", input: "A String that is owned by Go"},
		{name: "empty", input: ""},
		{name: "must not end with sentinel", input: "The byte slice must not end with nul\x00", wantErr: cstr.ErrInteriorSentinel},
		{name: "must not contain sentinel", input: "The byte slice must not contain\x00 nul", wantErr: cstr.ErrInteriorSentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := managed.New(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, c.String())
			assert.Equal(t, len(tt.input), c.Len())
			assert.Equal(t, cstr.ManagedOwned, c.Provenance())
			assert.NoError(t, cstr.Validate(c.BytesWithSentinel()))
		})
	}
}

func TestFromBytesWithSentinel(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr error
	}{
		{name: "byte slice", input: []byte("A byte slice with nul that is owned by Go\x00"), want: "A byte slice with nul that is owned by Go"},
		{name: "must end with sentinel", input: []byte("The byte slice must end with a nul character"), wantErr: cstr.ErrMissingTerminator},
		{name: "interior sentinel", input: []byte("ab\x00c\x00"), wantErr: cstr.ErrInteriorSentinel},
		{name: "empty", input: nil, wantErr: cstr.ErrMissingTerminator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := managed.FromBytesWithSentinel(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestFromBytesWithSentinel_Copies(t *testing.T) {
	src := []byte("abc\x00")
	c, err := managed.FromBytesWithSentinel(src)
	require.NoError(t, err)

	src[0] = 'X'
	assert.Equal(t, "abc", c.String(), "CString must not alias the caller's slice")
}

func TestReadFrom(t *testing.T) {
	c, err := managed.ReadFrom(strings.NewReader("read from a stream"), 1024)
	require.NoError(t, err)
	assert.Equal(t, "read from a stream", c.String())

	c, err = managed.ReadFrom(strings.NewReader("truncated by the limit"), 9)
	require.NoError(t, err)
	assert.Equal(t, "truncated", c.String())

	_, err = managed.ReadFrom(strings.NewReader("nul\x00inside"), 1024)
	assert.ErrorIs(t, err, cstr.ErrInteriorSentinel)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestReadFrom_ReaderError(t *testing.T) {
	_, err := managed.ReadFrom(failingReader{}, 16)
	assert.ErrorContains(t, err, "read failed")
}

func TestLend(t *testing.T) {
	c, err := managed.New("lent for one call")
	require.NoError(t, err)

	var kept managed.Borrowed
	c.Lend(func(v managed.Borrowed) {
		assert.False(t, v.IsNull())
		assert.Equal(t, cstr.ManagedOwned, v.Provenance())

		text, err := v.Text()
		require.NoError(t, err)
		assert.Equal(t, "lent for one call", text)

		n, err := v.Len()
		require.NoError(t, err)
		assert.Equal(t, 17, n)

		kept = v
	})

	_, err = kept.Text()
	var oerr *cstr.OwnershipError
	require.ErrorAs(t, err, &oerr, "a view kept past its call must not be readable")
	assert.Equal(t, cstr.UseAfterRelease, oerr.Violation)
	assert.Equal(t, cstr.ManagedOwned, oerr.Provenance)

	assert.Equal(t, "lent for one call", c.String(), "the owner keeps full access")
}

func TestLend_LargeString(t *testing.T) {
	payload := strings.Repeat("z", 1<<20+10)
	c, err := managed.New(payload)
	require.NoError(t, err)
	assert.NoError(t, cstr.Validate(c.BytesWithSentinel()))

	c.Lend(func(v managed.Borrowed) {
		n, err := v.Len()
		require.NoError(t, err)
		assert.Equal(t, len(payload), n)
	})
}

func TestLend_Nil(t *testing.T) {
	var c *managed.CString

	called := false
	c.Lend(func(v managed.Borrowed) {
		called = true
		assert.True(t, v.IsNull())
		assert.Equal(t, cstr.None, v.Provenance())

		_, err := v.Text()
		assert.ErrorIs(t, err, cstr.ErrNullInput)
		_, err = v.Len()
		assert.ErrorIs(t, err, cstr.ErrNullInput)
	})
	assert.True(t, called)

	assert.Equal(t, "", c.String())
	assert.Zero(t, c.Len())
	assert.Nil(t, c.BytesWithSentinel())
	assert.Equal(t, cstr.None, c.Provenance())
	assert.True(t, managed.Null.IsNull())
}

// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIsCode(t *testing.T) {
	t.Parallel()
	err := &Error{Code: DataTooLong, Offset: 12}
	require.True(t, errors.Is(err, DataTooLong))
	require.False(t, errors.Is(err, Incomplete))
}

func TestErrorIsError(t *testing.T) {
	t.Parallel()
	err := &Error{Code: InvalidData}
	require.True(t, errors.Is(err, &Error{Code: InvalidData}))
	require.False(t, errors.Is(err, &Error{Code: InvalidCharacter}))
}

func TestCodeString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "incomplete", Incomplete.String())
	require.Equal(t, "unknown error", Code(99).String())
}

// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteQuotedStringShortEscapes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := writeQuotedString(WriterSink{W: &buf}, []byte("a\"b\\c\nd\te"))
	require.NoError(t, err)
	require.Equal(t, `"a\"b\\c\nd\te"`, buf.String())
}

func TestWriteQuotedStringPassesThroughHighBytes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := writeQuotedString(WriterSink{W: &buf}, []byte("héllo"))
	require.NoError(t, err)
	require.Equal(t, "\"héllo\"", buf.String())
}

func TestWriteEscapedBodyRejectsControlByte(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := writeEscapedBody(WriterSink{W: &buf}, []byte{0x01})
	require.ErrorIs(t, err, InvalidCharacter)
}

func TestWriteEscapedBodyChunking(t *testing.T) {
	t.Parallel()
	big := bytes.Repeat([]byte("\\"), escapeWorkBufferSize)
	var buf bytes.Buffer
	err := writeEscapedBody(WriterSink{W: &buf}, big)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte(`\\`), escapeWorkBufferSize), buf.Bytes())
}

// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderCompactObject(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, false)
	require.NoError(t, enc.BeginObject(""))
	require.NoError(t, enc.AddInt64("a", 1))
	require.NoError(t, enc.AddStringStr("b", "x"))
	require.NoError(t, enc.EndContainer())
	require.Equal(t, `{"a":1,"b":"x"}`, buf.String())
}

func TestEncoderPrettyObject(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, true)
	require.NoError(t, enc.BeginObject(""))
	require.NoError(t, enc.AddInt64("a", 1))
	require.NoError(t, enc.AddInt64("b", 2))
	require.NoError(t, enc.EndContainer())
	require.Equal(t, "{\n    \"a\": 1,\n    \"b\": 2\n}", buf.String())
}

func TestEncoderPrettyEmptyContainerIsNotSplitAcrossLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, true)
	require.NoError(t, enc.BeginObject(""))
	require.NoError(t, enc.BeginArray("empty"))
	require.NoError(t, enc.EndContainer())
	require.NoError(t, enc.EndContainer())
	require.Equal(t, "{\n    \"empty\": []\n}", buf.String())
}

func TestEncoderArrayNoNamesRequired(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, false)
	require.NoError(t, enc.BeginArray(""))
	require.NoError(t, enc.AddBool("", true))
	require.NoError(t, enc.AddNull(""))
	require.NoError(t, enc.EndContainer())
	require.Equal(t, `[true,null]`, buf.String())
}

func TestEncoderObjectRequiresName(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, false)
	require.NoError(t, enc.BeginObject(""))
	err := enc.AddInt64("", 1)
	require.ErrorIs(t, err, InvalidData)
}

func TestEncoderEndClosesEverything(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, false)
	require.NoError(t, enc.BeginObject(""))
	require.NoError(t, enc.BeginArray("a")) // nested, depth 2
	require.Equal(t, 2, enc.Depth())
	require.NoError(t, enc.End())
	require.Equal(t, 0, enc.Depth())
	require.Equal(t, `{"a":[]}`, buf.String())
}

func TestEncoderAddDataHexUppercase(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, false)
	require.NoError(t, enc.AddData("", []byte{0xDE, 0xAD, 0xBE, 0xEF}))
	require.Equal(t, `"DEADBEEF"`, buf.String())
}

func TestEncoderAddStringNilIsNull(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, false)
	require.NoError(t, enc.AddString("", nil))
	require.Equal(t, `null`, buf.String())
}

func TestEncoderStreamedString(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, false)
	require.NoError(t, enc.BeginStringElement(""))
	require.NoError(t, enc.AppendStringElement([]byte("hel")))
	require.NoError(t, enc.AppendStringElement([]byte("lo\n")))
	require.NoError(t, enc.EndStringElement())
	require.Equal(t, `"hello\n"`, buf.String())
}

func TestEncoderMaxDepth(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	enc := NewEncoder(WriterSink{W: &buf}, false)
	for i := 0; i < MaxDepth; i++ {
		require.NoError(t, enc.BeginArray(""))
	}
	require.ErrorIs(t, enc.BeginArray(""), InvalidData)
}

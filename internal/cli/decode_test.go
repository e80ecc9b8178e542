// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// capturingCore is a minimal hand-rolled zapcore.Core that records every
// entry written to it, used in place of zap/zaptest/observer so the test
// suite doesn't pull in a dependency the rest of the codebase never needs.
type capturingCore struct {
	zapcore.LevelEnabler
	entries *[]zapcore.Entry
}

func (c capturingCore) With([]zapcore.Field) zapcore.Core { return c }

func (c capturingCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c capturingCore) Write(e zapcore.Entry, _ []zapcore.Field) error {
	*c.entries = append(*c.entries, e)
	return nil
}

func (c capturingCore) Sync() error { return nil }

func newCapturingLogger() (*zap.SugaredLogger, *[]zapcore.Entry) {
	entries := &[]zapcore.Entry{}
	core := capturingCore{LevelEnabler: zapcore.InfoLevel, entries: entries}
	return zap.New(core).Sugar(), entries
}

func TestLoggingHandlerReportsTokenStream(t *testing.T) {
	t.Parallel()
	sugar, entries := newCapturingLogger()
	h := loggingHandler{log: sugar}

	require.NoError(t, h.BeginObject(""))
	require.NoError(t, h.Int64("a", 1))
	require.NoError(t, h.String("b", "x"))
	require.NoError(t, h.EndContainer())
	require.NoError(t, h.EndData())

	require.Len(t, *entries, 5)
	require.Equal(t, "beginObject", (*entries)[0].Message)
	require.Equal(t, "int64", (*entries)[1].Message)
	require.Equal(t, "string", (*entries)[2].Message)
	require.Equal(t, "endContainer", (*entries)[3].Message)
	require.Equal(t, "endData", (*entries)[4].Message)
}

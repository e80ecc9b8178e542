// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import "io"

// Sink is the opaque output callback every encoded byte passes through.
// An Encoder never holds its own accumulating buffer: every fragment it
// produces, down to a single delimiter, is handed to Sink.Write directly,
// so a caller running inside a signal handler can route output to
// whatever narrow channel is safe there (a preallocated buffer, a raw file
// descriptor) without the codec ever touching the heap on its behalf.
type Sink interface {
	Write(p []byte) error
}

// WriterSink adapts an io.Writer to Sink, for the common case where the
// destination is already something ordinary like a bytes.Buffer, a file,
// or os.Stdout.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Write(p []byte) error {
	_, err := s.W.Write(p)
	return err
}

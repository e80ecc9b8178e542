// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"context"
	"io"
	"os"
)

// FileSystem abstracts opening a file for the splicer's file-backed mode,
// so callers (and tests) can substitute an in-memory filesystem for the
// real one -- the same role afero plays for the CLI and its test suite.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
}

// OSFileSystem opens files through the operating system; it is the default
// FileSystem a Splicer uses outside of tests.
type OSFileSystem struct{}

func (OSFileSystem) Open(name string) (io.ReadCloser, error) { return os.Open(name) }

const (
	defaultWrapDepth   = 2
	spliceNameBufSize  = 100
	spliceValueBufSize = 5000
	fileWindowSize     = 1000
	maxSplicedFileSize = 1 << 20
)

// Splicer decodes a JSON fragment -- from memory or from a file -- and
// forwards every token straight into an Encoder's current position,
// concatenating pre-existing JSON into the document the Encoder is
// building.
type Splicer struct {
	enc       *Encoder
	wrapDepth int
}

// NewSplicer ties a Splicer to enc. wrapDepth is the encoder depth at or
// below which the splicer's own end-container callbacks are suppressed,
// leaving that container open for the caller (or the post-parse cleanup
// below) to close instead of auto-closing it -- this prevents a splice
// from closing the caller's own wrapping container out from under it when
// the caller means to keep appending siblings. wrapDepth <= 0 selects the
// default of 2, matching the original hardcoded threshold but exposed here
// as a parameter instead of a magic number.
func NewSplicer(enc *Encoder, wrapDepth int) *Splicer {
	if wrapDepth <= 0 {
		wrapDepth = defaultWrapDepth
	}
	return &Splicer{enc: enc, wrapDepth: wrapDepth}
}

// spliceHandler adapts decoder callbacks to encoder calls. The very first
// callback it receives corresponds to the root value of the spliced
// fragment, which the decoder itself has no name for (it's the caller's
// name to supply); every callback after that carries the decoder's own
// name straight through.
type spliceHandler struct {
	enc          *Encoder
	wrapDepth    int
	closeLast    bool
	rootName     string
	consumedName bool
}

func (h *spliceHandler) resolveName(decoderName string) string {
	if !h.consumedName {
		h.consumedName = true
		return h.rootName
	}
	return decoderName
}

func (h *spliceHandler) BeginArray(name string) error  { return h.enc.BeginArray(h.resolveName(name)) }
func (h *spliceHandler) BeginObject(name string) error { return h.enc.BeginObject(h.resolveName(name)) }
func (h *spliceHandler) Bool(name string, v bool) error {
	return h.enc.AddBool(h.resolveName(name), v)
}
func (h *spliceHandler) Int64(name string, v int64) error {
	return h.enc.AddInt64(h.resolveName(name), v)
}
func (h *spliceHandler) Uint64(name string, v uint64) error {
	return h.enc.AddUint64(h.resolveName(name), v)
}
func (h *spliceHandler) Float64(name string, v float64) error {
	return h.enc.AddFloat64(h.resolveName(name), v)
}
func (h *spliceHandler) Null(name string) error { return h.enc.AddNull(h.resolveName(name)) }
func (h *spliceHandler) String(name, v string) error {
	return h.enc.AddStringStr(h.resolveName(name), v)
}
func (h *spliceHandler) EndData() error { return nil }

// EndContainer implements the "close only if closeLastContainer or we're
// nested deeper than wrapDepth" rule: a container at or above wrapDepth is
// left open for the caller to continue appending to, unless the caller
// asked for the whole fragment to come in fully closed.
func (h *spliceHandler) EndContainer() error {
	if h.closeLast || h.enc.Depth() > h.wrapDepth {
		return h.enc.EndContainer()
	}
	return nil
}

// AddJSONElement decodes data as a single JSON value and forwards it into
// the splicer's encoder, naming the root value name. If closeLastContainer
// is true, any containers the splice opened but the embedded end-container
// rule left open are closed afterward, restoring the encoder to the depth
// it had before this call.
func (s *Splicer) AddJSONElement(name string, data []byte, closeLastContainer bool) error {
	startDepth := s.enc.Depth()
	h := &spliceHandler{enc: s.enc, wrapDepth: s.wrapDepth, closeLast: closeLastContainer, rootName: name}

	var nameBuf [spliceNameBufSize]byte
	var valBuf [spliceValueBufSize]byte
	if _, err := Decode(data, nameBuf[:], valBuf[:], h); err != nil {
		return err
	}
	if closeLastContainer {
		for s.enc.Depth() > startDepth {
			if err := s.enc.EndContainer(); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddJSONFromFile reads filename through fs and splices its contents in as
// AddJSONElement would. The file is read via a bounded sliding window
// (see slidingWindow) and opened and closed within this single call; its
// whole content, up to maxSplicedFileSize bytes, is assembled in memory
// before decoding starts.
func (s *Splicer) AddJSONFromFile(ctx context.Context, fs FileSystem, name, filename string, closeLastContainer bool) error {
	data, err := readAllThroughWindow(ctx, fs, filename, fileWindowSize, maxSplicedFileSize)
	if err != nil {
		return err
	}
	return s.AddJSONElement(name, data, closeLastContainer)
}

// slidingWindow is a fixed-capacity read buffer that tops itself up by
// memmoving its unconsumed tail to the front and reading more once less
// than half its capacity remains. The window itself holds at most its
// capacity; readAllThroughWindow, the splicer's file mode, copies every
// window it reads into one buffer, so the whole file ends up resident.
type slidingWindow struct {
	buf []byte
	pos int
	end int
	r   io.Reader
	eof bool
}

func newSlidingWindow(r io.Reader, capacity int) *slidingWindow {
	return &slidingWindow{buf: make([]byte, capacity), r: r}
}

func (w *slidingWindow) refill() error {
	remaining := w.end - w.pos
	if w.eof || remaining >= len(w.buf)/2 {
		return nil
	}
	if w.pos > 0 {
		copy(w.buf, w.buf[w.pos:w.end])
		w.end = remaining
		w.pos = 0
	}
	n, err := io.ReadFull(w.r, w.buf[w.end:])
	w.end += n
	if err != nil {
		w.eof = true
		if err != io.ErrUnexpectedEOF && err != io.EOF {
			return err
		}
	}
	return nil
}

func (w *slidingWindow) window() []byte  { return w.buf[w.pos:w.end] }
func (w *slidingWindow) advance(n int)   { w.pos += n }
func (w *slidingWindow) exhausted() bool { return w.eof && w.pos == w.end }

// readAllThroughWindow assembles the full contents of name by repeatedly
// refilling a slidingWindow, bounded to maxTotal bytes. Unlike the
// original's stack-resident, genuinely fixed-memory window, the assembled
// result here is held in one growable buffer: Go's garbage collector makes
// that safe in a way a signal handler's world is not, so the sliding
// window itself is preserved faithfully (and tested in isolation) while
// its caller is free to use ordinary slice growth.
func readAllThroughWindow(ctx context.Context, fs FileSystem, name string, windowSize, maxTotal int) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w := newSlidingWindow(f, windowSize)
	var out []byte
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.refill(); err != nil {
			return nil, err
		}
		win := w.window()
		if len(win) == 0 && w.exhausted() {
			break
		}
		out = append(out, win...)
		w.advance(len(win))
		if len(out) > maxTotal {
			return nil, &Error{Code: DataTooLong, msg: "spliced file exceeds maximum size"}
		}
		if w.exhausted() {
			break
		}
	}
	return out, nil
}

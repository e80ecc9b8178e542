// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

var (
	openBrace    = []byte{'{'}
	closeBrace   = []byte{'}'}
	openBracket  = []byte{'['}
	closeBracket = []byte{']'}
	comma        = []byte{','}
	colon        = []byte{':'}
	colonSpace   = []byte{':', ' '}
	trueLiteral  = []byte("true")
	falseLiteral = []byte("false")
	nullLiteral  = []byte("null")
	indentUnit   = []byte("    ")
	newline      = []byte{'\n'}
)

// Encoder emits JSON, one element at a time, directly to a Sink. It holds
// no buffer of its own: every call writes its bytes through the Sink
// immediately, which is what makes it safe to drive from a signal handler
// -- there is no accumulated state to lose if the process is about to die.
//
// Every exported method corresponds to one operation from the element
// encoder: begin/end a container, add a single element of some type, or
// stream a string or binary-data element across multiple calls.
type Encoder struct {
	sink   Sink
	pretty bool
	stack  containerStack
}

// NewEncoder returns an Encoder writing through sink. When pretty is true,
// containers are indented with one level of four spaces per nesting depth;
// otherwise output is fully compact with no incidental whitespace.
func NewEncoder(sink Sink, pretty bool) *Encoder {
	return &Encoder{sink: sink, pretty: pretty}
}

// Depth reports the number of containers currently open.
func (e *Encoder) Depth() int { return e.stack.depth() }

func (e *Encoder) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return e.sink.Write(p)
}

func (e *Encoder) writeIndent(level int) error {
	if err := e.write(newline); err != nil {
		return err
	}
	for i := 0; i < level; i++ {
		if err := e.write(indentUnit); err != nil {
			return err
		}
	}
	return nil
}

// beginElement emits the comma, indentation, and (inside an object) quoted
// name that precede every element: a comma unless this is the first entry
// in the current container, a newline and indent when pretty-printing, and
// a name when the current container is an object. At the top level (no
// container open) it is a no-op, matching the fact that a lone top-level
// value needs none of this.
//
// name == "" is this codec's Go-idiomatic stand-in for "no name": it is
// required whenever the current container is an object and forbidden
// nowhere else, since arrays and the top level simply ignore it.
func (e *Encoder) beginElement(name string) error {
	top := e.stack.top()
	if top == nil {
		return nil
	}
	if !top.first() {
		if err := e.write(comma); err != nil {
			return err
		}
	}
	if e.pretty {
		if err := e.writeIndent(e.stack.depth()); err != nil {
			return err
		}
	}
	if top.isObject {
		if name == "" {
			return errMissingName
		}
		if err := writeQuotedString(e.sink, []byte(name)); err != nil {
			return err
		}
		if e.pretty {
			if err := e.write(colonSpace); err != nil {
				return err
			}
		} else if err := e.write(colon); err != nil {
			return err
		}
	}
	top.increment()
	return nil
}

func (e *Encoder) beginContainer(name string, isObject bool) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	if err := e.stack.push(isObject); err != nil {
		return err
	}
	if isObject {
		return e.write(openBrace)
	}
	return e.write(openBracket)
}

// BeginArray opens a new array as the next element, named name (or
// unnamed if name == "" and the current container is not an object).
func (e *Encoder) BeginArray(name string) error { return e.beginContainer(name, false) }

// BeginObject opens a new object as the next element.
func (e *Encoder) BeginObject(name string) error { return e.beginContainer(name, true) }

// EndContainer closes the innermost open container. If pretty-printing and
// the container received at least one element, a newline and indent are
// emitted before the closing delimiter; the closing delimiter itself is
// always attempted even if that indentation failed to write, and the first
// non-nil error from either step is returned. Calling EndContainer with no
// container open is a no-op.
func (e *Encoder) EndContainer() error {
	if e.stack.depth() == 0 {
		return nil
	}
	entry, err := e.stack.pop()
	if err != nil {
		return err
	}
	var firstErr error
	if e.pretty && entry.count > 0 {
		if err := e.writeIndent(e.stack.depth()); err != nil {
			firstErr = err
		}
	}
	closer := closeBracket
	if entry.isObject {
		closer = closeBrace
	}
	if err := e.write(closer); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// End closes every remaining open container, restoring the encoder to the
// top level. It stops at the first error, leaving whatever remains open.
func (e *Encoder) End() error {
	for e.stack.depth() > 0 {
		if err := e.EndContainer(); err != nil {
			return err
		}
	}
	return nil
}

// AddBool adds a boolean element.
func (e *Encoder) AddBool(name string, v bool) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	if v {
		return e.write(trueLiteral)
	}
	return e.write(falseLiteral)
}

// AddNull adds a null element.
func (e *Encoder) AddNull(name string) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	return e.write(nullLiteral)
}

// AddInt64 adds a signed integer element.
func (e *Encoder) AddInt64(name string, v int64) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	var buf [21]byte
	return e.write(appendInt64(buf[:0], v))
}

// AddUint64 adds an unsigned integer element, for values that overflow
// int64's range.
func (e *Encoder) AddUint64(name string, v uint64) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	var buf [20]byte
	return e.write(appendUint64(buf[:0], v))
}

// AddFloat64 adds a floating-point element, formatted per this codec's
// number policy (see appendFloat64): NaN becomes null, +/-Inf becomes
// +/-1e999, and finite values are written with float32 precision (fltDig
// digits) when they lie within fltEpsilon*|v| of their float32 conversion,
// or float64 precision (dblDig digits) otherwise.
func (e *Encoder) AddFloat64(name string, v float64) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	var buf [32]byte
	b, err := appendFloat64(buf[:0], v)
	if err != nil {
		return err
	}
	return e.write(b)
}

// AddString adds a string element. A nil slice is reinterpreted as a null
// element rather than an empty string, mirroring how the C ancestor of
// this codec lets a NULL char* stand in for "no value" at this call site;
// AddStringStr below exists precisely because a Go string cannot make that
// same distinction.
func (e *Encoder) AddString(name string, s []byte) error {
	if s == nil {
		return e.AddNull(name)
	}
	if err := e.beginElement(name); err != nil {
		return err
	}
	return writeQuotedString(e.sink, s)
}

// AddStringStr adds a string element from a Go string, always as a string
// (never reinterpreted as null, since a Go string cannot express that).
func (e *Encoder) AddStringStr(name, s string) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	return writeQuotedString(e.sink, []byte(s))
}

// AddRawJSON copies data verbatim as the next element, with no validation
// or escaping. The caller is responsible for data being well-formed JSON.
func (e *Encoder) AddRawJSON(name string, data []byte) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	return e.write(data)
}

const hexDigits = "0123456789ABCDEF"

func appendHex(dst, data []byte) []byte {
	for _, b := range data {
		dst = append(dst, hexDigits[b>>4], hexDigits[b&0xF])
	}
	return dst
}

// AddData adds a binary-data element, encoded as an uppercase-hex string.
func (e *Encoder) AddData(name string, data []byte) error {
	if err := e.BeginDataElement(name); err != nil {
		return err
	}
	if err := e.AppendDataElement(data); err != nil {
		return err
	}
	return e.EndDataElement()
}

// BeginStringElement opens a streamed string element; follow with any
// number of AppendStringElement calls, then EndStringElement.
func (e *Encoder) BeginStringElement(name string) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	return e.write(quoteByte)
}

// AppendStringElement escapes and writes the next chunk of a streamed
// string element opened with BeginStringElement.
func (e *Encoder) AppendStringElement(chunk []byte) error {
	return writeEscapedBody(e.sink, chunk)
}

// EndStringElement closes a streamed string element.
func (e *Encoder) EndStringElement() error {
	return e.write(quoteByte)
}

// BeginDataElement opens a streamed binary-data element; follow with any
// number of AppendDataElement calls, then EndDataElement.
func (e *Encoder) BeginDataElement(name string) error {
	if err := e.beginElement(name); err != nil {
		return err
	}
	return e.write(quoteByte)
}

// AppendDataElement hex-encodes and writes the next chunk of a streamed
// binary-data element, in bounded pieces so no single Sink.Write call
// needs more than a small stack buffer.
func (e *Encoder) AppendDataElement(chunk []byte) error {
	const chunkBytes = 32
	var buf [chunkBytes * 2]byte
	for len(chunk) > 0 {
		n := len(chunk)
		if n > chunkBytes {
			n = chunkBytes
		}
		if err := e.write(appendHex(buf[:0], chunk[:n])); err != nil {
			return err
		}
		chunk = chunk[n:]
	}
	return nil
}

// EndDataElement closes a streamed binary-data element.
func (e *Encoder) EndDataElement() error {
	return e.write(quoteByte)
}

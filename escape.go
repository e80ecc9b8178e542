// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

// escapeWorkBufferSize bounds every single emission the escaper makes
// through a Sink. Short escapes expand a byte to at most two bytes, so a
// buffer this size can always hold escapeWorkBufferSize/2 source bytes
// without growing past capacity.
const escapeWorkBufferSize = 512

var quoteByte = []byte{'"'}

// writeQuotedString wraps the RFC 8259 escaped form of s in a pair of
// quotes and streams it to sink. The closing quote is always attempted,
// even if the opening quote or the escaped body failed to write; the
// first non-nil error encountered is what gets returned.
func writeQuotedString(sink Sink, s []byte) error {
	var firstErr error
	if err := sink.Write(quoteByte); err != nil {
		firstErr = err
	}
	if err := writeEscapedBody(sink, s); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := sink.Write(quoteByte); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// writeEscapedBody escapes s per RFC 8259 short-escape rules and streams
// it through sink in fixed-size chunks, so no single write needs a buffer
// larger than escapeWorkBufferSize regardless of input length. Control
// bytes below 0x20 that have no short escape are rejected outright rather
// than auto-escaped as \u00XX, matching this codec's string grammar.
func writeEscapedBody(sink Sink, s []byte) error {
	var buf [escapeWorkBufferSize]byte
	n := 0
	const maxChunk = escapeWorkBufferSize / 2

	flush := func() error {
		if n == 0 {
			return nil
		}
		err := sink.Write(buf[:n])
		n = 0
		return err
	}

	for i := 0; i < len(s); i++ {
		if n >= maxChunk {
			if err := flush(); err != nil {
				return err
			}
		}
		switch c := s[i]; c {
		case '"':
			buf[n], buf[n+1] = '\\', '"'
			n += 2
		case '\\':
			buf[n], buf[n+1] = '\\', '\\'
			n += 2
		case '\n':
			buf[n], buf[n+1] = '\\', 'n'
			n += 2
		case '\r':
			buf[n], buf[n+1] = '\\', 'r'
			n += 2
		case '\t':
			buf[n], buf[n+1] = '\\', 't'
			n += 2
		case '\b':
			buf[n], buf[n+1] = '\\', 'b'
			n += 2
		case '\f':
			buf[n], buf[n+1] = '\\', 'f'
			n += 2
		default:
			if c < 0x20 {
				flush()
				return &Error{Code: InvalidCharacter, msg: "unescaped control byte in string"}
			}
			buf[n] = c
			n++
		}
	}
	return flush()
}

// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"math"
	"strconv"
)

// Handler receives one callback per token the element decoder encounters
// while walking a JSON value. name is "" for array elements and the
// top-level value; object members carry their decoded key, which is also
// "" when the document uses an empty key.
type Handler interface {
	BeginArray(name string) error
	BeginObject(name string) error
	EndContainer() error
	Bool(name string, v bool) error
	Int64(name string, v int64) error
	Uint64(name string, v uint64) error
	Float64(name string, v float64) error
	Null(name string) error
	String(name string, v string) error
	// EndData is invoked once, after the single top-level value has been
	// fully consumed.
	EndData() error
}

// Decode parses exactly one JSON value from the start of data, invoking h
// for every token encountered. nameBuf and valBuf are scratch buffers used
// to resolve object member names and string values respectively; decoding
// a name or string longer than its buffer reports DataTooLong.
//
// Nesting is bounded by MaxDepth via a depth counter rather than an
// explicit stack: Go's goroutine stacks grow on demand, so recursion with
// a checked depth limit is the idiomatic translation of the "either track
// an explicit stack or bound the recursion" tradeoff this design leaves
// open for environments where a fixed stack makes an explicit stack the
// safer choice.
//
// Trailing bytes after the single top-level value are not inspected; a
// caller that needs to reject them can compare the returned offset to
// len(data) (decode always stops one byte clean of the end of a
// successfully parsed value, so a non-whitespace remainder is the
// caller's to validate).
func Decode(data []byte, nameBuf, valBuf []byte, h Handler) (errOffset int, err error) {
	d := &decodeState{data: data, nameBuf: nameBuf, valBuf: valBuf, h: h}
	d.skipSpace()
	if d.atEnd() {
		return d.pos, &Error{Code: Incomplete, Offset: d.pos, msg: "empty input"}
	}
	if err := d.decodeValue(""); err != nil {
		return d.pos, err
	}
	if err := h.EndData(); err != nil {
		return d.pos, err
	}
	return d.pos, nil
}

type decodeState struct {
	data    []byte
	pos     int
	nameBuf []byte
	valBuf  []byte
	h       Handler
	depth   int
}

func (d *decodeState) atEnd() bool { return d.pos >= len(d.data) }

func (d *decodeState) skipSpace() {
	for d.pos < len(d.data) {
		switch d.data[d.pos] {
		case ' ', '\t', '\n', '\r':
			d.pos++
		default:
			return
		}
	}
}

func (d *decodeState) incomplete() error {
	return &Error{Code: Incomplete, Offset: d.pos}
}

func (d *decodeState) invalidChar() error {
	return &Error{Code: InvalidCharacter, Offset: d.pos}
}

func (d *decodeState) consumeLiteral(lit string) bool {
	if d.pos+len(lit) > len(d.data) {
		return false
	}
	if string(d.data[d.pos:d.pos+len(lit)]) != lit {
		return false
	}
	d.pos += len(lit)
	return true
}

func (d *decodeState) decodeValue(name string) error {
	d.skipSpace()
	if d.atEnd() {
		return d.incomplete()
	}
	switch c := d.data[d.pos]; c {
	case '[':
		return d.decodeArray(name)
	case '{':
		return d.decodeObject(name)
	case '"':
		consumed, s, err := decodeQuotedString(d.data, d.pos, d.valBuf)
		if err != nil {
			return err
		}
		d.pos += consumed
		return d.h.String(name, s)
	case 't':
		if !d.consumeLiteral("true") {
			return d.invalidChar()
		}
		return d.h.Bool(name, true)
	case 'f':
		if !d.consumeLiteral("false") {
			return d.invalidChar()
		}
		return d.h.Bool(name, false)
	case 'n':
		if !d.consumeLiteral("null") {
			return d.invalidChar()
		}
		return d.h.Null(name)
	default:
		if c == '-' || (c >= '0' && c <= '9') {
			return d.decodeNumber(name)
		}
		return d.invalidChar()
	}
}

// decodeArray and decodeObject tolerate two deliberate grammar
// deviations from strict RFC 8259: a missing comma between siblings is
// silently accepted, and a trailing comma right before the closing
// delimiter is tolerated rather than rejected. Both loops re-check for the
// closing delimiter immediately after optionally consuming a comma, which
// is what makes the trailing-comma case fall out for free.

func (d *decodeState) decodeArray(name string) error {
	if d.depth >= MaxDepth {
		return &Error{Code: InvalidData, Offset: d.pos, msg: "maximum nesting depth exceeded"}
	}
	if err := d.h.BeginArray(name); err != nil {
		return err
	}
	d.pos++ // consume '['
	d.depth++
	for {
		d.skipSpace()
		if d.atEnd() {
			return d.incomplete()
		}
		if d.data[d.pos] == ']' {
			d.pos++
			d.depth--
			return d.h.EndContainer()
		}
		if err := d.decodeValue(""); err != nil {
			return err
		}
		d.skipSpace()
		if !d.atEnd() && d.data[d.pos] == ',' {
			d.pos++
		}
	}
}

func (d *decodeState) decodeObject(name string) error {
	if d.depth >= MaxDepth {
		return &Error{Code: InvalidData, Offset: d.pos, msg: "maximum nesting depth exceeded"}
	}
	if err := d.h.BeginObject(name); err != nil {
		return err
	}
	d.pos++ // consume '{'
	d.depth++
	for {
		d.skipSpace()
		if d.atEnd() {
			return d.incomplete()
		}
		if d.data[d.pos] == '}' {
			d.pos++
			d.depth--
			return d.h.EndContainer()
		}
		if d.data[d.pos] != '"' {
			return d.invalidChar()
		}
		consumed, key, err := decodeQuotedString(d.data, d.pos, d.nameBuf)
		if err != nil {
			return err
		}
		d.pos += consumed
		d.skipSpace()
		if d.atEnd() || d.data[d.pos] != ':' {
			if d.atEnd() {
				return d.incomplete()
			}
			return d.invalidChar()
		}
		d.pos++
		if err := d.decodeValue(key); err != nil {
			return err
		}
		d.skipSpace()
		if !d.atEnd() && d.data[d.pos] == ',' {
			d.pos++
		}
	}
}

// decodeNumber implements the signed/unsigned/float dispatch: digits are
// accumulated into a uint64 while scanning for overflow; if the run of
// digits is immediately followed by a floating-point character ('.', 'e',
// or 'E') or an overflow was detected, the whole span (sign included) is
// re-parsed as a float64. Otherwise the sign and magnitude decide between
// Int64 and Uint64: a positive value bigger than math.MaxInt64 becomes
// Uint64, and a negative value whose magnitude is MaxInt64+1 (i.e.
// math.MinInt64) is still representable as Int64.
func (d *decodeState) decodeNumber(name string) error {
	start := d.pos
	neg := false
	if d.data[d.pos] == '-' {
		neg = true
		d.pos++
	}
	if d.atEnd() || d.data[d.pos] < '0' || d.data[d.pos] > '9' {
		return d.invalidChar()
	}

	var accum uint64
	overflow := false
	for !d.atEnd() && d.data[d.pos] >= '0' && d.data[d.pos] <= '9' {
		digit := uint64(d.data[d.pos] - '0')
		if accum > (math.MaxUint64-digit)/10 {
			overflow = true
		}
		accum = accum*10 + digit
		d.pos++
	}

	isFloatChar := !d.atEnd() && (d.data[d.pos] == '.' || d.data[d.pos] == 'e' || d.data[d.pos] == 'E')
	if !isFloatChar && !overflow {
		if !neg {
			if accum <= uint64(math.MaxInt64) {
				return d.h.Int64(name, int64(accum))
			}
			return d.h.Uint64(name, accum)
		}
		if accum <= uint64(math.MaxInt64)+1 {
			return d.h.Int64(name, int64(-accum))
		}
	}

	if !d.atEnd() && d.data[d.pos] == '.' {
		d.pos++
		if d.atEnd() || d.data[d.pos] < '0' || d.data[d.pos] > '9' {
			return d.invalidChar()
		}
		for !d.atEnd() && d.data[d.pos] >= '0' && d.data[d.pos] <= '9' {
			d.pos++
		}
	}
	if !d.atEnd() && (d.data[d.pos] == 'e' || d.data[d.pos] == 'E') {
		d.pos++
		if !d.atEnd() && (d.data[d.pos] == '+' || d.data[d.pos] == '-') {
			d.pos++
		}
		if d.atEnd() || d.data[d.pos] < '0' || d.data[d.pos] > '9' {
			return d.invalidChar()
		}
		for !d.atEnd() && d.data[d.pos] >= '0' && d.data[d.pos] <= '9' {
			d.pos++
		}
	}

	span := d.data[start:d.pos]
	if len(span) >= len(d.valBuf) {
		return &Error{Code: DataTooLong, Offset: start}
	}
	f, ferr := strconv.ParseFloat(string(span), 64)
	if ferr != nil {
		// An out-of-range magnitude such as 1e999 reads back as +/-Inf.
		if ne, ok := ferr.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return &Error{Code: InvalidCharacter, Offset: start}
		}
	}
	return d.h.Float64(name, f)
}

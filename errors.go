// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

const errorPrefix = "jsoncodec: "

// Code is the status every codec operation reduces to: OK on success, or
// one of a small fixed set of failure reasons. Code implements error so it
// can be compared directly with errors.Is against an *Error's code.
type Code int

const (
	// OK means the operation completed successfully. It is never wrapped
	// in an *Error; successful operations return a nil error.
	OK Code = iota

	// InvalidCharacter means the input contained a byte the grammar does
	// not allow at that position, including an unescaped control byte
	// inside a string or a malformed \u escape.
	InvalidCharacter

	// DataTooLong means a destination buffer was too small to hold the
	// result: a decoded name or string longer than the caller's scratch
	// buffer, or an assembled document past its configured size limit.
	DataTooLong

	// CannotAddData is never returned by the codec itself; it is available
	// for a Sink to return when it cannot accept more output.
	CannotAddData

	// Incomplete means the input ended in the middle of a token or
	// container; more bytes were expected but not found.
	Incomplete

	// InvalidData means the input was structurally well-formed as far as
	// the tokenizer is concerned but violates a codec invariant, such as
	// nesting deeper than MaxDepth or an unnamed element inside an object.
	InvalidData
)

var codeStrings = [...]string{
	OK:                "OK",
	InvalidCharacter:  "invalid character",
	DataTooLong:       "data too long",
	CannotAddData:     "cannot add data",
	Incomplete:        "incomplete",
	InvalidData:       "invalid data",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeStrings) {
		return "unknown error"
	}
	return codeStrings[c]
}

// Error satisfies the error interface so Code values are usable directly
// as errors.Is targets, e.g. errors.Is(err, jsoncodec.Incomplete).
func (c Code) Error() string { return c.String() }

// Error is the concrete error type returned by codec operations. Offset is
// the byte position within the input (for decode errors) where the failure
// was detected; it is zero for encode errors, which have no input stream.
type Error struct {
	Code   Code
	Offset int
	msg    string
}

func (e *Error) Error() string {
	s := errorPrefix + e.Code.String()
	if e.msg != "" {
		s += ": " + e.msg
	}
	return s
}

// Is lets errors.Is(err, SomeError) and errors.Is(err, SomeCode) both
// match by comparing codes, mirroring the sentinel-matching idiom used
// throughout this codebase.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Code:
		return e.Code == t
	case *Error:
		return t.Code == e.Code
	default:
		return false
	}
}

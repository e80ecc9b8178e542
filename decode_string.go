// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

// decodeQuotedString parses a quoted JSON string starting at data[pos]
// (which must hold '"'), resolving escapes into buf. It returns the number
// of bytes consumed from data (including both quotes) and the decoded
// string, built as a copy of buf's filled prefix.
//
// A first pass scans for the terminating quote and notes whether any
// backslash occurs in the body; unescaped strings take a single bulk copy,
// so escape resolution is only paid for when escapes are actually present.
func decodeQuotedString(data []byte, pos int, buf []byte) (consumed int, s string, err error) {
	if pos >= len(data) || data[pos] != '"' {
		return 0, "", &Error{Code: InvalidCharacter, Offset: pos, msg: "expected opening quote"}
	}

	i := pos + 1
	hasEscape := false
	for i < len(data) {
		switch data[i] {
		case '\\':
			hasEscape = true
			i += 2
			continue
		case '"':
			goto found
		}
		i++
	}
	return 0, "", &Error{Code: Incomplete, Offset: pos, msg: "unterminated string"}

found:
	if i > len(data) {
		return 0, "", &Error{Code: Incomplete, Offset: pos, msg: "unterminated string"}
	}
	contentEnd := i
	consumed = i + 1 - pos
	raw := data[pos+1 : contentEnd]

	if len(raw) >= len(buf) {
		return 0, "", &Error{Code: DataTooLong, Offset: pos}
	}
	if !hasEscape {
		n := copy(buf, raw)
		return consumed, string(buf[:n]), nil
	}

	n := 0
	put := func(b byte) error {
		if n >= len(buf) {
			return &Error{Code: DataTooLong, Offset: pos}
		}
		buf[n] = b
		n++
		return nil
	}

	j := 0
	for j < len(raw) {
		c := raw[j]
		if c != '\\' {
			if err := put(c); err != nil {
				return 0, "", err
			}
			j++
			continue
		}
		j++
		if j >= len(raw) {
			return 0, "", &Error{Code: Incomplete, Offset: pos}
		}
		switch esc := raw[j]; esc {
		case '"', '\\', '/':
			if err := put(esc); err != nil {
				return 0, "", err
			}
			j++
		case 'n':
			put('\n')
			j++
		case 'r':
			put('\r')
			j++
		case 't':
			put('\t')
			j++
		case 'b':
			put('\b')
			j++
		case 'f':
			put('\f')
			j++
		case 'u':
			j++
			if j+4 > len(raw) {
				return 0, "", &Error{Code: Incomplete, Offset: pos}
			}
			cu, ok := decodeHex4(raw[j : j+4])
			if !ok {
				return 0, "", &Error{Code: InvalidCharacter, Offset: pos, msg: "invalid \\u escape"}
			}
			j += 4
			r := rune(cu)
			switch {
			case cu >= 0xDC00 && cu <= 0xDFFF:
				return 0, "", &Error{Code: InvalidCharacter, Offset: pos, msg: "lone trailing surrogate"}
			case cu >= 0xD800 && cu <= 0xDBFF:
				if j+6 > len(raw) || raw[j] != '\\' || raw[j+1] != 'u' {
					return 0, "", &Error{Code: InvalidCharacter, Offset: pos, msg: "unpaired lead surrogate"}
				}
				lo, ok := decodeHex4(raw[j+2 : j+6])
				if !ok || lo < 0xDC00 || lo > 0xDFFF {
					return 0, "", &Error{Code: InvalidCharacter, Offset: pos, msg: "invalid trailing surrogate"}
				}
				j += 6
				r = combineSurrogates(cu, lo)
			}
			nn, uerr := encodeUTF8Rune(buf[n:], r)
			if uerr != nil {
				return 0, "", uerr
			}
			n += nn
		default:
			return 0, "", &Error{Code: InvalidCharacter, Offset: pos, msg: "unknown escape sequence"}
		}
	}
	return consumed, string(buf[:n]), nil
}

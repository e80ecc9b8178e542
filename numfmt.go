// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"bytes"
	"math"
	"strconv"
)

// fltDig and dblDig mirror C's FLT_DIG and DBL_DIG: the number of decimal
// significant digits that survive a round trip through float32 and
// float64 respectively. fltEpsilon is FLT_EPSILON, used to decide whether
// a float64 value is representable as a float32 without loss.
const (
	fltDig     = 6
	dblDig     = 15
	fltEpsilon = 1.1920929e-07
)

// appendInt64 and appendUint64 append the decimal form of v to dst using a
// fixed-size stack buffer, never the heap.
func appendInt64(dst []byte, v int64) []byte {
	var buf [21]byte
	return append(dst, strconv.AppendInt(buf[:0], v, 10)...)
}

func appendUint64(dst []byte, v uint64) []byte {
	var buf [20]byte
	return append(dst, strconv.AppendUint(buf[:0], v, 10)...)
}

// appendFloat64 appends the JSON form of v to dst, following this codec's
// documented deviation from strict RFC 8259 for non-finite values: NaN
// becomes the null literal, +Inf becomes 1e999, and -Inf becomes -1e999.
// 1e999 is not itself finite in IEEE 754, so any conformant reader
// re-parses it back to +Inf (or -Inf); this is a deliberate compatibility
// hack carried over unchanged, not a bug to fix.
//
// For finite values, the number of significant digits requested from the
// formatter is fltDig if converting v to float32 changes it by at most
// fltEpsilon*|v|, and dblDig otherwise. A value that is only close to a
// float32 (such as 3.14159265358979) is therefore written with fltDig
// digits and does not read back as exactly the same float64.
func appendFloat64(dst []byte, v float64) ([]byte, error) {
	switch {
	case math.IsNaN(v):
		return append(dst, "null"...), nil
	case math.IsInf(v, +1):
		return append(dst, "1e999"...), nil
	case math.IsInf(v, -1):
		return append(dst, "-1e999"...), nil
	}

	prec := dblDig
	if f32 := float32(v); math.Abs(float64(f32)-v) <= fltEpsilon*math.Abs(v) {
		prec = fltDig
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'g', prec, 64)
	out := dst[start:]

	// Guarantee a '.' or an exponent marker is present, so the value is
	// never mistaken for an integer on a later read.
	if bytes.IndexByte(out, '.') < 0 && bytes.IndexByte(out, 'e') < 0 && bytes.IndexByte(out, 'E') < 0 {
		dst = dst[:start]
		dst = strconv.AppendFloat(dst, v, 'f', 1, 64)
		out = dst[start:]
	}

	// Strip trailing fractional zeros down to a single digit, so e.g.
	// "1.50000" reads as "1.5" and "1.00000" reads as "1.0", never "1.".
	if dot := bytes.IndexByte(out, '.'); dot >= 0 && bytes.IndexByte(out, 'e') < 0 && bytes.IndexByte(out, 'E') < 0 {
		end := len(out)
		for end > dot+2 && out[end-1] == '0' {
			end--
		}
		dst = dst[:start+end]
	}
	return dst, nil
}

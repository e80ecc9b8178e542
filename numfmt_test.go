// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendFloat64NonFinite(t *testing.T) {
	t.Parallel()
	b, err := appendFloat64(nil, math.NaN())
	require.NoError(t, err)
	require.Equal(t, "null", string(b))

	b, err = appendFloat64(nil, math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, "1e999", string(b))

	b, err = appendFloat64(nil, math.Inf(-1))
	require.NoError(t, err)
	require.Equal(t, "-1e999", string(b))
}

func TestAppendFloat64AlwaysHasDotOrExponent(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{0, 1, -1, 42, 100, -100} {
		b, err := appendFloat64(nil, v)
		require.NoError(t, err)
		s := string(b)
		require.True(t, containsAny(s, ".eE"), "expected %q to contain '.' or an exponent", s)
	}
}

func TestAppendFloat64RoundTrips(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{0.1, 3.14159265358979, 1e300, -1e-300, 123456789.123456} {
		b, err := appendFloat64(nil, v)
		require.NoError(t, err)
		got, perr := strconv.ParseFloat(string(b), 64)
		require.NoError(t, perr)
		require.InEpsilon(t, v, got, 1e-9)
	}
}

func TestAppendFloat64TrailingZeroPolicy(t *testing.T) {
	t.Parallel()
	b, err := appendFloat64(nil, 1.0)
	require.NoError(t, err)
	require.Equal(t, "1.0", string(b))
}

func TestAppendIntForms(t *testing.T) {
	t.Parallel()
	require.Equal(t, "-9223372036854775808", string(appendInt64(nil, math.MinInt64)))
	require.Equal(t, "18446744073709551615", string(appendUint64(nil, math.MaxUint64)))
}

func containsAny(s, chars string) bool {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(chars); j++ {
			if s[i] == chars[j] {
				return true
			}
		}
	}
	return false
}

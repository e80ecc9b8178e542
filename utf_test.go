// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHex4(t *testing.T) {
	t.Parallel()
	v, ok := decodeHex4([]byte("1F600"[:4]))
	require.True(t, ok)
	require.Equal(t, uint16(0x1F60), v)

	_, ok = decodeHex4([]byte("12zz"))
	require.False(t, ok)
}

func TestCombineSurrogates(t *testing.T) {
	t.Parallel()
	// U+1F600 GRINNING FACE encodes as the surrogate pair D83D DE00.
	r := combineSurrogates(0xD83D, 0xDE00)
	require.Equal(t, rune(0x1F600), r)
}

func TestEncodeUTF8Rune(t *testing.T) {
	t.Parallel()
	cases := []struct {
		r    rune
		want []byte
	}{
		{0x24, []byte{0x24}},
		{0xA2, []byte{0xC2, 0xA2}},
		{0x20AC, []byte{0xE2, 0x82, 0xAC}},
		{0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
	}
	for _, c := range cases {
		buf := make([]byte, 4)
		n, err := encodeUTF8Rune(buf, c.r)
		require.NoError(t, err)
		require.Equal(t, c.want, buf[:n])
	}
}

func TestEncodeUTF8RuneTooLong(t *testing.T) {
	t.Parallel()
	var buf [1]byte
	_, err := encodeUTF8Rune(buf[:], 0x20AC)
	require.ErrorIs(t, err, DataTooLong)
}

func TestEncodeUTF8RuneOutOfRange(t *testing.T) {
	t.Parallel()
	var buf [4]byte
	_, err := encodeUTF8Rune(buf[:], 0x110000)
	require.ErrorIs(t, err, InvalidCharacter)
}

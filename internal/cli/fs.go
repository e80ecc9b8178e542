// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"io"

	"github.com/spf13/afero"

	"github.com/sigsafe/jsoncodec"
)

// aferoFileSystem adapts an afero.Fs to jsoncodec.FileSystem, which is how
// the splice command gets its testability: tests substitute an
// afero.NewMemMapFs() for the real filesystem the CLI otherwise defaults
// to (afero.NewOsFs()).
type aferoFileSystem struct {
	fs afero.Fs
}

func (a aferoFileSystem) Open(name string) (io.ReadCloser, error) {
	return a.fs.Open(name)
}

var _ jsoncodec.FileSystem = aferoFileSystem{}

// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jsoncodec is a thin front end over the jsoncodec package: it
// re-encodes a JSON document (optionally pretty-printed) and splices one
// or more JSON fragments into a document being built. It exists to
// exercise the library from the command line and is not itself part of
// the codec's contract.
package main

import (
	"fmt"
	"os"

	"github.com/sigsafe/jsoncodec/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

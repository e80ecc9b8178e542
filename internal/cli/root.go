// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	osFs    = afero.NewOsFs()
)

// NewRootCommand builds the jsoncodec command tree: encode, decode, and splice.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsoncodec",
		Short:         "Re-encode, inspect, and splice JSON documents with the jsoncodec library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newEncodeCommand())
	root.AddCommand(newDecodeCommand())
	root.AddCommand(newSpliceCommand())
	return root
}

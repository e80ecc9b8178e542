// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sigsafe/jsoncodec"
)

func newEncodeCommand() *cobra.Command {
	var pretty bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "encode <file>",
		Short: "Decode a JSON file and re-encode it through the codec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			sugar := logger.Sugar()

			data, err := afero.ReadFile(osFs, args[0])
			if err != nil {
				sugar.Errorw("read input", "error", err)
				return err
			}

			var buf bytes.Buffer
			if err := jsoncodec.Reformat(jsoncodec.WriterSink{W: &buf}, pretty, data); err != nil {
				sugar.Errorw("reformat failed", "error", err, "file", args[0])
				return err
			}

			out := os.Stdout
			if outPath != "" {
				f, err := osFs.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				_, err = f.Write(buf.Bytes())
				return err
			}
			_, err = out.Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the output with indentation")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

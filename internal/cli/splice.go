// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sigsafe/jsoncodec"
)

func newSpliceCommand() *cobra.Command {
	var pretty bool
	var continueOnError bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "splice <file>...",
		Short: "Splice one or more JSON files together as elements of one array",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			sugar := logger.Sugar()

			var buf bytes.Buffer
			enc := jsoncodec.NewEncoder(jsoncodec.WriterSink{W: &buf}, pretty)
			if err := enc.BeginObject(""); err != nil {
				return err
			}
			if err := enc.BeginArray("files"); err != nil {
				return err
			}

			splicer := jsoncodec.NewSplicer(enc, 0)
			fs := aferoFileSystem{fs: osFs}

			var errs error
			for _, path := range args {
				name := filepath.Base(path)
				err := splicer.AddJSONFromFile(context.Background(), fs, name, path, true)
				if err != nil {
					sugar.Errorw("splice failed", "file", path, "error", err)
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
					if !continueOnError {
						return errs
					}
				}
			}
			if errs != nil && !continueOnError {
				return errs
			}

			if err := enc.EndContainer(); err != nil { // close "files" array
				return err
			}
			if err := enc.End(); err != nil {
				return err
			}

			if outPath != "" {
				f, err := osFs.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if _, err := f.Write(buf.Bytes()); err != nil {
					return err
				}
			} else if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
				return err
			}
			return errs
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the output with indentation")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "keep splicing remaining files after a failure")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

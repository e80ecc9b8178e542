// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sigsafe/jsoncodec"
)

// loggingHandler reports every decoder callback as a structured log event,
// for `jsoncodec decode`'s token-stream inspection mode.
type loggingHandler struct {
	log *zap.SugaredLogger
}

func (h loggingHandler) BeginArray(name string) error {
	h.log.Infow("beginArray", "name", name)
	return nil
}

func (h loggingHandler) BeginObject(name string) error {
	h.log.Infow("beginObject", "name", name)
	return nil
}

func (h loggingHandler) EndContainer() error {
	h.log.Infow("endContainer")
	return nil
}

func (h loggingHandler) Bool(name string, v bool) error {
	h.log.Infow("bool", "name", name, "value", v)
	return nil
}

func (h loggingHandler) Int64(name string, v int64) error {
	h.log.Infow("int64", "name", name, "value", v)
	return nil
}

func (h loggingHandler) Uint64(name string, v uint64) error {
	h.log.Infow("uint64", "name", name, "value", v)
	return nil
}

func (h loggingHandler) Float64(name string, v float64) error {
	h.log.Infow("float64", "name", name, "value", v)
	return nil
}

func (h loggingHandler) Null(name string) error {
	h.log.Infow("null", "name", name)
	return nil
}

func (h loggingHandler) String(name, v string) error {
	h.log.Infow("string", "name", name, "value", v)
	return nil
}

func (h loggingHandler) EndData() error {
	h.log.Infow("endData")
	return nil
}

func newDecodeCommand() *cobra.Command {
	var nameBufSize, valBufSize int

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a JSON file and report its token stream",
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

			nameBuf := make([]byte, nameBufSize)
			valBuf := make([]byte, valBufSize)
			offset, err := jsoncodec.Decode(data, nameBuf, valBuf, loggingHandler{log: sugar})
			if err != nil {
				sugar.Errorw("decode failed", "error", err, "offset", offset, "file", args[0])
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&nameBufSize, "name-buf", 1<<12, "scratch buffer size for member names")
	cmd.Flags().IntVar(&valBufSize, "value-buf", 1<<16, "scratch buffer size for string values")
	return cmd
}

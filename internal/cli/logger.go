// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import "go.uber.org/zap"

// newLogger builds the structured logger used by every subcommand. The
// codec package itself never logs -- a logger is an external collaborator
// the core encoder/decoder/splicer have no business depending on -- so
// zap is confined entirely to this command-line layer.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

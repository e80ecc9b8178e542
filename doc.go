// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsoncodec is a streaming JSON codec built for hostile,
// resource-constrained call sites: crash handlers, signal handlers, and
// anywhere else dynamic allocation and unbounded recursion are unsafe.
//
// It provides three cooperating pieces:
//
//   - an event-driven [Encoder] that emits JSON token by token to a
//     caller-supplied [Sink];
//   - a recursive-descent decoder, the package-level [Decode] function, that
//     parses a byte range and invokes a caller-supplied [Handler] per token;
//   - a [Splicer] that drives a decode pass over JSON read from a file or
//     held in memory and forwards every token straight into an [Encoder],
//     effectively concatenating pre-existing JSON fragments into a larger
//     document.
//
// The codec bounds container nesting to [MaxDepth] and uses an explicit
// stack for the encoder's container tracking rather than Go-stack
// recursion, so that nesting depth is a checked runtime value rather than
// an assumption about available stack space. It produces and consumes
// strictly valid JSON with two deliberate, documented deviations from
// RFC 8259: see the number formatter for non-finite floats, and the
// element decoder for lax comma handling between siblings.
package jsoncodec

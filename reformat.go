// Copyright 2024 The jsoncodec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncodec

// reformatHandler forwards every decoder callback straight into an
// Encoder unchanged, the identity case of the splicer's name-substitution
// logic: every name, including the root's, passes through as-is.
type reformatHandler struct {
	enc *Encoder
}

func (h reformatHandler) BeginArray(name string) error        { return h.enc.BeginArray(name) }
func (h reformatHandler) BeginObject(name string) error       { return h.enc.BeginObject(name) }
func (h reformatHandler) EndContainer() error                 { return h.enc.EndContainer() }
func (h reformatHandler) Bool(name string, v bool) error      { return h.enc.AddBool(name, v) }
func (h reformatHandler) Int64(name string, v int64) error    { return h.enc.AddInt64(name, v) }
func (h reformatHandler) Uint64(name string, v uint64) error  { return h.enc.AddUint64(name, v) }
func (h reformatHandler) Float64(name string, v float64) error {
	return h.enc.AddFloat64(name, v)
}
func (h reformatHandler) Null(name string) error          { return h.enc.AddNull(name) }
func (h reformatHandler) String(name, v string) error     { return h.enc.AddStringStr(name, v) }
func (h reformatHandler) EndData() error                  { return nil }

const (
	reformatNameBufSize  = 1 << 12
	reformatValueBufSize = 1 << 16
)

// Reformat decodes a single JSON value from data and re-encodes it through
// sink, pretty-printed if pretty is true. It is the library-level
// operation the "encode" CLI subcommand is built on: decode once, replay
// every token into a fresh Encoder.
func Reformat(sink Sink, pretty bool, data []byte) error {
	enc := NewEncoder(sink, pretty)
	h := reformatHandler{enc: enc}
	var nameBuf [reformatNameBufSize]byte
	var valBuf [reformatValueBufSize]byte
	if _, err := Decode(data, nameBuf[:], valBuf[:], h); err != nil {
		return err
	}
	return enc.End()
}

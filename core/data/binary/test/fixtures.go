// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package test holds stream fixtures shared by the codec tests.
package test

import (
	"io"

	"github.com/google/varint/core/fault"
)

const (
	// ReadError is returned by Bytes once its data is exhausted.
	ReadError = fault.Const("Test read error")
	// WriteError is returned by LimitedWriter once its limit is reached.
	WriteError = fault.Const("Test write error")
)

// Bytes is a reader over Data that fails with ReadError, rather than
// io.EOF, once the data is exhausted.
type Bytes struct {
	Data []byte
	pos  int
}

// Read implements io.Reader.
func (b *Bytes) Read(p []byte) (int, error) {
	if b.pos >= len(b.Data) {
		return 0, ReadError
	}
	n := copy(p, b.Data[b.pos:])
	b.pos += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (b *Bytes) ReadByte() (byte, error) {
	if b.pos >= len(b.Data) {
		return 0, ReadError
	}
	c := b.Data[b.pos]
	b.pos++
	return c, nil
}

// Consumed returns the number of bytes read so far.
func (b *Bytes) Consumed() int { return b.pos }

// LimitedWriter accepts up to Limit bytes and then fails with WriteError.
type LimitedWriter struct {
	Limit   int
	Written []byte
}

// Write implements io.Writer. A write that crosses the limit stores the
// bytes that fit and reports WriteError.
func (w *LimitedWriter) Write(p []byte) (int, error) {
	space := w.Limit - len(w.Written)
	if space < 0 {
		space = 0
	}
	if len(p) <= space {
		w.Written = append(w.Written, p...)
		return len(p), nil
	}
	w.Written = append(w.Written, p[:space]...)
	return space, WriteError
}

// WriteByte implements io.ByteWriter.
func (w *LimitedWriter) WriteByte(c byte) error {
	_, err := w.Write([]byte{c})
	return err
}

// Writer hides every method of an io.Writer except Write, so that adapters
// cannot take a byte-level shortcut.
func Writer(w io.Writer) io.Writer { return writerOnly{w} }

// Reader hides every method of an io.Reader except Read.
func Reader(r io.Reader) io.Reader { return readerOnly{r} }

type writerOnly struct{ io.Writer }
type readerOnly struct{ io.Reader }

// StallingWriter reports success without consuming any bytes.
type StallingWriter struct{}

// Write implements io.Writer.
func (StallingWriter) Write(p []byte) (int, error) { return 0, nil }

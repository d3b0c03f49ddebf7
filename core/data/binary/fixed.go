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


package binary

import "io"

// FixedWriter is a sink over a caller supplied buffer of fixed capacity.
// Writing past the end of the buffer fails with io.ErrShortWrite; bytes that
// fit before the failure are kept, nothing is silently dropped.
type FixedWriter struct {
	buf []byte
	n   int
}

// NewFixedWriter returns a FixedWriter that fills buf from the start.
func NewFixedWriter(buf []byte) *FixedWriter {
	return &FixedWriter{buf: buf}
}

// WriteByte implements io.ByteWriter.
func (w *FixedWriter) WriteByte(c byte) error {
	if w.n >= len(w.buf) {
		return io.ErrShortWrite
	}
	w.buf[w.n] = c
	w.n++
	return nil
}

// Write implements io.Writer. It copies as much of p as fits and returns
// io.ErrShortWrite if any of p did not.
func (w *FixedWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.n:], p)
	w.n += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Bytes returns the bytes written so far.
func (w *FixedWriter) Bytes() []byte { return w.buf[:w.n] }

// Len returns the number of bytes written so far.
func (w *FixedWriter) Len() int { return w.n }

// Cap returns the capacity of the underlying buffer.
func (w *FixedWriter) Cap() int { return len(w.buf) }

// Reset discards the written bytes, making the full capacity available again.
func (w *FixedWriter) Reset() { w.n = 0 }

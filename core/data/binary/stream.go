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


// Package binary adapts byte streams to the one-byte-at-a-time source and
// sink contracts used by the varint codec.
//
// The adapters are deliberately unbuffered: each ReadByte or WriteByte call
// maps onto exactly one call of the wrapped stream, and any error the stream
// reports is returned unchanged.
package binary

import "io"

// Source returns an io.ByteReader that reads from r.
// If r already implements io.ByteReader it is returned as is.
// Otherwise each ReadByte reads exactly one byte with io.ReadFull, so an
// exhausted stream reports io.EOF and other failures are passed through.
func Source(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &source{reader: r}
}

// Sink returns an io.ByteWriter that writes to w.
// If w already implements io.ByteWriter it is returned as is.
// Otherwise each WriteByte issues one Write of a single byte. A Write that
// reports no progress without an error fails with io.ErrShortWrite.
func Sink(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &sink{writer: w}
}

type source struct {
	reader io.Reader
	tmp    [1]byte
}

type sink struct {
	writer io.Writer
	tmp    [1]byte
}

func (s *source) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.reader, s.tmp[:]); err != nil {
		return 0, err
	}
	return s.tmp[0], nil
}

func (s *sink) WriteByte(c byte) error {
	s.tmp[0] = c
	n, err := s.writer.Write(s.tmp[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}

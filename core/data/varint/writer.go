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


package varint

import (
	"io"

	"golang.org/x/exp/constraints"
)

// Write encodes v to w using the minimal number of bytes, and returns the
// number of bytes written.
//
// The first error returned by w aborts the write and is returned unchanged,
// along with the count of bytes w accepted before it.
func Write[T constraints.Unsigned](w io.ByteWriter, v T) (int, error) {
	return write(w, uint64(v))
}

// WriteUint encodes v to w as an unsigned integer of the given width.
// If v does not fit in width bits, ErrOverflow is returned and nothing is
// written.
func WriteUint(w io.ByteWriter, width int, v uint64) (int, error) {
	l, ok := limitOf(width)
	if !ok {
		return 0, ErrUnsupportedWidth
	}
	if l.bits < 64 && v>>uint(l.bits) != 0 {
		return 0, ErrOverflow
	}
	return write(w, v)
}

func write(w io.ByteWriter, x uint64) (int, error) {
	n := 0
	for x >= more {
		if err := w.WriteByte(byte(x) | more); err != nil {
			return n, err
		}
		x >>= 7
		n++
	}
	if err := w.WriteByte(byte(x)); err != nil {
		return n, err
	}
	return n + 1, nil
}

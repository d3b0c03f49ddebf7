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

// Read decodes a single varint from r into a T.
//
// Errors returned by r, including io.EOF, are returned unchanged. If the
// encoded value needs more bits than T has, Read returns ErrOverflow. The
// overflow is detected at the first byte that cannot belong to a T, so no
// more than Limits(width of T) allows is ever consumed. Bytes read before a
// failure are not pushed back.
func Read[T constraints.Unsigned](r io.ByteReader) (T, error) {
	l, ok := limitOf(width[T]())
	if !ok {
		return 0, ErrUnsupportedWidth
	}
	x, err := read(r, l)
	if err != nil {
		return 0, err
	}
	return narrow[T](x)
}

// ReadUint decodes a single varint from r, bounded to an unsigned integer of
// the given width, and returns it widened to a uint64.
func ReadUint(r io.ByteReader, width int) (uint64, error) {
	l, ok := limitOf(width)
	if !ok {
		return 0, ErrUnsupportedWidth
	}
	return read(r, l)
}

func read(r io.ByteReader, l limit) (uint64, error) {
	var x uint64
	var shift uint
	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b < more {
			if i == l.last && b > l.mask {
				return 0, ErrOverflow
			}
			return x | uint64(b)<<shift, nil
		}
		// A continuation at the last index puts the terminal byte past it.
		if i >= l.last {
			return 0, ErrOverflow
		}
		x |= uint64(b&payload) << shift
		shift += 7
	}
}

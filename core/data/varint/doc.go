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


// Package varint implements the LEB128 style unsigned variable length integer
// encoding.
//
// Each encoded byte carries seven payload bits in its low bits and a
// continuation flag in bit 7. Groups are written least significant first, and
// the first byte with a clear continuation flag terminates the value:
//
//	300 = 0b10_0101100  ->  0xac 0x02
//
// Values are read from an io.ByteReader and written to an io.ByteWriter; use
// the adapters in core/data/binary for plain io.Reader and io.Writer streams.
//
// Decoding is bounded by the width of the target integer type rather than by
// 64 bits: reading a uint8 accepts at most two bytes, and the second byte may
// only carry a single payload bit. Anything larger fails with ErrOverflow.
package varint

import "github.com/google/varint/core/fault"

const (
	// ErrOverflow is returned when a decoded value does not fit in the target
	// integer type, or a value passed to WriteUint does not fit the width.
	ErrOverflow = fault.Const("varint overflows target integer")

	// ErrUnsupportedWidth is returned by the width dispatched functions for a
	// bit width other than 8, 16, 32 or 64.
	ErrUnsupportedWidth = fault.Const("unsupported varint integer width")
)

const (
	// MaxLen is the longest encoding of a 64 bit value.
	MaxLen = 10

	more    = 0x80 // continuation flag
	payload = 0x7f
)

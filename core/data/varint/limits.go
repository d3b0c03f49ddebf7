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
	"math/bits"

	"golang.org/x/exp/constraints"
)

// limit is the decode boundary for one integer width.
type limit struct {
	bits int  // the integer width, 0 for unsupported widths
	last int  // index of the last byte that can carry bits of the value
	mask byte // largest payload the byte at last may hold
}

// limits is indexed by integer width.
var limits = [...]limit{
	8:  limitFor(8),
	16: limitFor(16),
	32: limitFor(32),
	64: limitFor(64),
}

func limitFor(width int) limit {
	last := (width+6)/7 - 1
	return limit{
		bits: width,
		last: last,
		mask: byte(1)<<uint(width-7*last) - 1,
	}
}

func limitOf(width int) (limit, bool) {
	if width < 0 || width >= len(limits) || limits[width].bits == 0 {
		return limit{}, false
	}
	return limits[width], true
}

// Limits returns the decode boundary for integers of the given width: the
// index of the last byte an encoding may have, and the largest payload that
// byte may carry. ok is false for widths other than 8, 16, 32 and 64.
func Limits(width int) (last int, mask byte, ok bool) {
	l, ok := limitOf(width)
	return l.last, l.mask, ok
}

// width returns the number of bits in T. uint and uintptr take the platform
// width.
func width[T constraints.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// narrow converts the accumulator to T, failing if it does not fit.
func narrow[T constraints.Unsigned](x uint64) (T, error) {
	if x > uint64(^T(0)) {
		return 0, ErrOverflow
	}
	return T(x), nil
}

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

import "golang.org/x/exp/constraints"

// Len returns the number of bytes the encoding of v occupies, between 1 and
// MaxLen.
func Len(v uint64) int {
	n := 1
	for v >= more {
		v >>= 7
		n++
	}
	return n
}

// Size returns the number of bytes the encoding of v occupies.
func Size[T constraints.Unsigned](v T) int {
	return Len(uint64(v))
}

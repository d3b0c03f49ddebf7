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


package varint_test

import (
	"bytes"
	"fmt"

	"github.com/google/varint/core/data/varint"
)

func ExampleWrite() {
	buf := &bytes.Buffer{}
	n, _ := varint.Write(buf, uint32(300))
	fmt.Printf("%d bytes: % x\n", n, buf.Bytes())
	// Output: 2 bytes: ac 02
}

func ExampleRead() {
	data := []byte{0xac, 0x02}
	v, _ := varint.Read[uint16](bytes.NewReader(data))
	fmt.Println(v)
	_, err := varint.Read[uint8](bytes.NewReader(data))
	fmt.Println(err)
	// Output:
	// 300
	// varint overflows target integer
}

func ExampleLen() {
	fmt.Println(varint.Len(127), varint.Len(128), varint.Len(1<<63))
	// Output: 1 2 10
}

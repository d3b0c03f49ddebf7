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


// The varint command encodes and decodes LEB128 unsigned varints.
package main

import (
	"io"
	"os"

	"github.com/google/varint/core/app"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func main() {
	app.ShortHelp = "varint encodes, decodes and sizes LEB128 unsigned varints"
	app.ShortUsage = "encode|decode|size [args]"
	app.Run(app.VerbMain)
}

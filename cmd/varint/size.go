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


package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"

	"github.com/google/varint/core/app"
	"github.com/google/varint/core/data/varint"
)

type sizeVerb struct{}

func init() {
	v := &sizeVerb{}
	app.AddVerb(&app.Verb{
		Name:       "size",
		ShortHelp:  "Prints the encoded length of numbers",
		ShortUsage: "<n>...",
		Run:        v.Run,
	})
}

func (v *sizeVerb) Run(ctx context.Context, flags *flag.FlagSet) error {
	if flags.NArg() == 0 {
		return app.UsageError.New("size needs at least one number")
	}
	values, err := parseNumbers(flags.Args())
	if err != nil {
		return err
	}
	out := bufio.NewWriter(stdout)
	defer out.Flush()
	for _, n := range values {
		fmt.Fprintln(out, varint.Len(n))
	}
	return nil
}

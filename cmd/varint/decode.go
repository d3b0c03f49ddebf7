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
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/varint/core/app"
	"github.com/google/varint/core/data/binary"
	"github.com/google/varint/core/data/varint"
	"github.com/google/varint/core/fault"
	"github.com/google/varint/core/log"
	"github.com/pkg/errors"
)

type decodeVerb struct {
	Bits int
	In   string
}

func init() {
	v := &decodeVerb{}
	flags := flag.NewFlagSet("decode", flag.ContinueOnError)
	flags.IntVar(&v.Bits, "bits", 64, "width of the unsigned integers: 8, 16, 32 or 64")
	flags.StringVar(&v.In, "in", "", "file of raw varints to decode, - for stdin")
	app.AddVerb(&app.Verb{
		Name:       "decode",
		ShortHelp:  "Decodes hex or raw varint sequences",
		ShortUsage: "[-bits w] [-in file] [hex]...",
		Flags:      flags,
		Run:        v.Run,
	})
}

func (v *decodeVerb) Run(ctx context.Context, flags *flag.FlagSet) error {
	if _, _, ok := varint.Limits(v.Bits); !ok {
		return app.UsageError.New("Unsupported width %d", v.Bits)
	}
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if flags.NArg() == 0 {
		r, closer, err := v.input()
		if err != nil {
			return err
		}
		defer closer()
		return decodeAll(ctx, r, v.Bits, out)
	}
	if v.In != "" {
		return app.UsageError.New("-in cannot be combined with hex arguments")
	}

	var failures fault.List
	for _, arg := range flags.Args() {
		data, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
		if err != nil {
			return app.UsageError.New("Invalid hex %q", arg)
		}
		ctx := log.V{"input": arg}.Bind(ctx)
		failures.Collect(errors.Wrapf(decodeAll(ctx, bytes.NewReader(data), v.Bits, out), "%s", arg))
	}
	return failures.Err()
}

func (v *decodeVerb) input() (io.Reader, func(), error) {
	if v.In == "" || v.In == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(v.In)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input")
	}
	return f, func() { f.Close() }, nil
}

// decodeAll decodes consecutive varints from r until it is exhausted,
// printing each value on its own line. A stream that ends inside a varint
// fails with io.ErrUnexpectedEOF.
func decodeAll(ctx context.Context, r io.Reader, bits int, out io.Writer) error {
	src := &countingReader{r: binary.Source(bufio.NewReader(r))}
	count := 0
	for {
		start := src.offset
		n, err := varint.ReadUint(src, bits)
		switch {
		case err == io.EOF && src.offset == start:
			log.D(log.V{"values": count, "bytes": start}.Bind(ctx), "Decoded")
			return nil
		case err == io.EOF:
			return errors.Wrapf(io.ErrUnexpectedEOF, "offset %d", start)
		case err != nil:
			return errors.Wrapf(err, "offset %d", start)
		}
		fmt.Fprintln(out, n)
		count++
	}
}

type countingReader struct {
	r      io.ByteReader
	offset int
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.offset++
	}
	return b, err
}

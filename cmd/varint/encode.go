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
	"encoding/hex"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/varint/core/app"
	"github.com/google/varint/core/data/binary"
	"github.com/google/varint/core/data/varint"
	"github.com/google/varint/core/log"
	"github.com/pkg/errors"
)

type encodeVerb struct {
	Sep  string
	Bits int
	Raw  bool
}

func init() {
	v := &encodeVerb{}
	flags := flag.NewFlagSet("encode", flag.ContinueOnError)
	flags.StringVar(&v.Sep, "sep", "", "separator printed between encoded bytes")
	flags.IntVar(&v.Bits, "bits", 64, "width of the unsigned integers: 8, 16, 32 or 64")
	flags.BoolVar(&v.Raw, "raw", false, "write the encoded bytes instead of hex")
	app.AddVerb(&app.Verb{
		Name:       "encode",
		ShortHelp:  "Encodes numbers as varints",
		ShortUsage: "[-sep s] [-bits w] [-raw] <n>...",
		Flags:      flags,
		Run:        v.Run,
	})
}

func (v *encodeVerb) Run(ctx context.Context, flags *flag.FlagSet) error {
	if _, _, ok := varint.Limits(v.Bits); !ok {
		return app.UsageError.New("Unsupported width %d", v.Bits)
	}
	if flags.NArg() == 0 {
		return app.UsageError.New("encode needs at least one number")
	}
	values, err := parseNumbers(flags.Args())
	if err != nil {
		return err
	}
	out := bufio.NewWriter(stdout)
	defer out.Flush()
	if v.Raw {
		return v.encodeRaw(ctx, out, values)
	}
	buf := binary.NewFixedWriter(make([]byte, varint.MaxLen))
	for _, n := range values {
		buf.Reset()
		if _, err := varint.WriteUint(buf, v.Bits, n); err != nil {
			return errors.Wrapf(err, "encoding %d", n)
		}
		log.D(log.V{"value": n, "bytes": buf.Len()}.Bind(ctx), "Encoded")
		fmt.Fprintln(out, hexBytes(buf.Bytes(), v.Sep))
	}
	return nil
}

func (v *encodeVerb) encodeRaw(ctx context.Context, out *bufio.Writer, values []uint64) error {
	sink := binary.Sink(out)
	total := 0
	for _, n := range values {
		written, err := varint.WriteUint(sink, v.Bits, n)
		total += written
		if err != nil {
			return errors.Wrapf(err, "encoding %d after %d bytes", n, total)
		}
	}
	log.D(log.V{"values": len(values), "bytes": total}.Bind(ctx), "Encoded raw")
	return nil
}

func hexBytes(data []byte, sep string) string {
	if sep == "" {
		return hex.EncodeToString(data)
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = hex.EncodeToString([]byte{b})
	}
	return strings.Join(parts, sep)
}

func parseNumbers(args []string) ([]uint64, error) {
	values := make([]uint64, len(args))
	for i, arg := range args {
		n, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return nil, app.UsageError.New("Invalid number %q", arg)
		}
		values[i] = n
	}
	return values, nil
}

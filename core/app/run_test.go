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


package app

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/google/varint/core/assert"
	"github.com/google/varint/core/fault"
	"github.com/google/varint/core/log"
	"github.com/pkg/errors"
)

func runForTest(args []string, main Task) (ExitCode, string) {
	stderr := &bytes.Buffer{}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	code := run(flags, args, stderr, main)
	return code, stderr.String()
}

func TestRunSuccess(t *testing.T) {
	assert := assert.To(t)
	called := false
	code, out := runForTest(nil, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.For("called").That(called).Equals(true)
	assert.For("code").That(code).Equals(SuccessExit)
	assert.For("output").ThatString(out).Equals("")
}

func TestRunUsageError(t *testing.T) {
	assert := assert.To(t)
	Name, ShortUsage = "varint", "verb [args]"
	code, out := runForTest(nil, func(ctx context.Context) error {
		return UsageError.New("unknown verb %q", "frob")
	})
	assert.For("code").That(code).Equals(UsageExit)
	assert.For("message").That(bytes.Contains([]byte(out), []byte(`unknown verb "frob"`))).Equals(true)
	assert.For("usage").That(bytes.Contains([]byte(out), []byte("Usage: varint [flags] verb [args]"))).Equals(true)
}

func TestRunFailure(t *testing.T) {
	assert := assert.To(t)
	const failure = fault.Const("varint overflows target integer")
	code, out := runForTest([]string{"-log-style", "brief"}, func(ctx context.Context) error {
		return errors.Wrap(failure, "offset 4")
	})
	assert.For("code").That(code).Equals(FatalExit)
	assert.For("output").ThatString(out).Equals("F: Main failed\nError: offset 4: varint overflows target integer\n")
}

func TestRunLogFlags(t *testing.T) {
	assert := assert.To(t)
	code, out := runForTest([]string{"-log-level", "warning", "-log-style", "raw"}, func(ctx context.Context) error {
		log.I(ctx, "hidden")
		log.W(ctx, "shown")
		return nil
	})
	assert.For("code").That(code).Equals(SuccessExit)
	assert.For("output").ThatString(out).Equals("shown\n")
}

func TestRunBadFlag(t *testing.T) {
	assert := assert.To(t)
	called := false
	code, _ := runForTest([]string{"-log-level", "loud"}, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.For("code").That(code).Equals(UsageExit)
	assert.For("called").That(called).Equals(false)
}

func TestRunArgs(t *testing.T) {
	assert := assert.To(t)
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	var got []string
	code := run(flags, []string{"-log-level", "error", "encode", "300"}, &bytes.Buffer{}, func(ctx context.Context) error {
		got = flags.Args()
		return nil
	})
	assert.For("code").That(code).Equals(SuccessExit)
	assert.For("args").That(got).DeepEquals([]string{"encode", "300"})
}

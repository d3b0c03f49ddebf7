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


// Package app runs command line tools: it parses the standard flags,
// configures logging on the root context, runs the main task and turns its
// outcome into the process exit status.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/varint/core/log"
	"github.com/zeebo/errs"
)

var (
	// Name is the full name of the application
	Name string
	// ExitFuncForTesting can be set to change the behaviour when the application exits.
	// It defaults to os.Exit
	ExitFuncForTesting = os.Exit
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
	// UsageFooter is printed at the bottom of the usage text
	UsageFooter = ""

	// UsageError classifies errors caused by bad command line arguments.
	// A task failing with an error of this class prints the usage text and
	// exits with UsageExit.
	UsageError = errs.Class("usage")
)

// Task is the signature of an application main entry point.
type Task func(ctx context.Context) error

func init() {
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

// Run performs all the work needed to start up an application.
// It parses the main command line arguments, builds a primary context that
// is cancelled on exit or interrupt, and runs the provided task.
func Run(main Task) {
	code := run(flag.CommandLine, os.Args[1:], os.Stderr, main)
	if code != SuccessExit {
		ExitFuncForTesting(int(code))
	}
}

func run(flags *flag.FlagSet, args []string, stderr io.Writer, main Task) (code ExitCode) {
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			code = cause
		default:
			panic(cause)
		}
	}()

	logFlags := logDefaults()
	logFlags.Register(flags)
	flags.SetOutput(stderr)
	flags.Usage = func() { usage(stderr, flags, "") }
	commandLine = flags
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return SuccessExit
		}
		return UsageExit
	}

	ctx, cancel := context.WithCancel(prepareContext(&logFlags, stderr))
	defer cancel()
	handleAbortSignals(cancel)

	err := main(ctx)
	switch {
	case err == nil:
		return SuccessExit
	case UsageError.Has(err):
		usage(stderr, flags, err.Error())
		return UsageExit
	default:
		log.F(ctx, true, "Main failed\nError: %v", err)
		return FatalExit
	}
}

func usage(out io.Writer, flags *flag.FlagSet, message string) {
	if message != "" {
		fmt.Fprintln(out, message)
		fmt.Fprintln(out)
	}
	if ShortHelp != "" {
		fmt.Fprintf(out, "%s: %s\n", Name, ShortHelp)
	}
	fmt.Fprintf(out, "Usage: %s [flags] %s\n", Name, ShortUsage)
	fmt.Fprintln(out, "Flags:")
	flags.PrintDefaults()
	verbHelp(out)
	fmt.Fprint(out, UsageFooter)
}

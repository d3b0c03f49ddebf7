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
	"context"
	"flag"
	"io"

	"github.com/google/varint/core/log"
)

// LogFlags holds the command line controls for the application logger.
type LogFlags struct {
	Level log.Severity
	Style log.Style
}

func logDefaults() LogFlags {
	return LogFlags{
		Level: log.Info,
		Style: log.Normal,
	}
}

// Register adds the logging flags to flags.
func (f *LogFlags) Register(flags *flag.FlagSet) {
	flags.Var(&f.Level, "log-level", "the minimum severity of logged messages: Verbose, Debug, Info, Warning, Error or Fatal")
	flags.Var(&f.Style, "log-style", "the format of logged messages: raw, brief, normal or detailed")
}

// wrapHandler stops the application once a message asking for the process to
// stop has been handled.
func wrapHandler(to log.Handler) log.Handler {
	return log.NewHandler(func(m *log.Message) {
		to.Handle(m)
		if m.StopProcess {
			to.Close()
			panic(FatalExit)
		}
	}, to.Close)
}

func prepareContext(flags *LogFlags, out io.Writer) context.Context {
	ctx := context.Background()
	ctx = log.PutTag(ctx, Name)
	ctx = log.PutFilter(ctx, log.SeverityFilter(flags.Level))
	ctx = log.PutHandler(ctx, wrapHandler(flags.Style.Handler(log.Stream(out))))
	return ctx
}

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
	"fmt"
	"io"
	"strings"
)

// Verb holds information about a runnable command.
type Verb struct {
	Name       string                                             // The name of the command
	ShortHelp  string                                             // Help for the purpose of the command
	ShortUsage string                                             // Help for how to use the command
	Flags      *flag.FlagSet                                      // The command line flags it accepts
	Run        func(ctx context.Context, flags *flag.FlagSet) error // The action for the command
}

var (
	globalVerbs []*Verb
	commandLine = flag.CommandLine
)

// AddVerb adds a new verb to the supported set, it will panic if a
// duplicate name is encountered.
func AddVerb(v *Verb) {
	for _, existing := range globalVerbs {
		if existing.Name == v.Name {
			panic(fmt.Errorf("Duplicate verb name %s", v.Name))
		}
	}
	if v.Flags == nil {
		v.Flags = flag.NewFlagSet(v.Name, flag.ContinueOnError)
	}
	globalVerbs = append(globalVerbs, v)
}

// FilterVerbs returns the verbs whose names match the specified prefix.
// An exact match is returned on its own.
func FilterVerbs(prefix string) (result []*Verb) {
	for _, v := range globalVerbs {
		if v.Name == prefix {
			return []*Verb{v}
		}
		if strings.HasPrefix(v.Name, prefix) {
			result = append(result, v)
		}
	}
	return result
}

// VerbMain is a task that can be handed to Run to invoke the verb handling
// system on the remaining command line arguments.
func VerbMain(ctx context.Context) error {
	return Invoke(ctx, commandLine.Args())
}

// Invoke runs the verb named by args[0], handing it the rest of args.
func Invoke(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return UsageError.New("Must supply a verb to %s", Name)
	}
	verb := args[0]
	matches := FilterVerbs(verb)
	switch len(matches) {
	case 1:
		v := matches[0]
		if err := v.Flags.Parse(args[1:]); err != nil {
			return UsageError.Wrap(err)
		}
		return v.Run(ctx, v.Flags)
	case 0:
		return UsageError.New("Verb '%s' is unknown", verb)
	default:
		return UsageError.New("Verb '%s' is ambiguous", verb)
	}
}

func verbHelp(out io.Writer) {
	if len(globalVerbs) == 0 {
		return
	}
	fmt.Fprintln(out, "Verbs:")
	longest := 0
	for _, v := range globalVerbs {
		if longest < len(v.Name) {
			longest = len(v.Name)
		}
	}
	format := fmt.Sprintf("    %%-%ds - %%s\n", longest)
	for _, v := range globalVerbs {
		fmt.Fprintf(out, format, v.Name, v.ShortHelp)
	}
}

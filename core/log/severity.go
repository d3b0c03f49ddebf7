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


package log

import (
	"fmt"
	"strings"
)

// Severity defines the severity of a logging message.
type Severity int

const (
	// Verbose indicates extremely verbose level messages.
	Verbose = Severity(iota)
	// Debug indicates debug-level messages.
	Debug
	// Info indicates minor informational messages that should generally be ignored.
	Info
	// Warning indicates issues that might affect performance or compatibility, but could be ignored.
	Warning
	// Error indicates non terminal failure conditions that may have an effect on results.
	Error
	// Fatal indicates a fatal error.
	Fatal
)

var severityNames = []string{"Verbose", "Debug", "Info", "Warning", "Error", "Fatal"}

// String returns the full name of the severity.
func (s Severity) String() string {
	if s < Verbose || int(s) >= len(severityNames) {
		return fmt.Sprintf("Severity<%d>", int(s))
	}
	return severityNames[s]
}

// Short returns the severity string with a single character.
func (s Severity) Short() string {
	if s < Verbose || int(s) >= len(severityNames) {
		return "?"
	}
	return severityNames[s][:1]
}

// Set implements flag.Value, accepting any severity name regardless of case.
func (s *Severity) Set(name string) error {
	for i, n := range severityNames {
		if strings.EqualFold(n, name) {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("Unknown severity %q, expected one of %v", name, severityNames)
}

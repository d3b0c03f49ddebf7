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
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Style provides customization for printing messages.
type Style struct {
	Name      string        // Name of the style.
	Timestamp bool          // If true, the timestamp will be printed if part of the message.
	Tag       bool          // If true, the tag will be printed if part of the message.
	Severity  SeverityStyle // How the severity of the message will be printed.
	Values    ValueStyle    // How the values of the message will be printed.
}

// SeverityStyle is an enumerator of ways that severities can be printed.
type SeverityStyle int

const (
	// NoSeverity is the option to disable the printing of the severity.
	NoSeverity = SeverityStyle(iota)
	// SeverityShort is the option to display the severity as a single character.
	SeverityShort
	// SeverityLong is the option to display the severity in its full name.
	SeverityLong
)

func (ss SeverityStyle) print(s Severity) string {
	if ss == SeverityShort {
		return s.Short()
	}
	return s.String()
}

// ValueStyle is an enumerator of ways that values can be printed.
type ValueStyle int

const (
	// NoValues is the option to disable the printing of values.
	NoValues = ValueStyle(iota)
	// ValuesSingleLine is the option to display all values on a single line.
	ValuesSingleLine
	// ValuesMultiLine is the option to display each value on a separate line.
	ValuesMultiLine
)

func (vs ValueStyle) print(v Values) string {
	switch vs {
	case ValuesSingleLine:
		t := make([]string, len(v))
		for i, v := range v {
			t[i] = fmt.Sprintf("%v: %v", v.Name, v.Value)
		}
		return fmt.Sprintf("(%v)", strings.Join(t, ", "))
	case ValuesMultiLine:
		buf := bytes.Buffer{}
		for _, v := range v {
			buf.WriteString(fmt.Sprintf("\n  %v: %v", v.Name, v.Value))
		}
		return buf.String()
	}
	return ""
}

var (
	// Raw is a style that only prints the text of the message.
	Raw = Style{Name: "raw"}

	// Brief is a style that only prints the text and short severity of the
	// message.
	Brief = Style{Name: "brief", Severity: SeverityShort}

	// Normal is a style that prints the timestamp, tag, short severity and
	// single line values.
	Normal = Style{
		Name:      "normal",
		Timestamp: true,
		Tag:       true,
		Severity:  SeverityShort,
		Values:    ValuesSingleLine,
	}

	// Detailed is a style that prints the timestamp, tag, long severity and
	// multi-line values.
	Detailed = Style{
		Name:      "detailed",
		Timestamp: true,
		Tag:       true,
		Severity:  SeverityLong,
		Values:    ValuesMultiLine,
	}

	styles = []Style{Raw, Brief, Normal, Detailed}
)

func (s Style) String() string { return s.Name }

// Set implements flag.Value, selecting one of the predefined styles by name.
func (s *Style) Set(name string) error {
	for _, style := range styles {
		if strings.EqualFold(style.Name, name) {
			*s = style
			return nil
		}
	}
	return fmt.Errorf("Unknown log style %q", name)
}

// Print returns the message formatted using the style.
func (s Style) Print(msg *Message) string {
	var parts [5]string
	m := parts[:0]
	if s.Timestamp && !msg.Time.IsZero() {
		m = append(m, HHMMSSsss(msg.Time))
	}
	if s.Severity != NoSeverity {
		m = append(m, s.Severity.print(msg.Severity)+":")
	}
	if s.Tag && msg.Tag != "" {
		m = append(m, fmt.Sprintf("[%s]", msg.Tag))
	}
	m = append(m, msg.Text)
	if s.Values != NoValues && len(msg.Values) > 0 {
		m = append(m, s.Values.print(msg.Values))
	}
	return strings.Join(m, " ")
}

// Handler returns a new Handler that writes each message formatted with the
// style to w.
func (s Style) Handler(w Writer) Handler {
	return NewHandler(func(msg *Message) { w(s.Print(msg), msg.Severity) }, nil)
}

// HHMMSSsss returns a timestamp in the form "HH:MM:SS.sss"
func HHMMSSsss(t time.Time) string {
	return t.Format("15:04:05.000")
}

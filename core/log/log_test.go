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


package log_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/varint/core/assert"
	"github.com/google/varint/core/log"
)

var testClock log.Clock

func init() {
	t, err := time.Parse("Mon Jan _2 15:04:05.999 2006", "Mon Jan 22 12:34:56.789 2000")
	if err != nil {
		panic(err)
	}
	testClock = log.FixedClock(t)
}

type testMessage struct {
	msg      string
	args     []interface{}
	values   log.V
	severity log.Severity
	tag      string

	raw      string
	brief    string
	normal   string
	detailed string
}

func (m testMessage) send(h log.Handler) {
	ctx := context.Background()
	ctx = log.PutHandler(ctx, h)
	ctx = log.PutTag(ctx, m.tag)
	ctx = log.PutClock(ctx, testClock)
	ctx = m.values.Bind(ctx)
	log.From(ctx).Logf(m.severity, false, m.msg, m.args...)
}

var testMessages = []testMessage{
	{
		msg:      "plain warning",
		severity: log.Warning,

		raw:      "plain warning",
		brief:    "W: plain warning",
		normal:   "12:34:56.789 W: plain warning",
		detailed: "12:34:56.789 Warning: plain warning",
	}, {
		msg:      "info with values",
		severity: log.Info,
		values:   log.V{"cat": "meow", "dog": "woof"},

		raw:      "info with values",
		brief:    "I: info with values",
		normal:   "12:34:56.789 I: info with values (cat: meow, dog: woof)",
		detailed: "12:34:56.789 Info: info with values \n  cat: meow\n  dog: woof",
	}, {
		msg:      "decoded %d of %d",
		args:     []interface{}{3, 4},
		severity: log.Error,
		tag:      "varint",
		values:   log.V{"bits": 32},

		raw:      "decoded 3 of 4",
		brief:    "E: decoded 3 of 4",
		normal:   "12:34:56.789 E: [varint] decoded 3 of 4 (bits: 32)",
		detailed: "12:34:56.789 Error: [varint] decoded 3 of 4 \n  bits: 32",
	},
}

func TestStyles(t *testing.T) {
	assert := assert.To(t)
	for _, test := range testMessages {
		for _, s := range []log.Style{log.Raw, log.Brief, log.Normal, log.Detailed} {
			expected := map[string]string{
				"raw":      test.raw,
				"brief":    test.brief,
				"normal":   test.normal,
				"detailed": test.detailed,
			}[s.Name]
			w, buf := log.Buffer()
			test.send(s.Handler(w))
			assert.For("%s(%s)", s.Name, test.msg).ThatString(buf.String()).Equals(expected)
		}
	}
}

func TestFilter(t *testing.T) {
	assert := assert.To(t)
	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Brief.Handler(w))
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "hidden")
	log.I(ctx, "hidden")
	log.W(ctx, "shown %d", 1)
	log.E(ctx, "shown %d", 2)
	assert.For("filtered").ThatString(buf.String()).Equals("W: shown 1\nE: shown 2")
}

func TestNoHandler(t *testing.T) {
	// Logging without a handler is a no-op.
	log.I(context.Background(), "nowhere")
}

func TestShadowedValues(t *testing.T) {
	assert := assert.To(t)
	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Normal.Handler(w))
	ctx = log.PutClock(ctx, log.NoClock)
	ctx = log.V{"offset": 0, "bits": 8}.Bind(ctx)
	log.Bind(ctx, log.V{"offset": 4}).I("overflow")
	assert.For("values").ThatString(buf.String()).Equals("I: overflow (bits: 8, offset: 4)")
}

func TestSeveritySet(t *testing.T) {
	assert := assert.To(t)
	var s log.Severity
	assert.For("set warning").ThatError(s.Set("warning")).Succeeded()
	assert.For("warning").That(s).Equals(log.Warning)
	assert.For("set bad").ThatError(s.Set("loud")).Failed()
	assert.For("unchanged").That(s).Equals(log.Warning)
	assert.For("short").ThatString(log.Fatal.Short()).Equals("F")
}

func TestStyleSet(t *testing.T) {
	assert := assert.To(t)
	s := log.Normal
	assert.For("set brief").ThatError(s.Set("Brief")).Succeeded()
	assert.For("brief").ThatString(s.String()).Equals("brief")
	assert.For("set bad").ThatError(s.Set("fancy")).Failed()
}

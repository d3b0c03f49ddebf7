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


package assert_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/varint/core/assert"
	"github.com/google/varint/core/fault"
	"github.com/pkg/errors"
)

type fakeT struct {
	fatal bytes.Buffer
	error bytes.Buffer
	log   bytes.Buffer
}

func (f *fakeT) Fatal(args ...interface{}) {
	fmt.Fprintln(&f.fatal, args...)
}
func (f *fakeT) Error(args ...interface{}) {
	fmt.Fprintln(&f.error, args...)
}
func (f *fakeT) Log(args ...interface{}) {
	fmt.Fprintln(&f.log, args...)
}

func TestManager(t *testing.T) {
	const (
		expectLog   = "Info:manager test\n    log to info\n"
		expectError = "Error:manager test\n    log to error\n"
		expectFatal = "Critical:manager test\n    log to fatal\n"
	)
	fake := &fakeT{}
	assert.To(fake).For("manager test").Log("log to info")
	assert.To(fake).For("manager test").Error("log to error")
	assert.To(fake).For("manager test").Fatal("log to fatal")
	if fake.log.String() != expectLog {
		t.Errorf("For info got %q expected %q", fake.log.String(), expectLog)
	}
	if fake.error.String() != expectError {
		t.Errorf("For error got %q expected %q", fake.error.String(), expectError)
	}
	if fake.fatal.String() != expectFatal {
		t.Errorf("For fatal got %q expected %q", fake.fatal.String(), expectFatal)
	}
}

func TestPassingAssertionsAreSilent(t *testing.T) {
	const overflow = fault.Const("overflow")
	fake := &fakeT{}
	a := assert.To(fake)
	ok := a.For("integer").ThatInteger(2).Equals(2) &&
		a.For("between").ThatInteger(10).IsBetween(1, 10) &&
		a.For("slice").ThatSlice([]byte{0xac, 0x02}).Equals([]byte{0xac, 0x02}) &&
		a.For("length").ThatSlice([]byte{0x00}).IsLength(1) &&
		a.For("error").ThatError(overflow).Equals(overflow) &&
		a.For("cause").ThatError(errors.Wrap(overflow, "value 3")).HasCause(overflow) &&
		a.For("message").ThatError(overflow).HasMessage("overflow") &&
		a.For("nil").ThatError(nil).Succeeded() &&
		a.For("value").That(uint8(128)).Equals(uint8(128)) &&
		a.For("deep").That([]uint64{1, 2}).DeepEquals([]uint64{1, 2}) &&
		a.For("string").ThatString([]byte("ac02")).Equals("ac02")
	if !ok {
		t.Errorf("A passing assertion reported failure")
	}
	if fake.error.Len() != 0 || fake.fatal.Len() != 0 {
		t.Errorf("Passing assertions produced output: %q %q", fake.error.String(), fake.fatal.String())
	}
}

func TestFailingAssertionsReport(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	for _, failed := range []bool{
		a.For("integer").ThatInteger(1).Equals(2),
		a.For("slice").ThatSlice([]byte{0xac}).Equals([]byte{0xac, 0x02}),
		a.For("longer slice").ThatSlice([]byte{0xac, 0x02, 0x00}).Equals([]byte{0xac, 0x02}),
		a.For("error").ThatError(nil).Failed(),
		a.For("message").ThatError(nil).HasMessage("overflow"),
		a.For("value").That(1).Equals(2),
	} {
		if failed {
			t.Errorf("A failing assertion reported success")
		}
	}
	if got := bytes.Count(fake.error.Bytes(), []byte("Error:")); got != 6 {
		t.Errorf("Expected 6 failure reports, got %d:\n%s", got, fake.error.String())
	}
}

func TestCritical(t *testing.T) {
	fake := &fakeT{}
	assert.To(fake).For("critical").Critical().ThatInteger(1).Equals(2)
	if fake.fatal.Len() == 0 {
		t.Errorf("Critical assertion did not report fatally")
	}
	if fake.error.Len() != 0 {
		t.Errorf("Critical assertion reported as an error: %q", fake.error.String())
	}
}

func TestSliceMismatchOutput(t *testing.T) {
	const expect = "Error:bytes\n" +
		"      0 172\n" +
		"    * 1 1 ==> 2"
	fake := &fakeT{}
	assert.To(fake).For("bytes").ThatSlice([]byte{0xac, 0x01}).Equals([]byte{0xac, 0x02})
	if got := fake.error.String(); got != expect+"\n" {
		t.Errorf("Slice mismatch output was %q expected %q", got, expect+"\n")
	}
}

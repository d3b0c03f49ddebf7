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

package fault

import "strings"

// List collects the errors of a batch of independent operations, such as
// decoding several varint arguments, so that every failure can be reported
// rather than only the first.
type List []error

// Collect adds err to the list. nil errors are ignored.
func (l *List) Collect(err error) {
	if err == nil {
		return
	}
	*l = append(*l, err)
}

// First returns the first error added to the list, or nil.
func (l List) First() error {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}

// Err returns nil for an empty list, the only error for a list of one and
// the list itself otherwise.
func (l List) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	default:
		return l
	}
}

// Error implements error by joining the messages of all collected errors.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

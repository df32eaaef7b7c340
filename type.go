// Copyright 2025 The varstruct Authors
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

package varstruct

import (
	"fmt"
	"strings"
)

// Type is the immutable descriptor table for a record type.
//
// A Type is built exactly once, by [Builder.Build], [TypeOf], or
// [ParseSchema], and is never mutated afterwards. It is shared by every
// instance of the record type and is safe for concurrent use.
type Type struct {
	members   []member
	byName    map[string]Field
	numArrays int
}

// NumMembers returns the number of declared members.
func (t *Type) NumMembers() int {
	return len(t.members)
}

// NumArrays returns the number of declared array members, which is also the
// number of array lengths every creation surface expects.
func (t *Type) NumArrays() int {
	return t.numArrays
}

// ByName returns the handle for the member with the given name.
func (t *Type) ByName(name string) (Field, bool) {
	f, ok := t.byName[name]
	return f, ok
}

// Name returns the name the member was registered under.
func (t *Type) Name(f Field) string {
	return t.members[f].name
}

// ElemSize returns the byte size of one element of the member. For scalars
// this is the member's whole extent in every instance.
func (t *Type) ElemSize(f Field) int {
	return t.members[f].size
}

// IsArray returns whether the member was declared as an array.
func (t *Type) IsArray(f Field) bool {
	return t.members[f].array
}

// Format implements [fmt.Formatter].
func (t *Type) Format(s fmt.State, verb rune) {
	var out strings.Builder
	out.WriteByte('{')
	for i, m := range t.members {
		if i > 0 {
			out.WriteString(", ")
		}
		if m.array {
			fmt.Fprintf(&out, "%s: []%dB", m.name, m.size)
		} else {
			fmt.Fprintf(&out, "%s: %dB", m.name, m.size)
		}
	}
	out.WriteByte('}')
	fmt.Fprint(s, out.String())
}

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

// Field is an opaque handle for a declared record member.
//
// Handles are dense ordinals assigned in declaration order, starting at
// zero. The handle returned when a member is registered with a [Builder] is
// the same one [Type.ByName] returns for that member's name, and is valid
// for every instance of the built type. Passing a handle from one [Type] to
// an instance of another is a contract violation.
type Field int

// member is the static descriptor for a single declared member.
type member struct {
	name  string
	size  int // bytes of one element
	array bool
}

// extent returns the number of bytes the member occupies, given the array
// length chosen for this instance. Scalars ignore n.
func (m *member) extent(n int) int {
	if !m.array {
		return m.size
	}
	return m.size * n
}

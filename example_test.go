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

package varstruct_test

import (
	"fmt"

	"github.com/The-Mad-Pirate/varstruct"
)

func Example() {
	// Declare the record's members once. This is a one-time cost per record
	// type, like regexp.Compile.
	b := varstruct.NewBuilder()
	header := varstruct.ScalarOf[uint32](b, "header")
	payload := varstruct.ArrayOf[byte](b, "payload")
	ty := b.Build()

	// Size the allocation before any buffer exists.
	layout := ty.Layout(10)
	buf := make([]byte, layout.SizeBytes())

	// Then take read-write access to it.
	rec := ty.Mutable(buf, 10)
	varstruct.Set[uint32](rec, header, 42)
	varstruct.SetAt[byte](rec, payload, 0, 5)

	fmt.Println("offsets:", rec.Offset(header), rec.Offset(payload))
	fmt.Println("size:", rec.SizeBytes(), "members:", rec.NumMembers())
	fmt.Println("values:", varstruct.Get[uint32](rec, header), varstruct.At[byte](rec, payload, 0))

	// Output:
	// offsets: 0 4
	// size: 14 members: 2
	// values: 42 5
}

func ExampleType_View() {
	ty, _ := varstruct.ParseSchema([]byte(`
- name: kind
  size: 1
- name: body
  size: 1
  array: true
`))

	kind, _ := ty.ByName("kind")
	body, _ := ty.ByName("body")

	// A View grants reads only; write operations do not exist on it.
	v := ty.ViewString("\x02hello", 5)
	fmt.Println(varstruct.Get[byte](v, kind), string(varstruct.At[byte](v, body, 4)))

	// Output:
	// 2 o
}

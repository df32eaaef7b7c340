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

package layout

import (
	"reflect"

	"github.com/The-Mad-Pirate/varstruct/internal/xsync"
)

var trivialMap xsync.Map[reflect.Type, bool]

// Trivial returns whether T is trivially copyable fixed-layout data: a type
// whose values may be duplicated by a raw byte copy.
//
// This is true for fixed-width numeric types, booleans, and arrays and
// structs built only out of such types. It is false for anything that
// carries a pointer (pointers, maps, chans, funcs, interfaces, strings,
// slices), since synthesizing pointers from raw bytes would hand the
// garbage collector garbage.
func Trivial[T any]() bool {
	return TrivialType(reflect.TypeFor[T]())
}

// TrivialType is [Trivial], for callers that already hold a [reflect.Type].
func TrivialType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true

	case reflect.Array:
		return TrivialType(t.Elem())

	case reflect.Struct:
		trivial, _ := trivialMap.LoadOrStore(t, func() bool {
			for i := range t.NumField() {
				if !TrivialType(t.Field(i).Type) {
					return false
				}
			}
			return true
		})
		return trivial

	default:
		// Pointers, unsafe pointers, chans, funcs, interfaces, maps,
		// strings, and slices all carry pointers.
		return false
	}
}

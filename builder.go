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
	"github.com/The-Mad-Pirate/varstruct/internal/xunsafe/layout"
)

// Names reserved for the record-wide queries of the byte layout contract.
// Members may not be registered under them.
const (
	reservedSizeBytes  = "size_bytes"
	reservedNumMembers = "num_members"
)

// Builder accumulates member descriptors in declaration order and finalizes
// them into an immutable [Type].
//
// Registration failures are programmer errors on par with a type that does
// not compile, so the registration methods panic; the panic value wraps one
// of [ErrReservedName], [ErrDuplicateName], [ErrInvalidType], or
// [ErrFinalized]. Callers that register from untrusted input should use
// [TypeOf] or [ParseSchema] instead, which report the same failures as
// ordinary errors.
//
// The zero Builder is ready to use.
type Builder struct {
	members []member
	byName  map[string]Field
	done    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return new(Builder)
}

// Scalar registers a scalar member whose element occupies elemSize bytes,
// and returns its handle.
func (b *Builder) Scalar(name string, elemSize int) Field {
	f, err := b.register(name, elemSize, false)
	if err != nil {
		panic(err)
	}
	return f
}

// Array registers an array member whose elements each occupy elemSize
// bytes, and returns its handle. The element count is chosen per instance,
// at creation.
func (b *Builder) Array(name string, elemSize int) Field {
	f, err := b.register(name, elemSize, true)
	if err != nil {
		panic(err)
	}
	return f
}

// ScalarOf registers a scalar member whose element type is T, deriving the
// element size from T's memory layout.
//
// T must be trivially copyable fixed-layout data; see [ErrInvalidType].
func ScalarOf[T any](b *Builder, name string) Field {
	checkTrivial[T]()
	return b.Scalar(name, layout.Size[T]())
}

// ArrayOf registers an array member whose element type is T, deriving the
// element size from T's memory layout.
//
// T must be trivially copyable fixed-layout data; see [ErrInvalidType].
func ArrayOf[T any](b *Builder, name string) Field {
	checkTrivial[T]()
	return b.Array(name, layout.Size[T]())
}

// Build finalizes the accumulated members into an immutable [Type].
//
// The Builder may not be used again afterwards; any further registration or
// Build panics with [ErrFinalized].
func (b *Builder) Build() *Type {
	if b.done {
		panic(errorf(errCodeFinalized, "Build called twice"))
	}
	b.done = true

	t := &Type{
		members: b.members,
		byName:  b.byName,
	}
	if t.byName == nil {
		t.byName = map[string]Field{}
	}
	for _, m := range t.members {
		if m.array {
			t.numArrays++
		}
	}

	// Hand the slices over to the Type; keeping them here, too, would let a
	// stale Builder reference mutate a finalized table.
	b.members = nil
	b.byName = nil
	return t
}

func (b *Builder) register(name string, elemSize int, array bool) (Field, error) {
	switch {
	case b.done:
		return 0, errorf(errCodeFinalized, "member %q registered after Build", name)
	case name == "" || name == reservedSizeBytes || name == reservedNumMembers:
		return 0, errorf(errCodeReservedName, "cannot name member %q", name)
	case elemSize <= 0:
		return 0, errorf(errCodeInvalidType, "member %q has element size %d", name, elemSize)
	}
	if _, ok := b.byName[name]; ok {
		return 0, errorf(errCodeDuplicateName, "member %q registered twice", name)
	}

	f := Field(len(b.members))
	b.members = append(b.members, member{name: name, size: elemSize, array: array})
	if b.byName == nil {
		b.byName = map[string]Field{}
	}
	b.byName[name] = f
	return f, nil
}

func checkTrivial[T any]() {
	if !layout.Trivial[T]() {
		var z T
		panic(errorf(errCodeInvalidType, "%T is not trivially copyable", z))
	}
}

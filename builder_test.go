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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Mad-Pirate/varstruct"
)

// catch runs fn and returns the error it panics with, or nil.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error) //nolint:errcheck
		}
	}()
	fn()
	return nil
}

func TestBuilderHandles(t *testing.T) {
	t.Parallel()

	b := varstruct.NewBuilder()
	header := b.Scalar("header", 4)
	payload := b.Array("payload", 1)
	trailer := varstruct.ScalarOf[uint64](b, "trailer")
	ty := b.Build()

	assert.Equal(t, varstruct.Field(0), header)
	assert.Equal(t, varstruct.Field(1), payload)
	assert.Equal(t, varstruct.Field(2), trailer)

	assert.Equal(t, 3, ty.NumMembers())
	assert.Equal(t, 1, ty.NumArrays())

	f, ok := ty.ByName("payload")
	require.True(t, ok)
	assert.Equal(t, payload, f)
	_, ok = ty.ByName("missing")
	assert.False(t, ok)

	assert.Equal(t, "header", ty.Name(header))
	assert.Equal(t, 4, ty.ElemSize(header))
	assert.False(t, ty.IsArray(header))
	assert.Equal(t, 1, ty.ElemSize(payload))
	assert.True(t, ty.IsArray(payload))
	assert.Equal(t, 8, ty.ElemSize(trailer))
}

func TestReservedNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"size_bytes", "num_members", ""} {
		b := varstruct.NewBuilder()
		err := catch(func() { b.Scalar(name, 4) })
		assert.ErrorIs(t, err, varstruct.ErrReservedName, "name %q", name)

		b = varstruct.NewBuilder()
		err = catch(func() { b.Array(name, 4) })
		assert.ErrorIs(t, err, varstruct.ErrReservedName, "name %q", name)
	}
}

func TestDuplicateName(t *testing.T) {
	t.Parallel()

	b := varstruct.NewBuilder()
	b.Scalar("x", 4)
	err := catch(func() { b.Array("x", 1) })
	assert.ErrorIs(t, err, varstruct.ErrDuplicateName)
}

func TestInvalidElementType(t *testing.T) {
	t.Parallel()

	type pointy struct {
		A uint32
		B *uint32
	}
	type flat struct {
		A uint32
		B [2]uint16
	}

	b := varstruct.NewBuilder()
	assert.ErrorIs(t, catch(func() { varstruct.ScalarOf[*int](b, "p") }), varstruct.ErrInvalidType)
	assert.ErrorIs(t, catch(func() { varstruct.ScalarOf[string](b, "s") }), varstruct.ErrInvalidType)
	assert.ErrorIs(t, catch(func() { varstruct.ArrayOf[[]byte](b, "b") }), varstruct.ErrInvalidType)
	assert.ErrorIs(t, catch(func() { varstruct.ScalarOf[pointy](b, "pp") }), varstruct.ErrInvalidType)
	assert.ErrorIs(t, catch(func() { varstruct.ArrayOf[map[int]int](b, "m") }), varstruct.ErrInvalidType)

	assert.ErrorIs(t, catch(func() { b.Scalar("z", 0) }), varstruct.ErrInvalidType)
	assert.ErrorIs(t, catch(func() { b.Array("n", -1) }), varstruct.ErrInvalidType)

	// The failures above must not have registered anything.
	varstruct.ScalarOf[flat](b, "ok")
	varstruct.ArrayOf[[4]byte](b, "blocks")
	varstruct.ScalarOf[complex128](b, "c")
	ty := b.Build()
	assert.Equal(t, 3, ty.NumMembers())
	assert.Equal(t, varstruct.Field(0), mustByName(t, ty, "ok"))
}

func TestFinalized(t *testing.T) {
	t.Parallel()

	b := varstruct.NewBuilder()
	b.Scalar("x", 4)
	b.Build()

	assert.ErrorIs(t, catch(func() { b.Scalar("y", 4) }), varstruct.ErrFinalized)
	assert.ErrorIs(t, catch(func() { b.Build() }), varstruct.ErrFinalized)
}

func TestZeroBuilder(t *testing.T) {
	t.Parallel()

	var b varstruct.Builder
	b.Scalar("x", 2)
	ty := b.Build()
	assert.Equal(t, 1, ty.NumMembers())
	assert.Equal(t, 2, ty.Layout().SizeBytes())
}

func mustByName(t *testing.T, ty *varstruct.Type, name string) varstruct.Field {
	t.Helper()
	f, ok := ty.ByName(name)
	require.True(t, ok, "member %q", name)
	return f
}

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

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The-Mad-Pirate/varstruct/internal/xunsafe/layout"
)

func TestSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, layout.Size[byte]())
	assert.Equal(t, 4, layout.Size[uint32]())
	assert.Equal(t, 32, layout.Bits[uint32]())
	assert.Equal(t, 8, layout.Size[[2]uint32]())

	assert.Equal(t, layout.Layout{Size: 4, Align: 4}, layout.Of[uint32]())
	assert.Equal(t, layout.Layout{Size: 8, Align: 8},
		layout.Of[uint32]().Max(layout.Of[float64]()))
}

func TestAlign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, layout.RoundUp(8, 8))
	assert.Equal(t, 16, layout.RoundUp(9, 8))
	assert.Equal(t, 16, layout.RoundUp(15, 8))
	assert.Equal(t, 16, layout.RoundUp(16, 8))

	assert.Equal(t, 0, layout.Padding(8, 8))
	assert.Equal(t, 7, layout.Padding(9, 8))
	assert.Equal(t, 1, layout.Padding(15, 8))
	assert.Equal(t, 0, layout.Padding(16, 8))
}

func TestTrivial(t *testing.T) {
	t.Parallel()

	type flat struct {
		A uint32
		B [2]uint16
		C struct{ D float64 }
	}
	type pointy struct {
		A uint32
		B *uint32
	}

	assert.True(t, layout.Trivial[bool]())
	assert.True(t, layout.Trivial[int64]())
	assert.True(t, layout.Trivial[complex128]())
	assert.True(t, layout.Trivial[[16]byte]())
	assert.True(t, layout.Trivial[flat]())
	assert.True(t, layout.Trivial[flat](), "cached answer must agree")

	assert.False(t, layout.Trivial[*int]())
	assert.False(t, layout.Trivial[string]())
	assert.False(t, layout.Trivial[[]byte]())
	assert.False(t, layout.Trivial[map[int]int]())
	assert.False(t, layout.Trivial[chan int]())
	assert.False(t, layout.Trivial[func()]())
	assert.False(t, layout.Trivial[any]())
	assert.False(t, layout.Trivial[pointy]())
	assert.False(t, layout.Trivial[[3]*int]())
	assert.False(t, layout.Trivial[struct{ S []int }]())
}

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

// Layout is a record instance with no underlying buffer: it answers every
// offset and size query exactly as a buffer-backed instance with the same
// array lengths would, but carries no data to read or write.
//
// It exists so a caller can size an allocation before any buffer does, and
// it is the common core of [View] and [Mutable]. A Layout is a cheap value;
// copying it duplicates the offset table and never touches any buffer.
type Layout struct {
	ty *Type

	// offsets[i] is the exclusive end position of member i; the start of
	// member i is offsets[i-1], or 0 for the first member.
	offsets []int
}

// Layout computes the byte layout for an instance with the given array
// lengths, one per array member in declaration order.
//
// Panics with an error wrapping [ErrArrayCount] if the length list does not
// line up with the array members; [Type.TryLayout] reports the same failure
// as an ordinary error.
func (t *Type) Layout(arrayLens ...int) Layout {
	l, err := t.TryLayout(arrayLens...)
	if err != nil {
		panic(err)
	}
	return l
}

// TryLayout is [Type.Layout], returning an error instead of panicking.
func (t *Type) TryLayout(arrayLens ...int) (Layout, error) {
	offsets, err := t.compute(arrayLens)
	if err != nil {
		return Layout{}, err
	}
	return Layout{ty: t, offsets: offsets}, nil
}

// compute turns the supplied array lengths into the instance's offset
// table: per-member extents, prefix-summed into exclusive end positions.
func (t *Type) compute(arrayLens []int) ([]int, error) {
	offsets := make([]int, len(t.members))
	total := 0
	next := 0 // next unconsumed entry of arrayLens
	for i := range t.members {
		m := &t.members[i]
		n := 0
		if m.array {
			if next == len(arrayLens) {
				return nil, errorf(errCodeArrayCount,
					"%d array lengths for %d array members", len(arrayLens), t.numArrays)
			}
			n = arrayLens[next]
			if n < 0 {
				return nil, errorf(errCodeArrayCount, "negative length %d for member %q", n, m.name)
			}
			next++
		}
		total += m.extent(n)
		offsets[i] = total
	}
	if next != len(arrayLens) {
		return nil, errorf(errCodeArrayCount,
			"%d array lengths for %d array members", len(arrayLens), t.numArrays)
	}
	return offsets, nil
}

// Type returns the descriptor table this instance was created from.
func (l Layout) Type() *Type {
	return l.ty
}

// SizeBytes returns the size in bytes of the entire record: the sum of
// every member's extent for this instance's array lengths.
func (l Layout) SizeBytes() int {
	if len(l.offsets) == 0 {
		return 0
	}
	return l.offsets[len(l.offsets)-1]
}

// NumMembers returns the number of declared members.
func (l Layout) NumMembers() int {
	return len(l.offsets)
}

// Offset returns the byte offset at which the member starts. Members are
// laid out contiguously from byte 0, in declaration order, with no padding.
func (l Layout) Offset(f Field) int {
	if f == 0 {
		return 0
	}
	return l.offsets[f-1]
}

// Size returns the member's total extent in bytes for this instance:
// the element size for a scalar, element size times array length for an
// array.
func (l Layout) Size(f Field) int {
	return l.offsets[f] - l.Offset(f)
}

// Len returns the member's element count for this instance. Scalars always
// report 1.
func (l Layout) Len(f Field) int {
	return l.Size(f) / l.ty.members[f].size
}

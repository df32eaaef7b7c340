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
	"github.com/The-Mad-Pirate/varstruct/internal/debug"
	"github.com/The-Mad-Pirate/varstruct/internal/xunsafe"
	"github.com/The-Mad-Pirate/varstruct/internal/xunsafe/layout"
)

// View is a read-only record instance over a caller-owned buffer.
//
// A View can answer every [Layout] query and read member values, but write
// operations do not exist on it; only [Mutable] has them. The caller
// guarantees that the buffer is at least [Layout.SizeBytes] long and
// outlives the View. The View borrows the buffer and never copies it.
type View struct {
	Layout
	base *byte
}

// Mutable is a read-write record instance over a caller-owned buffer.
//
// It is a [View] plus the write operations.
type Mutable struct {
	View
}

// Reader is the read capability: it is implemented by [View] and [Mutable],
// and deliberately by nothing else.
type Reader interface {
	instance() (Layout, *byte)
}

// Writer is the write capability: it is implemented only by [Mutable].
type Writer interface {
	Reader
	writable()
}

func (v View) instance() (Layout, *byte) { return v.Layout, v.base }

func (m Mutable) writable() {}

// View creates a read-only instance over buf with the given array lengths.
//
// Panics with an error wrapping [ErrArrayCount] on a malformed length list;
// [Type.TryView] reports it as an ordinary error. The buffer's size is the
// caller's contract and is not validated.
func (t *Type) View(buf []byte, arrayLens ...int) View {
	v, err := t.TryView(buf, arrayLens...)
	if err != nil {
		panic(err)
	}
	return v
}

// TryView is [Type.View], returning an error instead of panicking.
func (t *Type) TryView(buf []byte, arrayLens ...int) (View, error) {
	l, err := t.TryLayout(arrayLens...)
	if err != nil {
		return View{}, err
	}
	debug.Assert(len(buf) >= l.SizeBytes(), "buffer holds %d of %d bytes", len(buf), l.SizeBytes())
	return View{Layout: l, base: xunsafe.SliceData(buf)}, nil
}

// ViewString creates a read-only instance over a string, Go's constant
// buffer. The returned View aliases the string's bytes without copying.
func (t *Type) ViewString(s string, arrayLens ...int) View {
	v, err := t.TryViewString(s, arrayLens...)
	if err != nil {
		panic(err)
	}
	return v
}

// TryViewString is [Type.ViewString], returning an error instead of
// panicking.
func (t *Type) TryViewString(s string, arrayLens ...int) (View, error) {
	l, err := t.TryLayout(arrayLens...)
	if err != nil {
		return View{}, err
	}
	debug.Assert(len(s) >= l.SizeBytes(), "buffer holds %d of %d bytes", len(s), l.SizeBytes())
	return View{Layout: l, base: xunsafe.StringData(s)}, nil
}

// Mutable creates a read-write instance over buf with the given array
// lengths.
//
// Panics with an error wrapping [ErrArrayCount] on a malformed length list;
// [Type.TryMutable] reports it as an ordinary error. The buffer's size is
// the caller's contract and is not validated.
func (t *Type) Mutable(buf []byte, arrayLens ...int) Mutable {
	m, err := t.TryMutable(buf, arrayLens...)
	if err != nil {
		panic(err)
	}
	return m
}

// TryMutable is [Type.Mutable], returning an error instead of panicking.
func (t *Type) TryMutable(buf []byte, arrayLens ...int) (Mutable, error) {
	v, err := t.TryView(buf, arrayLens...)
	if err != nil {
		return Mutable{}, err
	}
	return Mutable{View: v}, nil
}

// Bytes returns the member's byte region, aliasing the underlying buffer.
//
// Writes through the returned slice are writes to the buffer, which is why
// Bytes exists only on [Mutable] and not on [View].
func (m Mutable) Bytes(f Field) []byte {
	return xunsafe.Slice(xunsafe.ByteAdd[byte](m.base, m.Offset(f)), m.Size(f))
}

// ReadOnly returns the read capability of this instance, for handing out a
// view with no risk of mutation.
func (m Mutable) ReadOnly() View {
	return m.View
}

// Get reads a scalar member and returns it as an independent copy; later
// buffer mutation does not affect the returned value.
//
// Panics with [ErrKindMismatch] on an array member, [ErrSizeMismatch] if
// T's width differs from the member's element size, and [ErrInvalidType]
// if T is not trivially copyable.
func Get[T any](r Reader, f Field) T {
	l, base := r.instance()
	checkMember[T](l, f, false)

	var v T
	xunsafe.Copy(xunsafe.Cast[byte](&v), xunsafe.ByteAdd[byte](base, l.Offset(f)), layout.Size[T]())
	return v
}

// Set writes a scalar member by byte-copying v into the buffer.
//
// Panics under the same contract as [Get]. A failed Set copies no bytes.
func Set[T any](w Writer, f Field, v T) {
	l, base := w.instance()
	checkMember[T](l, f, false)

	xunsafe.Copy(xunsafe.ByteAdd[byte](base, l.Offset(f)), xunsafe.Cast[byte](&v), layout.Size[T]())
}

// At reads element i of an array member and returns it as an independent
// copy.
//
// The index is bounds-checked: i outside [0, Len(f)) panics with
// [ErrOutOfBounds]. Panics with [ErrKindMismatch] on a scalar member, and
// under the same type contract as [Get].
func At[T any](r Reader, f Field, i int) T {
	l, base := r.instance()
	checkMember[T](l, f, true)
	checkBounds(l, f, i)

	return atUnchecked[T](l, base, f, i)
}

// AtUnchecked is [At] without the bounds check, for hot paths where the
// caller has already validated the index. An out-of-range index is
// undefined behavior.
func AtUnchecked[T any](r Reader, f Field, i int) T {
	l, base := r.instance()
	checkMember[T](l, f, true)
	debug.Assert(i >= 0 && i < l.Len(f), "index %d out of range [0, %d)", i, l.Len(f))

	return atUnchecked[T](l, base, f, i)
}

// SetAt writes element i of an array member by byte-copying v into the
// buffer.
//
// Bounds-checked like [At]; a failed SetAt copies no bytes.
func SetAt[T any](w Writer, f Field, i int, v T) {
	l, base := w.instance()
	checkMember[T](l, f, true)
	checkBounds(l, f, i)

	setAtUnchecked(l, base, f, i, v)
}

// SetAtUnchecked is [SetAt] without the bounds check, for hot paths where
// the caller has already validated the index. An out-of-range index is
// undefined behavior.
func SetAtUnchecked[T any](w Writer, f Field, i int, v T) {
	l, base := w.instance()
	checkMember[T](l, f, true)
	debug.Assert(i >= 0 && i < l.Len(f), "index %d out of range [0, %d)", i, l.Len(f))

	setAtUnchecked(l, base, f, i, v)
}

func atUnchecked[T any](l Layout, base *byte, f Field, i int) T {
	var v T
	p := xunsafe.ByteAdd[byte](base, l.Offset(f)+i*layout.Size[T]())
	xunsafe.Copy(xunsafe.Cast[byte](&v), p, layout.Size[T]())
	return v
}

func setAtUnchecked[T any](l Layout, base *byte, f Field, i int, v T) {
	p := xunsafe.ByteAdd[byte](base, l.Offset(f)+i*layout.Size[T]())
	xunsafe.Copy(p, xunsafe.Cast[byte](&v), layout.Size[T]())
}

// checkMember validates the accessor's type contract against the member's
// descriptor. Every check precedes every copy, so a failed access never
// mutates the buffer.
func checkMember[T any](l Layout, f Field, wantArray bool) {
	m := &l.ty.members[f]
	switch {
	case m.array != wantArray && wantArray:
		panic(errorf(errCodeKindMismatch, "array access of scalar member %q", m.name))
	case m.array != wantArray:
		panic(errorf(errCodeKindMismatch, "scalar access of array member %q", m.name))
	case layout.Size[T]() != m.size:
		panic(errorf(errCodeSizeMismatch,
			"%d-byte value for member %q of element size %d", layout.Size[T](), m.name, m.size))
	case !layout.Trivial[T]():
		var z T
		panic(errorf(errCodeInvalidType, "%T is not trivially copyable", z))
	}
}

func checkBounds(l Layout, f Field, i int) {
	if n := l.Len(f); i < 0 || i >= n {
		panic(errorf(errCodeOutOfBounds,
			"index %d out of range [0, %d) for member %q", i, n, l.ty.members[f].name))
	}
}

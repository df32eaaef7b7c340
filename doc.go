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

// Package varstruct computes the in-memory byte layout of variable-length
// records and grants zero-copy access to buffers laid out that way.
//
// A record is an ordered sequence of members. Some members are fixed-size
// scalars; others are arrays whose element count is only known when a
// concrete instance is created. Declare the members once with a [Builder]
// (or a data-driven table via [TypeOf] or [ParseSchema]) to obtain a
// [Type]; this is a one-time cost per record type, like regexp.Compile.
//
// From a Type, create instances by supplying the array lengths, one per
// array member in declaration order. Which factory you call fixes the
// instance's capability for its lifetime:
//
//   - [Type.Mutable] grants reads and writes over a caller-owned buffer.
//   - [Type.View] and [Type.ViewString] grant reads only; write operations
//     do not exist on a [View].
//   - [Type.Layout] grants only offset and size queries, with no buffer at
//     all. This is how you size an allocation before it exists.
//
// All three report identical offsets and sizes for identical array lengths.
//
// # Byte layout
//
// Members occupy one contiguous region starting at byte 0 of the buffer, in
// declaration order, with no padding between them. The layout is bit-exact:
// two types built from the same declarations, given the same array lengths,
// compute identical offsets and total size. No endianness conversion is
// performed; bytes are copied as-is.
//
// # Ownership and errors
//
// The caller owns the buffer and guarantees it is at least
// [Layout.SizeBytes] long for the instance's lifetime; instances only
// borrow it, and copying an instance never copies buffer contents. The
// package does no locking: writing through a [Mutable] while another
// goroutine reads the same buffer is a data race the caller must prevent.
//
// This is a zero-copy primitive, not a validating parser. Contract
// violations (mismatched array length lists, out-of-range indices on
// checked access) panic with errors wrapping the package sentinels by
// default; the Try* factories return them instead, for callers that must
// validate untrusted inputs. Both agree on offsets and bounds.
package varstruct

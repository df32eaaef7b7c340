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
	"errors"
	"fmt"
)

const (
	errCodeOk errCode = iota
	errCodeReservedName
	errCodeDuplicateName
	errCodeInvalidType
	errCodeFinalized
	errCodeArrayCount
	errCodeOutOfBounds
	errCodeSizeMismatch
	errCodeKindMismatch
)

type errCode int

// Sentinel errors for every failure this package can produce. Fatal
// operations panic with an error that wraps one of these, so callers that
// recover can still dispatch with [errors.Is].
var (
	// ErrReservedName is reported when a member is registered under a name
	// reserved for the record-wide queries, or under an empty name.
	ErrReservedName = errors.New("reserved member name")

	// ErrDuplicateName is reported when two members are registered under
	// the same name.
	ErrDuplicateName = errors.New("duplicate member name")

	// ErrInvalidType is reported when a member's element type is not
	// trivially copyable fixed-layout data, or its element size is not
	// positive.
	ErrInvalidType = errors.New("invalid element type")

	// ErrFinalized is reported when a [Builder] is used after Build.
	ErrFinalized = errors.New("builder already finalized")

	// ErrArrayCount is reported when the array length list supplied at
	// creation does not line up with the record's array members.
	ErrArrayCount = errors.New("mismatched array length count")

	// ErrOutOfBounds is reported by checked array access with an index
	// outside the member's element count.
	ErrOutOfBounds = errors.New("array index out of range")

	// ErrSizeMismatch is reported when an accessor's value type has a
	// different width than the member's declared element size.
	ErrSizeMismatch = errors.New("value width does not match element size")

	// ErrKindMismatch is reported when a scalar accessor is applied to an
	// array member or vice versa.
	ErrKindMismatch = errors.New("member kind does not match accessor")
)

var errs = [...]error{
	errCodeOk:            nil,
	errCodeReservedName:  ErrReservedName,
	errCodeDuplicateName: ErrDuplicateName,
	errCodeInvalidType:   ErrInvalidType,
	errCodeFinalized:     ErrFinalized,
	errCodeArrayCount:    ErrArrayCount,
	errCodeOutOfBounds:   ErrOutOfBounds,
	errCodeSizeMismatch:  ErrSizeMismatch,
	errCodeKindMismatch:  ErrKindMismatch,
}

// errRecord is an error produced by registration, creation, or access.
type errRecord struct {
	code   errCode
	detail string
}

// errorf constructs an [errRecord] with a formatted detail string.
func errorf(code errCode, format string, args ...any) *errRecord {
	return &errRecord{code: code, detail: fmt.Sprintf(format, args...)}
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *errRecord) Unwrap() error {
	return errs[e.code]
}

// Error implements [error].
func (e *errRecord) Error() string {
	return fmt.Sprintf("varstruct: %s: %v", e.detail, e.Unwrap())
}

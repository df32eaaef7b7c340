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
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FieldSpec is one row of a data-driven member table: the ordered
// (name, element byte size, is-array) tuples of the registration surface.
type FieldSpec struct {
	Name  string `yaml:"name"`
	Size  int    `yaml:"size"`
	Array bool   `yaml:"array,omitempty"`
}

// TypeOf builds a [Type] from an ordered member table.
//
// Unlike the [Builder] registration methods, TypeOf reports registration
// failures as ordinary errors, for callers feeding it untrusted tables. The
// resulting Type is identical to one built by registering the same tuples
// on a Builder.
func TypeOf(specs []FieldSpec) (*Type, error) {
	b := NewBuilder()
	for i, spec := range specs {
		if _, err := b.register(spec.Name, spec.Size, spec.Array); err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
	}
	return b.Build(), nil
}

// ParseSchema builds a [Type] from a YAML member table: a document holding
// a sequence of [FieldSpec] rows, in declaration order.
//
//	- name: header
//	  size: 4
//	- name: payload
//	  size: 1
//	  array: true
//
// Unknown keys are rejected.
func ParseSchema(data []byte) (*Type, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var specs []FieldSpec
	if err := dec.Decode(&specs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("varstruct: parsing schema: %w", err)
	}
	return TypeOf(specs)
}

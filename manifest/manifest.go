/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package manifest reads and writes name-table manifests: files that
// declare enum constants outside Go source, in YAML or HCL, and binds them
// to typed registries.
package manifest

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/enum"
)

var (
	// ErrUnknownFormat is returned by Load for unsupported file extensions.
	ErrUnknownFormat = errors.New("enumx(manifest): unknown manifest format")
	// ErrEmptyEnumName is returned by Validate for an enum without a name.
	ErrEmptyEnumName = errors.New("enumx(manifest): empty enum name")
	// ErrDuplicateEnum is returned by Validate when two enums share a name.
	ErrDuplicateEnum = errors.New("enumx(manifest): duplicate enum")
	// ErrEmptyConstantName is returned by Validate for a nameless constant.
	ErrEmptyConstantName = errors.New("enumx(manifest): empty constant name")
)

// Manifest is a set of enum declarations.
type Manifest struct {
	Enums []Enum `yaml:"enums" hcl:"enum,block"`
}

// Enum declares the constants of one enum type. ErrorValue, when set,
// overrides the error value heuristic of the bound registry.
type Enum struct {
	Name       string     `yaml:"name" hcl:"name,label"`
	Package    string     `yaml:"package,omitempty" hcl:"package,optional"`
	ErrorValue *int64     `yaml:"error_value,omitempty" hcl:"error_value,optional"`
	Constants  []Constant `yaml:"constants" hcl:"constant,block"`
}

// Constant is a single name/value pair.
type Constant struct {
	Name  string `yaml:"name" hcl:"name,label"`
	Value int64  `yaml:"value" hcl:"value"`
}

// Lookup returns the enum declared under name.
func (m *Manifest) Lookup(name string) (Enum, bool) {
	return lo.Find(m.Enums, func(e Enum) bool { return e.Name == name })
}

// Validate checks that every enum and constant is named and that enum
// names are unique. Value and name collisions inside an enum are left to
// enum.New, which applies the configured policy.
func (m *Manifest) Validate() error {
	for i, e := range m.Enums {
		if e.Name == "" {
			return errors.Wrapf(ErrEmptyEnumName, "enum #%d", i)
		}
		for j, c := range e.Constants {
			if c.Name == "" {
				return errors.Wrapf(ErrEmptyConstantName, "%s: constant #%d", e.Name, j)
			}
		}
	}
	names := lo.Map(m.Enums, func(e Enum, _ int) string { return e.Name })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return errors.Wrapf(ErrDuplicateEnum, "%q", dups[0])
	}
	return nil
}

// Entries returns the constants of e as table entries, in declaration order.
func (e Enum) Entries() []apis.Entry {
	return lo.Map(e.Constants, func(c Constant, _ int) apis.Entry {
		return apis.Entry{Value: c.Value, Name: c.Name}
	})
}

// Bind builds the registry of T from e. An explicit error_value is applied
// after opts, so it wins over any option.
func Bind[T enum.Integer](e Enum, opts ...enum.Option) (*enum.Registry[T], error) {
	if e.ErrorValue != nil {
		opts = append(opts, enum.WithErrorValue(*e.ErrorValue))
	}
	r, err := enum.New[T](e.Entries(), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "bind %s", e.Name)
	}
	return r, nil
}

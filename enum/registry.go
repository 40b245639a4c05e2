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

package enum

import (
	"fmt"
	"iter"
	"path"
	"reflect"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

var (
	// ErrEmptyName is returned when an entry has an empty name.
	ErrEmptyName = errors.New("enumx(enum): empty name")
	// ErrDuplicateValue is returned when two entries share a value.
	ErrDuplicateValue = errors.New("enumx(enum): duplicate value")
	// ErrDuplicateName is returned when two entries share a name and
	// StrictNames is enabled.
	ErrDuplicateName = errors.New("enumx(enum): duplicate name")
	// ErrOutOfRange is returned when an entry value does not fit the enum type.
	ErrOutOfRange = errors.New("enumx(enum): value out of range")
	// ErrUnknownName is returned by Parse when no entry carries the name.
	ErrUnknownName = errors.New("enumx(enum): unknown name")
)

// Integer is the set of types a Registry can describe.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Registry is the name table of the enum type T.
type Registry[T Integer] struct {
	typeName   string
	entries    []apis.Entry
	byValue    map[int64]string
	byName     map[string]int64
	errorValue T
}

// Ensure Registry implements apis.Table.
var _ apis.Table = (*Registry[int])(nil)

// New builds the name table of T from entries, preserving their order.
func New[T Integer](entries []apis.Entry, opts ...Option) (*Registry[T], error) {
	o := options{cfg: config.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.typeName == "" {
		o.typeName = TypeName[T]()
	}

	r := &Registry[T]{
		typeName: o.typeName,
		entries:  make([]apis.Entry, 0, len(entries)),
		byValue:  make(map[int64]string, len(entries)),
		byName:   make(map[string]int64, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, errors.Wrapf(ErrEmptyName, "%s: entry %d (value %d)", r.typeName, i, e.Value)
		}
		if int64(T(e.Value)) != e.Value {
			return nil, errors.Wrapf(ErrOutOfRange, "%s: %s = %d", r.typeName, e.Name, e.Value)
		}
		if prev, dup := r.byValue[e.Value]; dup {
			return nil, errors.Wrapf(ErrDuplicateValue, "%s: %s and %s = %d", r.typeName, prev, e.Name, e.Value)
		}
		if _, seen := r.byName[e.Name]; seen {
			if o.cfg.StrictNames {
				return nil, errors.Wrapf(ErrDuplicateName, "%s: %q", r.typeName, e.Name)
			}
		} else {
			r.byName[e.Name] = e.Value
		}
		r.byValue[e.Value] = e.Name
		r.entries = append(r.entries, e)
	}

	if o.errorValue != nil {
		r.errorValue = T(*o.errorValue)
	} else {
		r.errorValue = T(detectErrorValue(r.entries, o.cfg))
	}
	return r, nil
}

// MustNew is like New but panics on error.
// It is meant for generated code, where a malformed table is a build bug.
func MustNew[T Integer](entries []apis.Entry, opts ...Option) *Registry[T] {
	r, err := New[T](entries, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// detectErrorValue returns the value of the first entry whose name contains
// one of cfg.ErrorMarkers, case-insensitively, or cfg.FallbackErrorValue.
func detectErrorValue(entries []apis.Entry, cfg apis.Config) int64 {
	markers := lo.Map(lo.Compact(cfg.ErrorMarkers), func(m string, _ int) string {
		return strings.ToLower(m)
	})
	e, ok := lo.Find(entries, func(e apis.Entry) bool {
		name := strings.ToLower(e.Name)
		return lo.SomeBy(markers, func(m string) bool {
			return strings.Contains(name, m)
		})
	})
	if ok {
		return e.Value
	}
	return cfg.FallbackErrorValue
}

// Name returns the name registered for v.
// It reports false, with an empty name, when v has no entry.
func (r *Registry[T]) Name(v T) (string, bool) {
	return r.LookupInt(int64(v))
}

// Value returns the value registered under name (exact, case-sensitive).
// If several entries share the name, the first one wins. Unknown names
// yield ErrorValue(); compare against it, or use Parse, to detect them.
func (r *Registry[T]) Value(name string) T {
	if v, ok := r.byName[name]; ok {
		return T(v)
	}
	return r.errorValue
}

// Parse is the strict form of Value: unknown names return ErrUnknownName
// together with ErrorValue().
func (r *Registry[T]) Parse(name string) (T, error) {
	if v, ok := r.byName[name]; ok {
		return T(v), nil
	}
	return r.errorValue, errors.Wrapf(ErrUnknownName, "%s: %q", r.typeName, name)
}

// ErrorValue returns the designated "invalid" value of T.
// It is fixed when the registry is built.
func (r *Registry[T]) ErrorValue() T {
	return r.errorValue
}

// All yields every (value, name) entry in table order.
// The sequence is restartable and supports early termination.
func (r *Registry[T]) All() iter.Seq2[int64, string] {
	return func(yield func(int64, string) bool) {
		for _, e := range r.entries {
			if !yield(e.Value, e.Name) {
				return
			}
		}
	}
}

// Format returns the name of v, or "pkg.Type(n)" when v has no entry.
// The result is meant for logs and diagnostics, never for parsing.
func (r *Registry[T]) Format(v T) string {
	if name, ok := r.Name(v); ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", r.typeName, v)
}

// Contains reports whether v has an entry.
func (r *Registry[T]) Contains(v T) bool {
	_, ok := r.byValue[int64(v)]
	return ok
}

// Values returns all registered values in table order.
func (r *Registry[T]) Values() []T {
	return lo.Map(r.entries, func(e apis.Entry, _ int) T {
		return T(e.Value)
	})
}

// Names returns all registered names in table order.
func (r *Registry[T]) Names() []string {
	return lo.Map(r.entries, func(e apis.Entry, _ int) string {
		return e.Name
	})
}

// TypeName returns the "pkg.Type" name of T.
func (r *Registry[T]) TypeName() string { return r.typeName }

// LookupInt returns the name registered for the integer v.
func (r *Registry[T]) LookupInt(v int64) (string, bool) {
	name, ok := r.byValue[v]
	return name, ok
}

// ParseInt returns the integer registered under name.
func (r *Registry[T]) ParseInt(name string) (int64, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// ErrorInt returns ErrorValue() as an integer.
func (r *Registry[T]) ErrorInt() int64 { return int64(r.errorValue) }

// Entries returns a copy of the table in table order.
func (r *Registry[T]) Entries() []apis.Entry { return slices.Clone(r.entries) }

// Len returns the number of entries.
func (r *Registry[T]) Len() int { return len(r.entries) }

// TypeName returns "pkg.Type" for T, or the bare name for builtin types.
func TypeName[T any]() string {
	t := reflect.TypeFor[T]()
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + t.Name()
	}
	return t.String()
}

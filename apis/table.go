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

package apis

import "iter"

// Entry is a single (value, name) association of an enum name table.
type Entry struct {
	// Value is the integer representation of the enum constant.
	Value int64
	// Name is the display name of the constant.
	Name string
}

// Table is the untyped, read-only view of an enum name table.
// Typed registries (enum.Registry[T]) implement it so that heterogeneous
// tables can be stored in a Catalog and resolved from `any` values.
type Table interface {
	// TypeName returns the "pkg.Type" name of the enum the table describes.
	TypeName() string
	// LookupInt returns the name registered for v, if any.
	LookupInt(v int64) (name string, ok bool)
	// ParseInt returns the value registered under name, if any.
	ParseInt(name string) (v int64, ok bool)
	// ErrorInt returns the table's error value as an integer.
	ErrorInt() int64
	// All yields every entry in table order.
	All() iter.Seq2[int64, string]
	// Entries returns a copy of the table in table order.
	Entries() []Entry
	// Len returns the number of entries.
	Len() int
}

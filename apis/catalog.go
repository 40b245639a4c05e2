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

import "reflect"

// Catalog maps enum types to their name tables. It is the process-wide
// replacement for per-type static tables: one Table per enum type identity.
// Reads must be safe for concurrent use.
type Catalog interface {
	// Register associates the (normalized) enum type t with tab.
	// Registering the same table twice is a no-op; a different table for
	// an already registered type is an error.
	Register(t reflect.Type, tab Table) error
	// Lookup returns the table registered for t.
	Lookup(t reflect.Type) (tab Table, ok bool)
	// Entries returns a snapshot for diagnostics/docs, sorted by type name.
	Entries() []CatalogEntry
	// Count returns the number of registered tables.
	Count() int
	// Reset clears all registered tables.
	Reset()
}

// CatalogEntry is a single (type, table) association in a Catalog snapshot.
type CatalogEntry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Table is the associated name table.
	Table Table
}

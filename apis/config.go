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

// Config carries read-only knobs that influence how name tables are built
// and how untyped values are resolved.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// ErrorMarkers lists the substrings (matched case-insensitively) that
	// identify a table's designated "invalid" constant. The first entry
	// whose name contains any marker becomes the table's error value.
	ErrorMarkers []string

	// FallbackErrorValue is the error value used when no entry name
	// contains a marker. It is converted to the enum type, so -1 wraps
	// around for unsigned enums.
	FallbackErrorValue int64

	// StrictNames rejects tables in which two entries share a name.
	// When false, reverse lookups return the first entry with that name.
	StrictNames bool

	// IncludeBuiltins controls whether builtin integer types (e.g. "int",
	// "uint8") may be registered in a Catalog. Enums are expected to be
	// named, package-level types.
	IncludeBuiltins bool

	// MaxUnwrap limits how many pointer levels are unwrapped when resolving
	// an untyped value to its enum type.
	MaxUnwrap int
}

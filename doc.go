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

// Package enumx provides process-wide name tables for integer-backed enum
// types: value to name, name to value, a well-defined error value, and
// iteration over every named value.
//
// # Design
//
// Each enum type T gets one immutable enum.Registry[T], usually produced by
// generated code (see cmd/enumgen) or loaded from a manifest (see package
// manifest). Instead of per-type static state, registries live in a single
// Catalog keyed by type identity, reachable through this package:
//
//	var colorNames = enumx.MustRegister[Color](
//		apis.Entry{Value: 0, Name: "Red"},
//		apis.Entry{Value: 1, Name: "Green"},
//		apis.Entry{Value: 2, Name: "Unknown"},
//	)
//
//	name, ok := enumx.Name(Color(1))   // "Green", true
//	c := enumx.Value[Color]("Purple")  // Color(2): unknown names map to the error value
//	bad := enumx.ErrorValue[Color]()   // Color(2): first name containing "Invalid"/"Unknown"
//	for v, n := range enumx.All[Color]() { ... }
//
// The package holds a read-mostly snapshot of four things:
//
//   - Config: rules for building tables (error markers, fallback error
//     value, strict names) and for resolving untyped values.
//
//   - Catalog: the type -> table map. Registration is idempotent for the
//     same table and rejects conflicting tables.
//
//   - Resolver: answers "what is the name of this value?" for values of
//     unknown static type, trying in order:
//     1. apis.Namer (v.EnumName());
//     2. the catalog table of v's type;
//     3. a reflect fallback formatting "pkg.Type(n)".
//
//   - Builder: constructs Catalog and Resolver for a Config. The default
//     builder migrates tables from the previous catalog.
//
// The snapshot is published through an atomic pointer. Readers load it and
// never lock; writers (SetConfig, SetCatalog, SetResolver, SetBuilder,
// SetAll) take a short build mutex, derive a new snapshot and swap it in.
//
// # Lookups are total
//
// Every helper returns a well-defined result for any input: Name reports
// ("", false) for unknown values and unregistered types; Value falls back
// to the error value; ErrorValue of an unregistered type is the configured
// fallback (-1 by default) converted to T; All yields nothing.
//
// # Pinning
//
// SetCatalog and SetResolver pin the given layer: later configuration or
// builder changes leave it alone until UnpinCatalog/UnpinResolver.
// Registries themselves never change once built, so a configuration change
// cannot alter the error value of an already registered type.
package enumx

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

// Package enum implements typed, read-only name tables for integer-backed
// enum types.
//
// A Registry[T] is built once from a list of (value, name) entries, usually
// emitted by a generator, and never mutated afterwards. It answers four
// questions about T:
//
//   - Name: which name does a value carry? Absent values report ("", false);
//     no placeholder name is ever fabricated.
//   - Value: which value does a name denote? Unknown names map to the
//     error value so the call is total. Parse is the strict variant.
//   - ErrorValue: the designated "invalid" constant, chosen once at
//     construction: the first entry whose name contains one of the
//     configured markers ("Invalid", "Unknown" by default, matched
//     case-insensitively), otherwise the fallback (-1 converted to T).
//   - All: every entry in table order, as a restartable iter.Seq2.
//
// Because a Registry is immutable, any number of goroutines may use it
// concurrently without synchronization. Lazy[T] covers the case where the
// table is produced on first use and must be built exactly once.
package enum

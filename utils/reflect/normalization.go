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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type.
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
	// ErrReflectNotInteger indicates that the provided type is not integer-backed.
	ErrReflectNotInteger = errors.New("reflect: type is not integer-backed")
	// ErrReflectBuiltin indicates a builtin integer type while builtins are disabled.
	ErrReflectBuiltin = errors.New("reflect: builtin type not allowed")
)

// Normalize unwraps pointers (at most cfg.MaxUnwrap levels) and returns the
// enum type underneath, or an error if it is not a usable enum type.
//
// Policy:
//   - ptr -> Elem(), repeated up to MaxUnwrap times;
//   - the result must have an integer kind;
//   - the result must be named; builtin names (no package path) are only
//     accepted when cfg.IncludeBuiltins is set.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}

	if !IsInteger(t.Kind()) {
		return nil, ErrReflectNotInteger
	}
	if t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	if t.PkgPath() == "" && !cfg.IncludeBuiltins {
		return nil, ErrReflectBuiltin
	}
	return t, nil
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func IsInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// Int64 extracts the integer representation of v, unwrapping at most
// maxUnwrap pointers. Unsigned values are converted with wrap-around.
// It reports false for nil pointers and non-integer kinds.
func Int64(v reflect.Value, maxUnwrap int) (int64, bool) {
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	for i := 0; i < maxUnwrap && v.IsValid() && v.Kind() == reflect.Pointer; i++ {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(v.Uint()), true
	default:
		return 0, false
	}
}

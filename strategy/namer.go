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

package strategy

import (
	"reflect"

	"dirpx.dev/enumx/apis"
)

// NewNamerStrategy returns the strategy that lets an enum name its own
// values through apis.Namer. It runs ahead of table lookups, so EnumName
// overrides a registered name. An empty EnumName means the type has no
// name of its own for that value; the value then falls through to the
// catalog table and the "pkg.Type(n)" form, so a type may name only some
// of its values itself.
func NewNamerStrategy() apis.Strategy {
	return namerStrategy{}
}

type namerStrategy struct{}

var _ apis.Strategy = namerStrategy{}

func (namerStrategy) TryResolve(v any, _ apis.Config) (string, bool) {
	n, ok := v.(apis.Namer)
	if !ok {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}
	name := n.EnumName()
	return name, name != ""
}

// TryResolveType never handles: EnumName names a value, not a type.
func (namerStrategy) TryResolveType(reflect.Type, apis.Config) (string, bool) {
	return "", false
}

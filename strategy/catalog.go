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
	uref "dirpx.dev/enumx/utils/reflect"
)

// NewCatalogStrategy creates an apis.Strategy that names values through the
// tables of cat.
func NewCatalogStrategy(cat apis.Catalog) apis.Strategy {
	return &catalogStrategy{cat: cat}
}

// catalogStrategy looks up v's enum type in the catalog, then v's value in
// that type's table. Values without an entry fall through.
type catalogStrategy struct {
	cat apis.Catalog
}

// Ensure catalogStrategy implements apis.Strategy.
var _ apis.Strategy = (*catalogStrategy)(nil)

// TryResolve returns the registered name of v.
func (s *catalogStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil || s.cat == nil {
		return "", false
	}
	tab, ok := s.cat.Lookup(reflect.TypeOf(v))
	if !ok {
		return "", false
	}
	n, ok := uref.Int64(reflect.ValueOf(v), cfg.MaxUnwrap)
	if !ok {
		return "", false
	}
	return tab.LookupInt(n)
}

// TryResolveType returns the table's type name for t.
func (s *catalogStrategy) TryResolveType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || s.cat == nil {
		return "", false
	}
	tab, ok := s.cat.Lookup(t)
	if !ok {
		return "", false
	}
	return tab.TypeName(), true
}

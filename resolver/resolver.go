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

package resolver

import (
	"reflect"

	"github.com/samber/lo"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	uref "dirpx.dev/enumx/utils/reflect"
)

// New returns a resolver that names enum values by trying strategies in
// order. Nil strategies are dropped.
func New(strategies ...apis.Strategy) apis.Resolver {
	return chain{strats: lo.Compact(strategies)}
}

type chain struct {
	strats []apis.Strategy
}

// Resolve dereferences pointers to v (up to cfg.MaxUnwrap levels, stopping
// early at a pointer that implements apis.Namer) and hands the value to
// the strategies. The first handled result wins. Nil and nil pointers
// resolve to "".
func (r chain) Resolve(v any, cfg apis.Config) string {
	v = deref(v, cfg.MaxUnwrap)
	if v == nil {
		return ""
	}
	for _, s := range r.strats {
		if name, ok := s.TryResolve(v, cfg); ok {
			return name
		}
	}
	return ""
}

// ResolveType reduces t to its enum base type and asks the strategies for
// its name. Types that are not enums under cfg (non-integer, unnamed, or
// builtin unless IncludeBuiltins) resolve to "" without consulting them.
func (r chain) ResolveType(t reflect.Type, cfg apis.Config) string {
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return ""
	}
	for _, s := range r.strats {
		if name, ok := s.TryResolveType(base, cfg); ok {
			return name
		}
	}
	return ""
}

func deref(v any, maxUnwrap int) any {
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	rv := reflect.ValueOf(v)
	for i := 0; i < maxUnwrap && rv.Kind() == reflect.Pointer; i++ {
		if rv.IsNil() {
			return nil
		}
		if _, ok := rv.Interface().(apis.Namer); ok {
			break
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

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

package resolver_test

import (
	"reflect"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/resolver"
)

type Color int

type tagged int

func (t *tagged) EnumName() string { return "tagged" }

// fixed is a Strategy that handles everything with a constant, or nothing.
// It records what it was asked about.
type fixed struct {
	name    string
	handled bool
	seen    *[]any
}

func (f fixed) TryResolve(v any, _ apis.Config) (string, bool) {
	if f.seen != nil {
		*f.seen = append(*f.seen, v)
	}
	return f.name, f.handled
}

func (f fixed) TryResolveType(t reflect.Type, _ apis.Config) (string, bool) {
	if f.seen != nil {
		*f.seen = append(*f.seen, t)
	}
	return f.name, f.handled
}

func TestChain_FirstHandledWins(t *testing.T) {
	var after []any
	r := resolver.New(
		fixed{name: "skip", handled: false},
		nil,
		fixed{name: "first", handled: true},
		fixed{name: "second", handled: true, seen: &after},
	)

	if got := r.Resolve(Color(1), apis.Config{}); got != "first" {
		t.Fatalf("Resolve = %q, want first", got)
	}
	if got := r.ResolveType(reflect.TypeOf(Color(0)), apis.Config{}); got != "first" {
		t.Fatalf("ResolveType = %q, want first", got)
	}
	if len(after) != 0 {
		t.Fatalf("strategy after the winner was called %d times, want 0", len(after))
	}
}

func TestChain_NothingHandled(t *testing.T) {
	r := resolver.New(fixed{name: "x", handled: false})
	if got := r.Resolve(Color(1), apis.Config{}); got != "" {
		t.Fatalf("Resolve = %q, want empty", got)
	}
	if got := resolver.New().ResolveType(reflect.TypeOf(Color(0)), apis.Config{}); got != "" {
		t.Fatalf("empty chain ResolveType = %q, want empty", got)
	}
}

func TestChain_DereferencesValues(t *testing.T) {
	var seen []any
	r := resolver.New(fixed{name: "n", handled: true, seen: &seen})

	c := Color(2)
	pc := &c
	r.Resolve(&pc, apis.Config{})
	if len(seen) != 1 || seen[0] != Color(2) {
		t.Fatalf("strategy saw %v, want [Color(2)]", seen)
	}

	var nilColor *Color
	if got := r.Resolve(nilColor, apis.Config{}); got != "" {
		t.Fatalf("Resolve(nil pointer) = %q, want empty", got)
	}
	if got := r.Resolve(nil, apis.Config{}); got != "" {
		t.Fatalf("Resolve(nil) = %q, want empty", got)
	}
	if len(seen) != 1 {
		t.Fatalf("strategies consulted for nil input: %v", seen[1:])
	}

	// Dereferencing stops at a pointer that names itself.
	seen = nil
	tg := tagged(1)
	r.Resolve(&tg, apis.Config{})
	if _, ok := seen[0].(*tagged); !ok {
		t.Fatalf("strategy saw %T, want *tagged", seen[0])
	}

	// MaxUnwrap bounds the walk.
	seen = nil
	r.Resolve(&pc, apis.Config{MaxUnwrap: 1})
	if _, ok := seen[0].(*Color); !ok {
		t.Fatalf("strategy saw %T, want *Color with MaxUnwrap 1", seen[0])
	}
}

func TestChain_ResolveTypeOnlyForEnums(t *testing.T) {
	var seen []any
	r := resolver.New(fixed{name: "n", handled: true, seen: &seen})

	for _, typ := range []reflect.Type{
		reflect.TypeOf(""),
		reflect.TypeOf(struct{}{}),
		reflect.TypeOf(0),
		nil,
	} {
		if got := r.ResolveType(typ, apis.Config{}); got != "" {
			t.Fatalf("ResolveType(%v) = %q, want empty", typ, got)
		}
	}
	if len(seen) != 0 {
		t.Fatalf("strategies consulted for non-enum types: %v", seen)
	}

	if got := r.ResolveType(reflect.TypeOf(0), apis.Config{IncludeBuiltins: true}); got != "n" {
		t.Fatalf("ResolveType(int) with builtins = %q, want n", got)
	}

	seen = nil
	r.ResolveType(reflect.TypeOf(new(*Color)), apis.Config{})
	if len(seen) != 1 || seen[0] != reflect.TypeOf(Color(0)) {
		t.Fatalf("strategy saw %v, want the base type Color", seen)
	}
}

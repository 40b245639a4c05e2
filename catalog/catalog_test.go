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

package catalog_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/catalog"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/enum"
	uref "dirpx.dev/enumx/utils/reflect"
)

func colorTable() *enum.Registry[E1] {
	return enum.MustNew[E1]([]apis.Entry{{Value: 0, Name: "Red"}, {Value: 1, Name: "Invalid"}})
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())
	tab := colorTable()

	if err := cat.Register(reflect.TypeOf(E1(0)), tab); err != nil {
		t.Fatalf("Register(E1): unexpected error: %v", err)
	}
	// idempotent re-register with the same table, through a pointer type
	if err := cat.Register(reflect.TypeOf(new(E1)), tab); err != nil {
		t.Fatalf("Register(*E1) idempotent: unexpected error: %v", err)
	}

	got, ok := cat.Lookup(reflect.TypeOf(E1(0)))
	if !ok || got != tab {
		t.Fatalf("Lookup(E1): got (%v,%v), want (tab,true)", got, ok)
	}
	// lookup by pointer should hit the same base
	if got, ok := cat.Lookup(reflect.TypeOf(new(E1))); !ok || got != tab {
		t.Fatalf("Lookup(*E1): got (%v,%v), want (tab,true)", got, ok)
	}

	if cat.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", cat.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	if err := cat.Register(reflect.TypeOf(E1(0)), colorTable()); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	err := cat.Register(reflect.TypeOf(E1(0)), colorTable())
	if !errors.Is(err, catalog.ErrConflictingRegistration) {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	if err := cat.Register(nil, colorTable()); err != catalog.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if err := cat.Register(reflect.TypeOf(E1(0)), nil); err != catalog.ErrNilTable {
		t.Fatalf("nil table: want ErrNilTable, got %v", err)
	}
	if err := cat.Register(reflect.TypeOf(S1{}), colorTable()); !errors.Is(err, uref.ErrReflectNotInteger) {
		t.Fatalf("struct type: want ErrReflectNotInteger, got %v", err)
	}
	if err := cat.Register(reflect.TypeOf(0), colorTable()); !errors.Is(err, uref.ErrReflectBuiltin) {
		t.Fatalf("builtin type: want ErrReflectBuiltin, got %v", err)
	}
}

func TestRegister_BuiltinsAllowed(t *testing.T) {
	cat := catalog.New(config.NewConfig(config.WithIncludeBuiltins(true)))
	tab := enum.MustNew[int]([]apis.Entry{{Value: 1, Name: "One"}})
	if err := cat.Register(reflect.TypeOf(0), tab); err != nil {
		t.Fatalf("Register(int) with builtins: %v", err)
	}
	if _, ok := cat.Lookup(reflect.TypeOf(0)); !ok {
		t.Fatal("Lookup(int): not found")
	}
}

func TestEntriesAndReset(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	_ = cat.Register(reflect.TypeOf(E2(0)), enum.MustNew[E2]([]apis.Entry{{Value: 0, Name: "A"}}))
	_ = cat.Register(reflect.TypeOf(E1(0)), colorTable())

	entries := cat.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	if entries[0].Type != reflect.TypeOf(E1(0)) || entries[1].Type != reflect.TypeOf(E2(0)) {
		t.Fatalf("Entries not sorted by type name: %v, %v", entries[0].Type, entries[1].Type)
	}
	if cat.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", cat.Count())
	}

	cat.Reset()

	if cat.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", cat.Count())
	}
	if tab, ok := cat.Lookup(reflect.TypeOf(E1(0))); ok || tab != nil {
		t.Fatalf("Lookup after Reset: got (%v,%v), want (nil,false)", tab, ok)
	}
}

func TestLookupNilAndUnknown(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	if tab, ok := cat.Lookup(nil); ok || tab != nil {
		t.Fatalf("Lookup(nil): got (%v,%v), want (nil,false)", tab, ok)
	}
	if tab, ok := cat.Lookup(reflect.TypeOf(E1(0))); ok || tab != nil {
		t.Fatalf("Lookup(unknown): got (%v,%v), want (nil,false)", tab, ok)
	}
	if tab, ok := cat.Lookup(reflect.TypeOf("s")); ok || tab != nil {
		t.Fatalf("Lookup(string): got (%v,%v), want (nil,false)", tab, ok)
	}
}

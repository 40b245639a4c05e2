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

package enumx

import (
	"errors"
	"iter"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/enum"
)

// init publishes the default snapshot.
func init() {
	cfg := config.DefaultConfig()
	b := builder.New()
	cat := b.BuildCatalog(cfg, nil)
	st.Store(&state{
		cfg: cfg,
		cat: cat,
		res: b.BuildResolver(cfg, cat, nil),
		bld: b,
	})
}

var (
	// ErrNilCatalog is returned when a builder returns a nil catalog.
	ErrNilCatalog = errors.New("enumx: builder returned nil catalog")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("enumx: builder returned nil resolver")
	// ErrNilRegistry is returned by Register for a nil registry.
	ErrNilRegistry = errors.New("enumx: nil registry")
)

// Register publishes r as the name table of T in the global catalog.
// It holds the writer lock, so a concurrent rebuild either migrates the
// table or runs after it lands in the new catalog.
func Register[T enum.Integer](r *enum.Registry[T]) error {
	if r == nil {
		return ErrNilRegistry
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	return st.Load().cat.Register(reflect.TypeFor[T](), r)
}

// MustRegister builds the name table of T from entries with the current
// global Config and registers it. It panics on malformed entries or a
// conflicting registration; generated code calls it from package-level
// variable initializers.
func MustRegister[T enum.Integer](entries ...apis.Entry) *enum.Registry[T] {
	r := enum.MustNew[T](entries, enum.WithConfig(Config()))
	if err := Register(r); err != nil {
		panic(err)
	}
	return r
}

// For returns the typed registry of T, if T was registered through
// Register or MustRegister.
func For[T enum.Integer]() (*enum.Registry[T], bool) {
	tab, ok := table[T]()
	if !ok {
		return nil, false
	}
	r, ok := tab.(*enum.Registry[T])
	return r, ok
}

// Name returns the registered name of v. It reports false when T has no
// table or v has no entry.
func Name[T enum.Integer](v T) (string, bool) {
	tab, ok := table[T]()
	if !ok {
		return "", false
	}
	return tab.LookupInt(int64(v))
}

// Value returns the value registered under name, or ErrorValue[T]() when
// there is none.
func Value[T enum.Integer](name string) T {
	tab, ok := table[T]()
	if !ok {
		return T(st.Load().cfg.FallbackErrorValue)
	}
	if v, ok := tab.ParseInt(name); ok {
		return T(v)
	}
	return T(tab.ErrorInt())
}

// ErrorValue returns the error value of T. Unregistered types report the
// configured fallback (-1 by default) converted to T.
func ErrorValue[T enum.Integer]() T {
	tab, ok := table[T]()
	if !ok {
		return T(st.Load().cfg.FallbackErrorValue)
	}
	return T(tab.ErrorInt())
}

// All yields every entry of T's table in table order; nothing for
// unregistered types.
func All[T enum.Integer]() iter.Seq2[int64, string] {
	tab, ok := table[T]()
	if !ok {
		return func(func(int64, string) bool) {}
	}
	return tab.All()
}

// NameOf resolves the display name of an untyped enum value using the
// global resolver: Namer, then catalog tables, then "pkg.Type(n)".
func NameOf(v any) string {
	s := st.Load()
	return s.res.Resolve(v, s.cfg)
}

// TypeNameOf resolves the "pkg.Type" name of t using the global resolver.
func TypeNameOf(t reflect.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

func table[T enum.Integer]() (apis.Table, bool) {
	return st.Load().cat.Lookup(reflect.TypeFor[T]())
}

// Config returns the global configuration.
func Config() apis.Config {
	return config.Clone(st.Load().cfg)
}

// SetConfig replaces the global configuration and rebuilds the unpinned
// catalog (migrating its tables) and resolver. Tables already built keep
// the error values they were built with. Tables of builtin types are
// dropped, with a warning, when cfg turns IncludeBuiltins off.
func SetConfig(cfg apis.Config) {
	publish(func(next *state) {
		next.cfg = config.Clone(cfg)
		rebuild(next)
	})
}

// Catalog returns the global catalog.
func Catalog() apis.Catalog {
	return st.Load().cat
}

// SetCatalog installs cat as the global catalog and pins it, so that
// configuration changes no longer rebuild it. A nil cat is ignored.
func SetCatalog(cat apis.Catalog) {
	if cat == nil {
		return
	}
	publish(func(next *state) {
		next.cat, next.pcat = cat, true
		rebuild(next)
	})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs res as the global resolver and pins it.
// A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	publish(func(next *state) {
		next.res, next.pres = res, true
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds unpinned layers with it.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	publish(func(next *state) {
		next.bld = b
		rebuild(next)
	})
}

// UnpinCatalog lets configuration and builder changes rebuild the catalog again.
func UnpinCatalog() {
	publish(func(next *state) { next.pcat = false })
}

// UnpinResolver lets configuration and builder changes rebuild the resolver again.
func UnpinResolver() {
	publish(func(next *state) { next.pres = false })
}

// SetAll replaces every layer in one step; mainly for tests.
// Nil arguments leave the builder and configuration unchanged and cause the
// catalog and resolver to be rebuilt (and unpinned); non-nil ones are pinned.
func SetAll(cfg *apis.Config, cat apis.Catalog, res apis.Resolver, bld apis.Builder) {
	publish(func(next *state) {
		if cfg != nil {
			next.cfg = config.Clone(*cfg)
		}
		if bld != nil {
			next.bld = bld
		}
		next.cat, next.pcat = cat, cat != nil
		next.res, next.pres = res, res != nil
		if cat == nil {
			next.cat = next.bld.BuildCatalog(next.cfg, st.Load().cat)
		}
		if res == nil {
			next.res = next.bld.BuildResolver(next.cfg, next.cat, st.Load().res)
		}
	})
}

// rebuild re-derives the unpinned layers of next from its builder.
func rebuild(next *state) {
	if !next.pcat {
		next.cat = next.bld.BuildCatalog(next.cfg, next.cat)
	}
	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg, next.cat, next.res)
	}
}

// publish copies the current snapshot, lets mutate edit the copy, checks it
// and swaps it in. Writers are serialized by buildMu.
func publish(mutate func(next *state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	mutate(&next)

	// Ensure non-nil cat and res.
	if next.cat == nil {
		panic(ErrNilCatalog)
	}
	if next.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&next)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global enumx state.
var st atomic.Pointer[state]

// state is the global snapshot. A published state is never mutated;
// writers copy it, edit the copy and swap it in atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// cat maps enum types to their tables.
	cat apis.Catalog
	// res resolves untyped values.
	res apis.Resolver
	// bld builds cat and res.
	bld apis.Builder
	// pcat indicates whether cat is pinned.
	pcat bool
	// pres indicates whether res is pinned.
	pres bool
}

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

package builder

import (
	"log/slog"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/catalog"
	"dirpx.dev/enumx/resolver"
	"dirpx.dev/enumx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildCatalog builds and returns a new apis.Catalog based on the provided configuration
// and pre-existing catalog. If a pre-existing catalog is provided, its tables are copied
// into the new catalog. Tables are immutable, so they are shared, not rebuilt.
//
// A table whose type cfg no longer accepts (a builtin type once
// IncludeBuiltins is off) is dropped with a warning on slog.Default().
func (b *builder) BuildCatalog(cfg apis.Config, prev apis.Catalog) apis.Catalog {
	ncat := catalog.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			if err := ncat.Register(e.Type, e.Table); err != nil {
				slog.Warn("enum table dropped on catalog rebuild",
					"type", e.Type.String(), "error", err)
			}
		}
	}
	return ncat
}

// BuildResolver builds and returns the default resolver chain over cat:
// Namer, then Catalog, then the reflect fallback.
func (b *builder) BuildResolver(_ apis.Config, cat apis.Catalog, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewNamerStrategy(),
		strategy.NewCatalogStrategy(cat),
		strategy.NewReflectStrategy(),
	)
}

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

package catalog

import (
	"reflect"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enumx(catalog): nil reflect.Type provided")
	// ErrNilTable is returned when a nil table is provided.
	ErrNilTable = errors.New("enumx(catalog): nil table provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different table.
	ErrConflictingRegistration = errors.New("enumx(catalog): conflicting type registration")
)

// New constructs a Catalog that normalizes types according to cfg.
// Only MaxUnwrap and IncludeBuiltins are used here.
func New(cfg apis.Config) apis.Catalog {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &catalog{cfg: cfg}
}

// catalog is a simple Catalog implementation backed by sync.Map.
type catalog struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to its table.
	m sync.Map // map[reflect.Type]apis.Table
	// count tracks the number of registered tables.
	count int
}

// Register associates the enum type underneath t with tab.
// It is idempotent for the same (type, table) pair.
func (c *catalog) Register(t reflect.Type, tab apis.Table) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if tab == nil {
		return ErrNilTable
	}

	b, err := uref.Normalize(t, c.cfg)
	if err != nil {
		return errors.Wrapf(err, "enumx(catalog): register %s", t)
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := c.m.Load(b); ok {
		return sameOrConflict(b, old.(apis.Table), tab)
	}

	// Write path: guard with a mutex to keep counter consistent.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := c.m.Load(b); ok {
		return sameOrConflict(b, old.(apis.Table), tab)
	}

	c.m.Store(b, tab)
	c.count++
	return nil
}

func sameOrConflict(t reflect.Type, old, tab apis.Table) error {
	if old == tab {
		return nil // idempotent re-registration
	}
	return errors.Wrapf(ErrConflictingRegistration, "%s", t)
}

// Lookup returns the table registered for t, if any.
func (c *catalog) Lookup(t reflect.Type) (apis.Table, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, c.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := c.m.Load(nt); ok {
		return v.(apis.Table), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs, sorted by type name.
func (c *catalog) Entries() []apis.CatalogEntry {
	entries := make([]apis.CatalogEntry, 0, c.Count())
	c.m.Range(func(key, value any) bool {
		entries = append(entries, apis.CatalogEntry{
			Type:  key.(reflect.Type),
			Table: value.(apis.Table),
		})
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type.String() < entries[j].Type.String()
	})
	return entries
}

// Count returns the number of registered tables.
func (c *catalog) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset clears all registered tables.
func (c *catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m.Clear()
	c.count = 0
}

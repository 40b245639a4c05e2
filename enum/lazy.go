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

package enum

import (
	"sync"

	"github.com/pkg/errors"

	"dirpx.dev/enumx/apis"
)

// Lazy defers building a Registry until first use.
// The loader runs exactly once, however many goroutines call Get
// concurrently; every caller observes the same registry or the same error.
type Lazy[T Integer] struct {
	get func() (*Registry[T], error)
}

// NewLazy returns a Lazy that builds its Registry from load with opts.
func NewLazy[T Integer](load func() ([]apis.Entry, error), opts ...Option) *Lazy[T] {
	return &Lazy[T]{
		get: sync.OnceValues(func() (*Registry[T], error) {
			entries, err := load()
			if err != nil {
				return nil, errors.Wrapf(err, "enumx(enum): load %s", TypeName[T]())
			}
			return New[T](entries, opts...)
		}),
	}
}

// Get returns the registry, building it on the first call.
func (l *Lazy[T]) Get() (*Registry[T], error) {
	return l.get()
}

// MustGet is like Get but panics on error.
func (l *Lazy[T]) MustGet() *Registry[T] {
	r, err := l.get()
	if err != nil {
		panic(err)
	}
	return r
}

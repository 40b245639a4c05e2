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

package config

import (
	"slices"

	"github.com/samber/lo"

	"dirpx.dev/enumx/apis"
)

const (
	// DefaultFallbackErrorValue represents the default for FallbackErrorValue.
	// It is converted to the enum type, so unsigned enums get their maximum value.
	DefaultFallbackErrorValue int64 = -1
	// DefaultStrictNames represents the default for StrictNames.
	// When false, duplicate names are accepted and the first one wins.
	DefaultStrictNames = false
	// DefaultIncludeBuiltins represents the default for IncludeBuiltins.
	// Enums are named types; builtin integers are rejected by default.
	DefaultIncludeBuiltins = false
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// DefaultErrorMarkers returns the default ErrorMarkers.
// A fresh slice is returned on every call.
func DefaultErrorMarkers() []string {
	return []string{"Invalid", "Unknown"}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		ErrorMarkers:       DefaultErrorMarkers(),
		FallbackErrorValue: DefaultFallbackErrorValue,
		StrictNames:        DefaultStrictNames,
		IncludeBuiltins:    DefaultIncludeBuiltins,
		MaxUnwrap:          DefaultMaxUnwrap,
	}
}

// Clone returns a copy of cfg that shares no slices with it.
func Clone(cfg apis.Config) apis.Config {
	cfg.ErrorMarkers = slices.Clone(cfg.ErrorMarkers)
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithErrorMarkers replaces the ErrorMarkers option.
// Empty markers are dropped; with no markers left, only the fallback applies.
func WithErrorMarkers(markers ...string) Option {
	return func(c *apis.Config) {
		c.ErrorMarkers = lo.Compact(markers)
	}
}

// WithFallbackErrorValue sets the FallbackErrorValue option.
func WithFallbackErrorValue(v int64) Option {
	return func(c *apis.Config) {
		c.FallbackErrorValue = v
	}
}

// WithStrictNames sets the StrictNames option.
func WithStrictNames(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictNames = strict
	}
}

// WithIncludeBuiltins sets the IncludeBuiltins option.
func WithIncludeBuiltins(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

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
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

// Option configures New.
type Option func(*options)

type options struct {
	cfg        apis.Config
	typeName   string
	errorValue *int64
}

// WithConfig builds the table with cfg instead of config.DefaultConfig().
func WithConfig(cfg apis.Config) Option {
	return func(o *options) {
		o.cfg = config.Clone(cfg)
	}
}

// WithTypeName overrides the diagnostic "pkg.Type" name.
func WithTypeName(name string) Option {
	return func(o *options) {
		o.typeName = name
	}
}

// WithErrorValue fixes the error value explicitly, bypassing the marker heuristic.
// v need not be a registered value.
func WithErrorValue(v int64) Option {
	return func(o *options) {
		o.errorValue = &v
	}
}

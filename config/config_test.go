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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/enumx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if diff := cmp.Diff(config.DefaultErrorMarkers(), got.ErrorMarkers); diff != "" {
		t.Fatalf("ErrorMarkers mismatch (-want +got):\n%s", diff)
	}
	if got.FallbackErrorValue != config.DefaultFallbackErrorValue {
		t.Fatalf("FallbackErrorValue = %d, want %d", got.FallbackErrorValue, config.DefaultFallbackErrorValue)
	}
	if got.StrictNames != config.DefaultStrictNames {
		t.Fatalf("StrictNames = %v, want %v", got.StrictNames, config.DefaultStrictNames)
	}
	if got.IncludeBuiltins != config.DefaultIncludeBuiltins {
		t.Fatalf("IncludeBuiltins = %v, want %v", got.IncludeBuiltins, config.DefaultIncludeBuiltins)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if diff := cmp.Diff(def, got); diff != "" {
		t.Fatalf("NewConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultErrorMarkers_FreshSlice(t *testing.T) {
	a := config.DefaultErrorMarkers()
	a[0] = "mutated"
	if b := config.DefaultErrorMarkers(); b[0] != "Invalid" {
		t.Fatalf("DefaultErrorMarkers()[0] = %q after mutation, want Invalid", b[0])
	}
}

func TestWithErrorMarkers_DropsEmpty(t *testing.T) {
	c := config.NewConfig(config.WithErrorMarkers("", "Bad", "", "None"))
	if diff := cmp.Diff([]string{"Bad", "None"}, c.ErrorMarkers); diff != "" {
		t.Fatalf("ErrorMarkers mismatch (-want +got):\n%s", diff)
	}

	c2 := config.NewConfig(config.WithErrorMarkers())
	if len(c2.ErrorMarkers) != 0 {
		t.Fatalf("ErrorMarkers = %v, want empty", c2.ErrorMarkers)
	}
}

func TestWithFallbackErrorValue(t *testing.T) {
	c := config.NewConfig(config.WithFallbackErrorValue(255))
	if c.FallbackErrorValue != 255 {
		t.Fatalf("FallbackErrorValue = %d, want 255", c.FallbackErrorValue)
	}
}

func TestWithStrictNamesAndBuiltins(t *testing.T) {
	c := config.NewConfig(config.WithStrictNames(true), config.WithIncludeBuiltins(true))
	if !c.StrictNames {
		t.Fatalf("StrictNames = %v, want true", c.StrictNames)
	}
	if !c.IncludeBuiltins {
		t.Fatalf("IncludeBuiltins = %v, want true", c.IncludeBuiltins)
	}
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithStrictNames(true),
		config.WithStrictNames(false),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithErrorMarkers("A"),
		config.WithErrorMarkers("B"),
	)

	if c.StrictNames {
		t.Errorf("StrictNames = %v, want false (last option wins)", c.StrictNames)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
	if diff := cmp.Diff([]string{"B"}, c.ErrorMarkers); diff != "" {
		t.Errorf("ErrorMarkers mismatch (-want +got):\n%s", diff)
	}
}

func TestClone_DoesNotShareMarkers(t *testing.T) {
	orig := config.DefaultConfig()
	cp := config.Clone(orig)
	cp.ErrorMarkers[0] = "changed"
	if orig.ErrorMarkers[0] != "Invalid" {
		t.Fatalf("orig.ErrorMarkers[0] = %q, want Invalid", orig.ErrorMarkers[0])
	}
}

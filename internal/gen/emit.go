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

package gen

import (
	"bytes"
	"go/format"
	"io"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"dirpx.dev/enumx/manifest"
)

// Output formats.
const (
	FormatGo   = "go"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for output formats other than go and yaml.
var ErrUnknownFormat = errors.New("enumx(gen): unknown output format")

// GoOptions controls WriteGo.
type GoOptions struct {
	// Stringer also emits a String method per type.
	Stringer bool
}

const header = "// Code generated by enumgen; DO NOT EDIT.\n"

var goTemplate = template.Must(template.New("enums").Funcs(template.FuncMap{
	"varName": varName,
}).Parse(header + `
package {{.Package}}

import (
	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
)
{{range .Enums}}
var {{varName .Name}} = enumx.MustRegister[{{.Name}}](
{{- range .Constants}}
	apis.Entry{Value: {{.Value}}, Name: {{printf "%q" .Name}}}, // {{.Ident}}
{{- end}}
)
{{if $.Stringer}}
// String returns the registered name of v.
func (v {{.Name}}) String() string {
	return {{varName .Name}}.Format(v)
}
{{end}}{{end}}`))

// WriteGo writes Go source for package pkg that registers the name table
// of every enum with enumx.
func WriteGo(w io.Writer, pkg string, enums []Enum, opts GoOptions) error {
	var buf bytes.Buffer
	err := goTemplate.Execute(&buf, struct {
		Package  string
		Enums    []Enum
		Stringer bool
	}{pkg, enums, opts.Stringer})
	if err != nil {
		return errors.Wrap(err, "render go source")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "format go source")
	}
	_, err = w.Write(src)
	return errors.Wrap(err, "write go source")
}

// WriteManifest writes enums as a YAML manifest for package pkg.
func WriteManifest(w io.Writer, pkg string, enums []Enum) error {
	m := &manifest.Manifest{
		Enums: lo.Map(enums, func(e Enum, _ int) manifest.Enum {
			return manifest.Enum{
				Name:    e.Name,
				Package: pkg,
				Constants: lo.Map(e.Constants, func(c Constant, _ int) manifest.Constant {
					return manifest.Constant{Name: c.Name, Value: c.Value}
				}),
			}
		}),
	}
	return manifest.Encode(w, m)
}

// Write renders enums in the given format.
func Write(w io.Writer, format, pkg string, enums []Enum, opts GoOptions) error {
	switch format {
	case FormatGo:
		return WriteGo(w, pkg, enums, opts)
	case FormatYAML:
		return WriteManifest(w, pkg, enums)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// OutputPath names the default output file for package pkg in dir.
func OutputPath(dir, pkg, format string) string {
	switch format {
	case FormatYAML:
		return filepath.Join(dir, pkg+"_enums.yaml")
	default:
		return filepath.Join(dir, pkg+"_enums.go")
	}
}

// varName is the package variable holding the registry of type t.
func varName(t string) string {
	r, n := utf8.DecodeRuneInString(t)
	return string(unicode.ToLower(r)) + t[n:] + "Names"
}

// IsGenerated reports whether src starts with the enumgen header.
func IsGenerated(src []byte) bool {
	return strings.HasPrefix(string(src), header)
}

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

// Package gen finds integer enum types in Go source and emits their name
// tables, either as Go code registering them with enumx or as a manifest.
package gen

import (
	"context"
	"go/ast"
	"go/build"
	"go/constant"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"dirpx.dev/enumx/internal/xlog"
)

// ErrNoPackage is returned by Scan when dir holds no Go source to scan.
var ErrNoPackage = errors.New("enumx(gen): no go package")

// Options selects and renames what Scan reports.
type Options struct {
	// Types limits the scan to the named types. Empty means all.
	Types []string
	// TrimTypePrefix turns ColorRed into Red for type Color.
	TrimTypePrefix bool
	// TrimHungarian drops a leading 'e' or 'k' marker: kRed -> Red.
	TrimHungarian bool
	// IncludeUnexported also reports unexported types and constants.
	IncludeUnexported bool
}

// Package is the result of a scan.
type Package struct {
	Name  string
	Dir   string
	Enums []Enum
}

// Enum is a named integer type and its constants in declaration order.
type Enum struct {
	Name      string
	Constants []Constant
}

// Constant is one declared constant. Ident is the Go identifier, Name the
// name registered for it after trimming.
type Constant struct {
	Ident string
	Name  string
	Value int64
}

// Scan parses and type checks the Go files of dir that the go command
// would build for the host platform (build constraints and _GOOS/_GOARCH
// suffixes apply, tests are excluded) and returns every named integer type
// that has at least one constant. Type errors (missing imports and the
// like) are tolerated; parse errors are not.
func Scan(ctx context.Context, dir string, opts Options) (*Package, error) {
	log := xlog.FromContext(ctx).With("dir", dir)

	fset := token.NewFileSet()
	name, files, err := parseDir(ctx, fset, dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Wrapf(ErrNoPackage, "%s", dir)
	}

	var softErrs int
	conf := types.Config{
		Importer:    importer.ForCompiler(fset, "source", nil),
		FakeImportC: true,
		Error:       func(error) { softErrs++ },
	}
	pkg, _ := conf.Check(name, fset, files, nil)
	if pkg == nil {
		return nil, errors.Wrapf(ErrNoPackage, "%s: type check failed", dir)
	}
	if softErrs > 0 {
		log.Debug("type errors ignored", "count", softErrs)
	}

	out := &Package{Name: name, Dir: dir}
	scope := pkg.Scope()
	for _, n := range scope.Names() {
		tn, ok := scope.Lookup(n).(*types.TypeName)
		if !ok || tn.IsAlias() || !wanted(tn, opts) {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 || !isInteger(named) {
			continue
		}
		e := Enum{Name: tn.Name(), Constants: constantsOf(scope, named, opts)}
		if len(e.Constants) == 0 {
			log.Debug("skipping type without constants", "type", e.Name)
			continue
		}
		out.Enums = append(out.Enums, e)
	}

	for _, t := range opts.Types {
		if !lo.ContainsBy(out.Enums, func(e Enum) bool { return e.Name == t }) {
			log.Warn("requested type not found", "type", t)
		}
	}
	log.Debug("scan done", "package", name, "enums", len(out.Enums))
	return out, nil
}

// parseDir parses the files go/build selects for dir, skipping generated
// ones, and returns them with the package name.
func parseDir(ctx context.Context, fset *token.FileSet, dir string) (string, []*ast.File, error) {
	if _, err := os.Stat(dir); err != nil {
		return "", nil, errors.Wrap(err, "read package dir")
	}
	bp, err := build.Default.ImportDir(dir, 0)
	if err != nil {
		var noGo *build.NoGoError
		if errors.As(err, &noGo) {
			return "", nil, errors.Wrapf(ErrNoPackage, "%s", dir)
		}
		return "", nil, errors.Wrap(err, "read package dir")
	}

	var files []*ast.File
	for _, n := range append(bp.GoFiles, bp.CgoFiles...) {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}
		f, err := parser.ParseFile(fset, filepath.Join(bp.Dir, n), nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return "", nil, errors.Wrapf(err, "parse %s", n)
		}
		if ast.IsGenerated(f) {
			continue
		}
		files = append(files, f)
	}
	return bp.Name, files, nil
}

func wanted(tn *types.TypeName, opts Options) bool {
	if !opts.IncludeUnexported && !tn.Exported() {
		return false
	}
	return len(opts.Types) == 0 || lo.Contains(opts.Types, tn.Name())
}

func isInteger(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsInteger != 0
}

// constantsOf returns the constants of type t in declaration order. A
// constant repeating an earlier value is an alias and is dropped.
func constantsOf(scope *types.Scope, t *types.Named, opts Options) []Constant {
	var consts []*types.Const
	for _, n := range scope.Names() {
		c, ok := scope.Lookup(n).(*types.Const)
		if !ok || !types.Identical(c.Type(), t) {
			continue
		}
		if !opts.IncludeUnexported && !c.Exported() {
			continue
		}
		consts = append(consts, c)
	}
	sort.Slice(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })

	seen := make(map[int64]bool, len(consts))
	out := make([]Constant, 0, len(consts))
	for _, c := range consts {
		v, ok := int64Val(c.Val())
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, Constant{
			Ident: c.Name(),
			Name:  TrimName(c.Name(), t.Obj().Name(), opts),
			Value: v,
		})
	}
	return out
}

// int64Val converts an integer constant, wrapping values above MaxInt64
// the same way a uint64 to int64 conversion does.
func int64Val(v constant.Value) (int64, bool) {
	v = constant.ToInt(v)
	if v.Kind() != constant.Int {
		return 0, false
	}
	if n, exact := constant.Int64Val(v); exact {
		return n, true
	}
	if u, exact := constant.Uint64Val(v); exact {
		return int64(u), true
	}
	return 0, false
}

// TrimName applies the renaming options to the constant ident of type
// typeName. Trimming never produces an empty name.
func TrimName(ident, typeName string, opts Options) string {
	name := ident
	if opts.TrimHungarian {
		name = trimHungarian(name)
	}
	if opts.TrimTypePrefix {
		if rest, ok := strings.CutPrefix(name, typeName); ok && rest != "" {
			name = strings.TrimLeft(rest, "_")
			if name == "" {
				name = rest
			}
		}
	}
	return name
}

// trimHungarian drops a leading 'e' or 'k' that is followed by anything
// but a lower-case letter.
func trimHungarian(s string) string {
	if len(s) < 2 || (s[0] != 'e' && s[0] != 'k') {
		return s
	}
	r, _ := utf8.DecodeRuneInString(s[1:])
	if unicode.IsLower(r) {
		return s
	}
	return s[1:]
}

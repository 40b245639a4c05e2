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

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx/internal/gen"
	"dirpx.dev/enumx/internal/xlog"
)

const paintSrc = `package paint

type Color int

const (
	ColorRed Color = iota
	ColorGreen
	ColorUnknown
)
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func paintDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paint.go"), []byte(paintSrc), 0o644))
	return dir
}

func TestGenerate_Go(t *testing.T) {
	dir := paintDir(t)

	_, _, err := run(t, "generate", dir, "--trim-prefix", "--stringer")
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "paint_enums.go"))
	require.NoError(t, err)
	require.True(t, gen.IsGenerated(src))
	require.Contains(t, string(src), `Name: "Green"`)
	require.Contains(t, string(src), "func (v Color) String() string")

	// Regenerating over our own output is fine.
	_, _, err = run(t, "generate", dir)
	require.NoError(t, err)
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := run(t, "generate", paintDir(t), "-o", "-", "-f", "yaml", "--trim-prefix")
	require.NoError(t, err)
	require.Contains(t, out, "name: Color")
	require.Contains(t, out, "package: paint")
	require.Contains(t, out, "name: Unknown")
}

func TestGenerate_Errors(t *testing.T) {
	dir := paintDir(t)

	_, _, err := run(t, "generate", dir, "--type", "Missing")
	require.ErrorIs(t, err, ErrNoEnums)

	_, _, err = run(t, "generate", dir, "-f", "xml")
	require.ErrorIs(t, err, gen.ErrUnknownFormat)

	handWritten := filepath.Join(dir, "mine.go")
	require.NoError(t, os.WriteFile(handWritten, []byte("package paint\n"), 0o644))
	_, _, err = run(t, "generate", dir, "-o", handWritten)
	require.ErrorIs(t, err, ErrNotGenerated)

	_, _, err = run(t, "generate", dir, "--log-level", "loud")
	require.ErrorIs(t, err, xlog.ErrUnknownLevel)
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list", paintDir(t))
	require.NoError(t, err)
	require.Equal(t, "paint.Color\tColorRed=0 ColorGreen=1 ColorUnknown=2\n", out)
}

func TestOutputs(t *testing.T) {
	paint := paintDir(t)
	empty := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(empty, "doc.go"), []byte("package empty\n"), 0o644))

	out, _, err := run(t, "outputs", paint, empty)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(paint, "paint_enums.go")+"\n", out)

	out, _, err = run(t, "outputs", paint, "-f", "yaml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(paint, "paint_enums.yaml")+"\n", out)

	// The listed path is the one generate writes.
	_, _, err = run(t, "generate", paint)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(paint, "paint_enums.go"))
	require.NoError(t, err)

	_, _, err = run(t, "outputs", paint, "-f", "xml")
	require.ErrorIs(t, err, gen.ErrUnknownFormat)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.hcl")
	require.NoError(t, os.WriteFile(good, []byte("enum \"Mode\" {\n  constant \"Off\" { value = 0 }\n  constant \"On\" { value = 1 }\n}\n"), 0o644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("enums:\n  - name: Mode\n    constants:\n      - {name: Off, value: 0}\n      - {name: On, value: 0}\n"), 0o644))

	out, _, err := run(t, "check", good)
	require.NoError(t, err)
	require.Equal(t, good+": 1 enums ok\n", out)

	_, _, err = run(t, "check", good, bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.yaml")
}

func TestLogFlags(t *testing.T) {
	dir := paintDir(t)
	_, logs, err := run(t, "generate", dir, "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, logs, `"message":"generated"`)

	t.Setenv("ENUMGEN_LOG_LEVEL", "debug")
	_, logs, err = run(t, "list", dir)
	require.NoError(t, err)
	require.Contains(t, logs, "scan done")
}

func TestExecute(t *testing.T) {
	require.Equal(t, 0, Execute(context.Background(), []string{"list", paintDir(t)}))
	require.Equal(t, 1, Execute(context.Background(), []string{"list", filepath.Join(t.TempDir(), "missing")}))
}

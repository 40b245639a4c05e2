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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"dirpx.dev/enumx/internal/gen"
	"dirpx.dev/enumx/internal/xlog"
)

var (
	// ErrNoEnums is returned when a scan finds nothing to generate.
	ErrNoEnums = errors.New("enumx(cli): no enum types found")
	// ErrNotGenerated is returned instead of overwriting a hand-written file.
	ErrNotGenerated = errors.New("enumx(cli): refusing to overwrite a file not generated by enumgen")
)

type generateFlags struct {
	types         []string
	format        string
	output        string
	trimPrefix    bool
	trimHungarian bool
	stringer      bool
	unexported    bool
}

func newGenerateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Write the name tables of the enums declared in a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, dirArg(args), f)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&f.types, "type", "t", nil, "Only generate these types (repeatable)")
	flags.StringVarP(&f.format, "format", "f", gen.FormatGo, "Output format: go or yaml")
	flags.StringVarP(&f.output, "output", "o", "", "Output file; '-' for stdout (default <dir>/<pkg>_enums.<ext>)")
	flags.BoolVar(&f.trimPrefix, "trim-prefix", false, "Strip the type name from constant names")
	flags.BoolVar(&f.trimHungarian, "trim-hungarian", false, "Strip a leading 'e' or 'k' marker from constant names")
	flags.BoolVar(&f.stringer, "stringer", false, "Also generate String methods (go format only)")
	flags.BoolVar(&f.unexported, "unexported", false, "Include unexported types and constants")
	return cmd
}

func runGenerate(cmd *cobra.Command, dir string, f generateFlags) error {
	ctx := cmd.Context()
	log := xlog.FromContext(ctx)

	pkg, err := gen.Scan(ctx, dir, gen.Options{
		Types:             f.types,
		TrimTypePrefix:    f.trimPrefix,
		TrimHungarian:     f.trimHungarian,
		IncludeUnexported: f.unexported,
	})
	if err != nil {
		return err
	}
	if len(pkg.Enums) == 0 {
		return errors.Wrapf(ErrNoEnums, "in %s", dir)
	}

	var buf bytes.Buffer
	if err := gen.Write(&buf, f.format, pkg.Name, pkg.Enums, gen.GoOptions{Stringer: f.stringer}); err != nil {
		return err
	}

	if f.output == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	out := f.output
	if out == "" {
		out = gen.OutputPath(dir, pkg.Name, f.format)
	}
	if f.format == gen.FormatGo {
		if prev, err := os.ReadFile(out); err == nil && !gen.IsGenerated(prev) {
			return errors.Wrapf(ErrNotGenerated, "%s", out)
		}
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}

	log.Info("generated", "file", out, "enums", len(pkg.Enums))
	return nil
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

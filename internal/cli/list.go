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
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"dirpx.dev/enumx/internal/gen"
	"dirpx.dev/enumx/manifest"
)

func newListCommand() *cobra.Command {
	var unexported bool

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List the enums declared in a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := gen.Scan(cmd.Context(), dirArg(args), gen.Options{IncludeUnexported: unexported})
			if err != nil {
				return err
			}
			for _, e := range pkg.Enums {
				pairs := lo.Map(e.Constants, func(c gen.Constant, _ int) string {
					return fmt.Sprintf("%s=%d", c.Name, c.Value)
				})
				fmt.Fprintf(cmd.OutOrStdout(), "%s.%s\t%s\n", pkg.Name, e.Name, strings.Join(pairs, " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unexported, "unexported", false, "Include unexported types and constants")
	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>...",
		Short: "Validate YAML or HCL manifests",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				m, err := manifest.Load(cmd.Context(), path)
				if err != nil {
					return err
				}
				for _, e := range m.Enums {
					if _, err := manifest.Bind[int64](e); err != nil {
						return errors.Wrap(err, path)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d enums ok\n", path, len(m.Enums))
			}
			return nil
		},
	}
}

func newOutputsCommand() *cobra.Command {
	var (
		types      []string
		format     string
		unexported bool
	)

	cmd := &cobra.Command{
		Use:   "outputs [dir]...",
		Short: "Print the files generate would write, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			if format != gen.FormatGo && format != gen.FormatYAML {
				return errors.Wrapf(gen.ErrUnknownFormat, "%q", format)
			}
			for _, dir := range args {
				pkg, err := gen.Scan(cmd.Context(), dir, gen.Options{Types: types, IncludeUnexported: unexported})
				if err != nil {
					return err
				}
				if len(pkg.Enums) == 0 {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), gen.OutputPath(dir, pkg.Name, format))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&types, "type", "t", nil, "Only consider these types (repeatable)")
	flags.StringVarP(&format, "format", "f", gen.FormatGo, "Output format: go or yaml")
	flags.BoolVar(&unexported, "unexported", false, "Include unexported types and constants")
	return cmd
}

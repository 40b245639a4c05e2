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

// Package cli implements the enumgen command line.
package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/enumx/internal/xlog"
)

const envPrefix = "ENUMGEN_"

// getenv looks up the environment override of a flag: --log-level reads
// ENUMGEN_LOG_LEVEL.
func getenv(name string) (string, bool) {
	name = strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return os.LookupEnv(envPrefix + name)
}

func envString(name, value string) string {
	if env, ok := getenv(name); ok {
		return env
	}
	return value
}

// NewRootCommand returns the enumgen command tree.
func NewRootCommand() *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:           "enumgen",
		Short:         "Generate enumx name tables from Go enum declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := xlog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			l, err := xlog.New(cmd.ErrOrStderr(), level, logFormat)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(xlog.WithLogger(ctx, l))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", envString("log-level", "warn"), "Log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", envString("log-format", xlog.FormatText), "Log format: text or json")

	root.AddCommand(newGenerateCommand(), newListCommand(), newCheckCommand(), newOutputsCommand())
	return root
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("enumgen:", err)
		return 1
	}
	return 0
}

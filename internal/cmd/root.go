// Copyright 2025 The Library Template Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd provides the commands of the setup tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/fvena/typescript-library-template-pro/internal/cli"
	"github.com/fvena/typescript-library-template-pro/internal/cmd/validate"
	"github.com/fvena/typescript-library-template-pro/internal/config"
	"github.com/fvena/typescript-library-template-pro/internal/logging"
	"github.com/fvena/typescript-library-template-pro/internal/runtime"
	"github.com/fvena/typescript-library-template-pro/internal/setup"
	"github.com/fvena/typescript-library-template-pro/internal/terminal"
)

// Version is stamped at build time.
var Version = "dev"

// reportedError is a failure the wizard already printed.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// NewRootCommand creates the root command. Run without a subcommand it
// configures the library template in --dir.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure a freshly created TypeScript library",
		Long: `Setup asks a few questions about your library and rewrites the template
accordingly: package metadata, license, documentation, playground, supported
environments. It can install dependencies, publish to npm and commit the result.`,
		Example: `
# Answer the questions interactively
setup

# Configure another checkout without prompting
setup -C ../my-lib -f answers.yaml

# Show what would be done
setup -f answers.yaml --dry-run
`,
		Args: cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(afero.NewOsFs(), cmd.Flags())
			if err != nil {
				return err
			}

			if err := logging.SetupCharmLogger(cmd, settings.LogLevel, settings.NoColor, settings.Quiet); err != nil {
				return err
			}
			logger := logging.GetObservableLogger(cmd)

			if settings.Script == "" {
				if exe, err := os.Executable(); err == nil {
					settings.Script = exe
				} else {
					logger.Warn("could not resolve the setup executable", "err", err)
				}
			}
			logger.Debug("Loaded settings", "dir", settings.Dir, "file", settings.File, "script", settings.Script)

			rt := runtime.New(
				runtime.WithSettings(settings),
				runtime.WithLogger(logger),
				runtime.WithClearScreen(terminal.IsOutputTerminal()),
			)
			cmd.SetContext(runtime.WithRuntime(cmd.Context(), rt))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runtime.FromRuntime(cmd.Context())
			if rt == nil {
				return fmt.Errorf("runtime not initialized")
			}
			defer rt.Close()

			if err := setup.Run(cmd.Context(), rt); err != nil {
				return reportedError{err}
			}
			return nil
		},
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	return rootCmd
}

// handleError prints failures that were not reported by the wizard itself.
func handleError(w io.Writer, _ fang.Styles, err error) {
	var reported reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintln(w, color.New(color.FgRed).Sprint("[!] "+err.Error()))
}

// Execute is the main entry point of the setup tool.
func Execute() {
	rootCmd := NewRootCommand()
	rootCmd.AddCommand(
		validate.New(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(Version),
		fang.WithErrorHandler(handleError),
	)
	cancel()
	if err != nil {
		os.Exit(cli.ExitError)
	}
}

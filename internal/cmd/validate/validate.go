package validate

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/fvena/typescript-library-template-pro/internal/answers"
	"github.com/fvena/typescript-library-template-pro/internal/cli"
	"github.com/fvena/typescript-library-template-pro/internal/logging"
	"github.com/fvena/typescript-library-template-pro/internal/runtime"
)

// New creates the validate sub-command for the CLI.
func New() *cobra.Command {
	validateCommand := &cobra.Command{
		Use:   "validate <answers-file>",
		Short: "Validate an answers file",
		Long: `Validate an answers file against the JSON schema and print the complete
answer record a setup run would use, defaults included.`,
		Example: `
# Validate an answers file and print the resolved answers
setup validate answers.yaml

# Print them as JSON
setup validate answers.yaml -o json
`,
		RunE: runValidate,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("you must specify exactly one answers file (e.g., 'setup validate answers.yaml'). Received %d argument(s): %v", len(args), args)
			}
			return nil
		},
	}

	validateCommand.Flags().StringP("output", "o", cli.OutputFormatYAML, fmt.Sprintf("Output format (%s)", cli.OutputFormats))

	return validateCommand
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger(cmd)

	rt := runtime.FromRuntime(cmd.Context())
	if rt == nil {
		return fmt.Errorf("runtime not initialized")
	}
	defer rt.Close()

	format, _ := cmd.Flags().GetString("output")
	if !slices.Contains(cli.OutputFormats, format) {
		return fmt.Errorf("unsupported output format %q (valid: %v)", format, cli.OutputFormats)
	}

	defaults, err := rt.Defaults(cmd.Context())
	if err != nil {
		return err
	}
	a, err := answers.Load(rt.Fs(), args[0], defaults, rt.Lookup())
	if err != nil {
		return fmt.Errorf("invalid answers file: %w", err)
	}
	logger.Info("Answers file validated successfully", "name", a.Name)

	var data []byte
	if format == cli.OutputFormatJSON {
		data, err = json.MarshalIndent(a, "", "  ")
	} else {
		data, err = yaml.Marshal(a)
	}
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	out, err := cli.Highlight(data, format, !rt.Settings().NoColor && !color.NoColor)
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.Out(), out)
	return nil
}

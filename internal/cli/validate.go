package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/potlib/potrec/internal/schema"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate record files against the document schema",
		Long: `Validate one or more potential record files against the
potential-LAMMPS document schema. All violations are reported; the exit
code is 1 if any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := schema.New()
			if err != nil {
				return WrapExitError(ExitCommandError, "load schema", err)
			}

			failures := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return WrapExitError(ExitCommandError, "read record file", err)
				}

				errs := v.ValidateJSON(data)
				if len(errs) == 0 {
					if opts.Verbose {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
					}
					continue
				}

				failures++
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, e)
				}
			}

			if failures > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d of %d files failed validation", failures, len(args)))
			}
			if opts.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "%d files validated\n", len(args))
			}
			return nil
		},
	}

	return cmd
}

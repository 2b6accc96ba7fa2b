package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/potlib/potrec/internal/store"
)

// NewExportCommand creates the export command.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var out string
	var potDir string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a record's LAMMPS input fragment",
		Long: `Render the LAMMPS input fragment (mass, pair_style, and pair_coeff
lines) for a stored record. Parameter-file tokens are joined with
--pot-dir when given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(opts.DBPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open database", err)
			}
			defer s.Close()

			rec, err := s.Get(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return NewExitError(ExitFailure, fmt.Sprintf("record %s not found", args[0]))
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "get record", err)
			}
			rec.PotDir = potDir

			info, err := rec.PairInfo()
			if err != nil {
				return WrapExitError(ExitFailure, "render pair info", err)
			}

			if out != "" {
				if err := os.WriteFile(out, []byte(info), 0o644); err != nil {
					return WrapExitError(ExitCommandError, "write fragment", err)
				}
				if opts.Verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "Fragment for %s written to %s\n", args[0], out)
				}
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), info)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the fragment to a file instead of stdout")
	cmd.Flags().StringVar(&potDir, "pot-dir", "", "directory holding the record's parameter files")

	return cmd
}

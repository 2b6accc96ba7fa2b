package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potlib/potrec/internal/store"
)

// NewGetCommand creates the get command.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	var pairInfo bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print a record from the database",
		Args:  cobra.ExactArgs(1),
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

			if pairInfo {
				info, err := rec.PairInfo()
				if err != nil {
					return WrapExitError(ExitFailure, "render pair info", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), info)
				return nil
			}

			if err := writeRecord(cmd.OutOrStdout(), rec, opts.Format); err != nil {
				return WrapExitError(ExitCommandError, "write record", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pairInfo, "pair-info", false, "print the LAMMPS input fragment instead of the document")

	return cmd
}

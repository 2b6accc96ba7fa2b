package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potlib/potrec/internal/store"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Remove records from the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(opts.DBPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open database", err)
			}
			defer s.Close()

			for _, id := range args {
				err := s.Delete(cmd.Context(), id)
				if errors.Is(err, store.ErrNotFound) {
					return NewExitError(ExitFailure, fmt.Sprintf("record %s not found", id))
				}
				if err != nil {
					return WrapExitError(ExitCommandError, "delete record", err)
				}
				if opts.Verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
				}
			}
			return nil
		},
	}

	return cmd
}

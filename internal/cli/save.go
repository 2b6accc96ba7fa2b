package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potlib/potrec/internal/store"
)

// NewSaveCommand creates the save command.
func NewSaveCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <file>...",
		Short: "Save record files to the database",
		Long: `Save one or more potential record files to the record database.
Records are keyed by id; saving an existing id replaces the record.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(opts.DBPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open database", err)
			}
			defer s.Close()

			for _, path := range args {
				rec, err := loadRecordFile(path)
				if err != nil {
					return err
				}
				if rec.ID == "" {
					return NewExitError(ExitFailure, fmt.Sprintf("record file %s has no id", path))
				}
				if err := s.Save(cmd.Context(), rec); err != nil {
					return WrapExitError(ExitCommandError, "save record", err)
				}
				if opts.Verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", rec.ID)
				}
			}

			if opts.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "%d records saved to %s\n", len(args), opts.DBPath)
			}
			return nil
		},
	}

	return cmd
}

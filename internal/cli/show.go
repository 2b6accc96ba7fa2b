package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/potlib/potrec/internal/record"
)

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	var pairInfo bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a record file",
		Long: `Print a potential record file as an indented document, or with
--pair-info as the LAMMPS input fragment it describes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := loadRecordFile(args[0])
			if err != nil {
				return err
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

// loadRecordFile reads and parses a record document file.
func loadRecordFile(path string) (*record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read record file", err)
	}
	rec, err := record.LoadJSON(data)
	if err != nil {
		return nil, WrapExitError(ExitFailure, fmt.Sprintf("parse record file %s", path), err)
	}
	return rec, nil
}

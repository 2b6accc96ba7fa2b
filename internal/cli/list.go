package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potlib/potrec/internal/store"
)

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var filter store.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records in the database",
		Long: `List record ids in the database. Filters combine with AND;
--element and --symbol require every listed model to be present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(opts.DBPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open database", err)
			}
			defer s.Close()

			ids, err := s.IDs(cmd.Context(), filter)
			if err != nil {
				return WrapExitError(ExitCommandError, "list records", err)
			}

			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			if opts.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "Found %d matching records\n", len(ids))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&filter.IDs, "id", nil, "record id (repeatable)")
	cmd.Flags().StringSliceVar(&filter.PotIDs, "potid", nil, "parent potential id (repeatable)")
	cmd.Flags().StringSliceVar(&filter.PairStyles, "pair-style", nil, "pair style (repeatable)")
	cmd.Flags().StringSliceVar(&filter.Statuses, "status", nil, "record status (repeatable)")
	cmd.Flags().StringSliceVar(&filter.Elements, "element", nil, "required element (repeatable)")
	cmd.Flags().StringSliceVar(&filter.Symbols, "symbol", nil, "required model symbol (repeatable)")
	cmd.Flags().StringVar(&filter.Keyword, "keyword", "", "substring to search record documents for")

	return cmd
}

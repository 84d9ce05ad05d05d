package cli

import (
	"github.com/spf13/cobra"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Params []string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Run an ad-hoc read statement",
		Long: `Execute an arbitrary parameterized read statement against the
database. Use ? placeholders in the statement and bind values with
repeated --param flags; never splice values into the statement text.

Example:
  dynstore query 'SELECT * FROM items WHERE value > ?' --param 10`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			params := make([]any, len(opts.Params))
			for i, p := range opts.Params {
				params[i] = p
			}
			rows, err := s.Query(cmd.Context(), args[0], params...)
			if err != nil {
				return WrapExitError(ExitFailure, "query", err)
			}
			return writeRecords(cmd.OutOrStdout(), rootOpts.Format, nil, rows)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Params, "param", nil, "positional statement parameter (repeatable)")

	return cmd
}

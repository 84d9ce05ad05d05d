package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/dynstore/internal/schema"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "get <key>",
		Short:         "Fetch one record by primary key",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			rec, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "get", err)
			}
			if rec == nil {
				return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("no record with key %q", args[0])}
			}
			return writeRecords(cmd.OutOrStdout(), rootOpts.Format,
				s.Descriptor().Names(), []schema.Record{rec})
		},
	}
	return cmd
}

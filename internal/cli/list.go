package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "Print every record in the table",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.GetAll(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "list", err)
			}
			return writeRecords(cmd.OutOrStdout(), rootOpts.Format,
				s.Descriptor().Names(), records)
		},
	}
	return cmd
}

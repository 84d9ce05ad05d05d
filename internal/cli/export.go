package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "export <file.csv>",
		Short:         "Export every record to a CSV file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ExportCSV(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitFailure, "export", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", args[0])
			return nil
		},
	}
	return cmd
}

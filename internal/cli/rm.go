package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/dynstore/internal/event"
)

// NewRmCommand creates the rm command.
func NewRmCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <key>",
		Short: "Delete one record by primary key",
		Long: `Delete the record with the given primary-key value. Deleting an
absent key is not an error; the outcome is reported either way.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			// Watch the outcome events so the command can report which
			// terminal state the delete reached.
			outcome := "not found"
			s.Events().On(event.RecordDeleted, func(event.Event) { outcome = "deleted" })
			s.Events().On(event.RecordNotFound, func(event.Event) { outcome = "not found" })

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitFailure, "delete", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], outcome)
			return nil
		},
	}
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <tabledef.yaml>",
		Short: "Create (or open) the store from a table definition",
		Long: `Create the database file and the managed table from a YAML table
definition. Creating an already-existing table is a no-op.

Example:
  dynstore --db inventory.db create items.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := *rootOpts
			opts.Def = args[0]
			s, err := openStore(&opts)
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "table %s ready in %s\n",
				s.Descriptor().Table(), s.Path())
			return nil
		},
	}
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTableCommand creates the table command group: catalog listing plus the
// destructive table-level operations.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Table-level operations",
	}
	cmd.AddCommand(newTablesCommand(rootOpts))
	cmd.AddCommand(newClearCommand(rootOpts))
	cmd.AddCommand(newDropCommand(rootOpts))
	cmd.AddCommand(newDestroyCommand(rootOpts))
	return cmd
}

func newTablesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ls",
		Short:         "List all user tables in the database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			tables, err := s.Tables(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "list tables", err)
			}
			for _, name := range tables {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clear",
		Short:         "Delete every record; keep the table",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ClearTable(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "clear table", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", s.Descriptor().Table())
			return nil
		},
	}
}

func newDropCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "drop",
		Short:         "Drop the managed table",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.DropTable(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "drop table", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dropped %s\n", s.Descriptor().Table())
			return nil
		},
	}
}

func newDestroyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "destroy",
		Short:         "Close the store and delete the database file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			if err := s.Destroy(); err != nil {
				return WrapExitError(ExitFailure, "destroy store", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", s.Path())
			return nil
		},
	}
}

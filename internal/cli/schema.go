package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/dynstore/internal/schema"
)

// SchemaOptions holds flags for the schema command.
type SchemaOptions struct {
	*RootOptions
	AddColumn string
	Type      string
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SchemaOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show the live table schema, or append a column",
		Long: `Print the engine's live catalog for the managed table: column names
and declared types, in catalog order. This reflects the physical
table, so it shows drift after an out-of-process schema change.

With --add-column, append a new column instead:
  dynstore schema --add-column origin --type TEXT`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if opts.AddColumn != "" {
				typ, err := schema.ParseType(opts.Type)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --type", err)
				}
				if err := s.AddColumn(cmd.Context(), opts.AddColumn, typ); err != nil {
					return WrapExitError(ExitFailure, "add column", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added column %s %s\n", opts.AddColumn, typ)
				return nil
			}

			cols, err := s.LiveSchema(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "read schema", err)
			}
			if rootOpts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cols)
			}
			for _, c := range cols {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Name, c.Type)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.AddColumn, "add-column", "", "append a column with this name")
	cmd.Flags().StringVar(&opts.Type, "type", "TEXT", "declared type for --add-column")

	return cmd
}

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	DB      string // database file path
	Def     string // table definition file path
	Format  string // "json" | "text"
	Verbose bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the dynstore CLI.
//
// Flag defaults resolve through viper: a dynstore.yaml config file in the
// working directory or $HOME, overridden by DYNSTORE_* environment
// variables, overridden by the flags themselves.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	v := newViper()

	cmd := &cobra.Command{
		Use:   "dynstore",
		Short: "Schema-driven record store over SQLite",
		Long: `dynstore manages a table whose shape you define at runtime:
declare columns and a primary key in a YAML table definition, then
upsert, query, and export records against it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Verbose {
				slog.SetLogLoggerLevel(slog.LevelWarn)
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			// Config/env fill in flags the caller did not set.
			if !cmd.Flags().Changed("db") && v.GetString("db") != "" {
				opts.DB = v.GetString("db")
			}
			if !cmd.Flags().Changed("def") && v.GetString("def") != "" {
				opts.Def = v.GetString("def")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", "dynstore.db", "database file path")
	cmd.PersistentFlags().StringVar(&opts.Def, "def", "", "table definition YAML file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewPutCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRmCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))

	return cmd
}

// newViper builds the configuration resolver: optional dynstore.yaml plus
// the DYNSTORE_ environment prefix (DYNSTORE_DB, DYNSTORE_DEF).
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("dynstore")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix("DYNSTORE")
	v.AutomaticEnv()
	// Config file is optional; env and flags still apply without one.
	_ = v.ReadInConfig()
	return v
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

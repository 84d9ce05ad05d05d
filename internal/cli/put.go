package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/dynstore/internal/schema"
)

// PutOptions holds flags for the put command.
type PutOptions struct {
	*RootOptions
	JSON  string
	Batch string
}

// NewPutCommand creates the put command.
func NewPutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "put",
		Short: "Insert or replace a record",
		Long: `Upsert a record given as JSON. A record without a primary-key value
gets a generated UUID. With --batch, upsert a JSON array of records
atomically: either every record lands or none does.

Examples:
  dynstore put --json '{"id":"R1","name":"widget","value":12.5}'
  dynstore put --batch records.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPut(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.JSON, "json", "", "record as a JSON object")
	cmd.Flags().StringVar(&opts.Batch, "batch", "", "file holding a JSON array of records")
	cmd.MarkFlagsMutuallyExclusive("json", "batch")

	return cmd
}

func runPut(opts *PutOptions, cmd *cobra.Command) error {
	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	pk := s.Descriptor().PrimaryKey()

	if opts.Batch != "" {
		data, err := os.ReadFile(opts.Batch)
		if err != nil {
			return WrapExitError(ExitCommandError, "read batch file", err)
		}
		var records []schema.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return WrapExitError(ExitCommandError, "invalid batch JSON", err)
		}
		for _, rec := range records {
			fillKey(rec, pk)
		}
		if err := s.UpsertBatch(ctx, records); err != nil {
			return WrapExitError(ExitFailure, "batch rolled back", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "upserted %d records\n", len(records))
		return nil
	}

	if opts.JSON == "" {
		return &ExitError{Code: ExitCommandError, Message: "pass --json or --batch"}
	}
	var rec schema.Record
	if err := json.Unmarshal([]byte(opts.JSON), &rec); err != nil {
		return WrapExitError(ExitCommandError, "invalid --json", err)
	}
	fillKey(rec, pk)
	if err := s.Upsert(ctx, rec); err != nil {
		return WrapExitError(ExitFailure, "upsert", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "upserted %v\n", rec[pk])
	return nil
}

// fillKey generates a UUID primary key for records that supply none.
func fillKey(rec schema.Record, pk string) {
	if v, ok := rec[pk]; !ok || v == nil {
		rec[pk] = uuid.NewString()
	}
}

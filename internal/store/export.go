package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/roach88/dynstore/internal/event"
)

// ExportCSV writes every row to a CSV file: a header in descriptor column
// order, then one line per record. NULL values render as empty fields.
func (s *Store) ExportCSV(ctx context.Context, path string) error {
	records, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return s.ioErr("exportCSV", "create export file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	names := s.desc.Names()
	if err := w.Write(names); err != nil {
		return s.ioErr("exportCSV", "write header", err)
	}
	for _, rec := range records {
		row := make([]string, len(names))
		for i, name := range names {
			row[i] = fieldText(rec[name])
		}
		if err := w.Write(row); err != nil {
			return s.ioErr("exportCSV", "write row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return s.ioErr("exportCSV", "flush export", err)
	}
	if err := f.Close(); err != nil {
		return s.ioErr("exportCSV", "close export file", err)
	}

	s.events.Emit(event.Event{Kind: event.Exported, Table: s.desc.Table(), Detail: path})
	return nil
}

// fieldText renders one scalar for CSV output.
func fieldText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

func (s *Store) ioErr(op, msg string, err error) error {
	se := &StoreError{Code: ErrCodeIO, Message: msg, Table: s.desc.Table(), Op: op, Err: err}
	s.events.Emit(event.Event{Kind: event.StoreError, Table: s.desc.Table(), Op: op, Err: se})
	return se
}

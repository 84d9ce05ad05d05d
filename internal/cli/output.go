package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/roach88/dynstore/internal/schema"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (validation rejected, key absent, etc.)
	ExitCommandError = 2 // Command error (bad flags, missing definition file)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// writeRecords renders records in the requested format: one JSON array, or
// key=value text lines, one record per block. Column order follows the
// preferred list when given; remaining columns come sorted after it.
func writeRecords(w io.Writer, format string, preferred []string, records []schema.Record) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(normalizeForJSON(records))
	}
	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, name := range orderedKeys(rec, preferred) {
			fmt.Fprintf(w, "%s=%s\n", name, fieldText(rec[name]))
		}
	}
	return nil
}

// normalizeForJSON rewrites []byte values as strings so blobs do not come
// out base64-encoded by encoding/json's default.
func normalizeForJSON(records []schema.Record) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, rec := range records {
		m := make(map[string]any, len(rec))
		for k, v := range rec {
			if b, ok := v.([]byte); ok {
				m[k] = string(b)
			} else {
				m[k] = v
			}
		}
		out[i] = m
	}
	return out
}

func orderedKeys(rec schema.Record, preferred []string) []string {
	var keys []string
	seen := make(map[string]bool, len(rec))
	for _, name := range preferred {
		if _, ok := rec[name]; ok {
			keys = append(keys, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range rec {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

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

package store

import (
	"errors"
	"fmt"
)

// StoreError represents a failure surfaced by a store operation.
//
// Validation failures are reported separately as schema.ValidationError;
// everything else the store can fail with carries one of the codes below.
type StoreError struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Table identifies the managed table.
	Table string

	// Op names the operation that failed, e.g. "upsert".
	Op string

	// Err is the underlying engine or I/O error, if any.
	Err error
}

// ErrorCode categorizes store failures.
type ErrorCode string

const (
	// ErrCodeSchemaInvalid indicates a malformed descriptor (primary key
	// missing from the declared columns, empty table name).
	ErrCodeSchemaInvalid ErrorCode = "SCHEMA_INVALID"

	// ErrCodeMissingPrimaryKey indicates a write whose record supplies no
	// value for the primary-key column.
	ErrCodeMissingPrimaryKey ErrorCode = "MISSING_PRIMARY_KEY"

	// ErrCodeEngine wraps any failure surfaced by the storage engine:
	// connectivity, statement syntax, constraint violation.
	ErrCodeEngine ErrorCode = "ENGINE_ERROR"

	// ErrCodeIO indicates a file-level failure: deleting the database
	// file, writing an export.
	ErrCodeIO ErrorCode = "IO_FAILURE"

	// ErrCodeTxState indicates a transaction call in the wrong state:
	// Begin while one is open, Commit/Rollback with none open.
	ErrCodeTxState ErrorCode = "TX_STATE"
)

// Error implements the error interface.
func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Op != "" {
		msg += fmt.Sprintf(" (op=%s, table=%s)", e.Op, e.Table)
	} else if e.Table != "" {
		msg += fmt.Sprintf(" (table=%s)", e.Table)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// codeIs reports whether err is a StoreError with the given code.
// Uses errors.As to handle wrapped errors.
func codeIs(err error, code ErrorCode) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// IsMissingPrimaryKey reports whether err is a missing-primary-key failure.
func IsMissingPrimaryKey(err error) bool { return codeIs(err, ErrCodeMissingPrimaryKey) }

// IsEngineError reports whether err is a wrapped storage-engine failure.
func IsEngineError(err error) bool { return codeIs(err, ErrCodeEngine) }

// IsSchemaInvalid reports whether err is a malformed-descriptor failure.
func IsSchemaInvalid(err error) bool { return codeIs(err, ErrCodeSchemaInvalid) }

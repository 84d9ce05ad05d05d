package schema

import (
	"errors"
	"fmt"
)

// ValidationError reports a single value whose runtime kind does not match
// its column's declared type family.
type ValidationError struct {
	Column string
	Want   Type
	Got    string // runtime kind of the offending value, e.g. "string"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("VALIDATION_FAILED: column %q expects %s, got %s", e.Column, e.Want, e.Got)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks every column the record supplies against its declared
// type family. Nil values and columns the record does not supply always
// pass. Columns in the record that the descriptor does not declare are
// ignored here; statement generation drops them.
//
// Every declared column is checked, not just the first mismatch: the
// returned error joins one ValidationError per offending column, in
// declaration order.
func Validate(d *Descriptor, rec Record) error {
	var errs []error
	for _, col := range d.columns {
		v, ok := rec[col.Name]
		if !ok || v == nil {
			continue
		}
		if !kindMatches(col.Type, v) {
			errs = append(errs, &ValidationError{
				Column: col.Name,
				Want:   col.Type,
				Got:    kindName(v),
			})
		}
	}
	return errors.Join(errs...)
}

// kindMatches reports whether a non-nil value is acceptable for a type
// family. Integer and Real both accept any numeric kind, mirroring the
// engine's numeric affinity.
func kindMatches(t Type, v any) bool {
	switch t {
	case Integer, Real:
		return isNumeric(v)
	case Text:
		_, ok := v.(string)
		return ok
	case Blob:
		_, ok := v.([]byte)
		return ok
	default:
		return false
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

func kindName(v any) string {
	switch v.(type) {
	case []byte:
		return "blob"
	default:
		return fmt.Sprintf("%T", v)
	}
}

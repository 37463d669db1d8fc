package nasr

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	summary, err := ctrl.Run(ctx, parsers, data)
//	if errors.Is(err, nasr.ErrParseAborted) {
//	    // Partial results were still published to data.
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFileMissing indicates a distribution file could not be opened.
	ErrFileMissing = errors.New("distribution file not found")

	// ErrSchemaInvalid indicates a layout-description file could not be
	// parsed. This aborts the whole record type's parse: with no usable
	// field table every positional decode downstream would misalign.
	ErrSchemaInvalid = errors.New("invalid layout description")

	// ErrTruncatedRecord indicates a data row is shorter than the field
	// table for its row shape requires.
	ErrTruncatedRecord = errors.New("truncated record")

	// ErrUnknownParent indicates a continuation row referenced a natural key
	// with no previously assembled primary record.
	ErrUnknownParent = errors.New("unknown parent record")

	// ErrParseAborted indicates the row-error approver chose to stop the
	// parse. Records assembled before the abort are still published.
	ErrParseAborted = errors.New("parse aborted")

	// ErrAlreadyPopulated indicates Populate was called twice for the same
	// record type on one Data graph.
	ErrAlreadyPopulated = errors.New("record type already populated")

	// ErrTypeMismatch indicates a typed field accessor was asked for a type
	// the transform pipeline did not produce for that field.
	ErrTypeMismatch = errors.New("field type mismatch")

	// ErrMissingValue indicates a required field decoded to absent.
	ErrMissingValue = errors.New("missing required value")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFileMissing):
		return ExitFileMissing
	case errors.Is(err, ErrSchemaInvalid):
		return ExitSchemaInvalid
	case errors.Is(err, ErrParseAborted):
		return ExitParseAborted
	}

	// Check for common filesystem error patterns from distribution readers
	errStr := err.Error()
	if strings.Contains(errStr, "no such file") ||
		strings.Contains(errStr, "file does not exist") {
		return ExitFileMissing
	}

	return ExitGeneralError
}

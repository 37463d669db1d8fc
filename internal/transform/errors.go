package transform

import (
	"fmt"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// RowError is a row-level decode failure: the first offending field's index,
// its raw value, and the reason. It wraps the underlying cause for
// errors.Is/As classification.
type RowError struct {
	Index int
	Raw   string
	Err   error
}

func (e *RowError) Error() string {
	raw := e.Raw
	if len(raw) > nasr.MaxRawValuePreviewLength {
		raw = raw[:nasr.MaxRawValuePreviewLength] + "..."
	}
	return fmt.Sprintf("field %d (raw %q): %v", e.Index, raw, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// UnknownValueError is an enumerated field value outside its domain and its
// synonym table.
type UnknownValueError struct {
	Domain string
	Raw    string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unrecognized %s value %q", e.Domain, e.Raw)
}

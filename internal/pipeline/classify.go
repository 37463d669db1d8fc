package pipeline

import (
	"context"
	"errors"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// Severity classifies a parse failure's blast radius.
type Severity int

const (
	// SeverityRow means one row failed; the pass may continue past it.
	SeverityRow Severity = iota

	// SeverityFatal means the whole record type cannot proceed.
	SeverityFatal
)

// Classify determines whether a ParseLine failure is recoverable. Anything
// that poisons every subsequent row of the type (an unusable layout
// description, a missing file, a cancelled context) is fatal; everything
// else is confined to its row.
func Classify(err error) Severity {
	switch {
	case errors.Is(err, nasr.ErrSchemaInvalid),
		errors.Is(err, nasr.ErrFileMissing),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return SeverityFatal
	default:
		return SeverityRow
	}
}

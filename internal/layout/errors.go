package layout

import (
	"fmt"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// SchemaError represents a fatal layout-description failure with context and
// a helpful hint. It matches nasr.ErrSchemaInvalid under errors.Is.
type SchemaError struct {
	File    string // layout file name, empty if unknown
	Line    int    // 1-based line number (0 if unknown)
	Message string // primary error message
	Hint    string // actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *SchemaError) Error() string {
	location := e.File
	if location == "" {
		location = "layout description"
	}
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", location, e.Line)
	}

	msg := fmt.Sprintf("layout error in %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Is reports that every SchemaError matches the nasr.ErrSchemaInvalid
// sentinel, so callers can classify without importing this package's type.
func (e *SchemaError) Is(target error) bool {
	return target == nasr.ErrSchemaInvalid
}

package layout

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// IdentifierKind distinguishes what a layout slot carries.
type IdentifierKind int

const (
	// IdentifierNone marks a slot that carries no data of interest
	// (declared as "NONE", "N/A", or left empty).
	IdentifierNone IdentifierKind = iota

	// IdentifierDLID marks the publisher's database-locator bookkeeping key.
	IdentifierDLID

	// IdentifierNumber marks a semantically numbered field; Number holds the
	// publisher's field number text, e.g. "E7".
	IdentifierNumber
)

// FieldIdentifier is the tagged identifier of one layout slot.
type FieldIdentifier struct {
	Kind   IdentifierKind
	Number string // set only for IdentifierNumber
}

// Field describes one positional field: its identifier and the half-open
// byte range [Start, End) it occupies within a row.
type Field struct {
	Identifier FieldIdentifier
	Start      int
	End        int
}

// Group is one ordered row shape: the field table for a primary record or
// one kind of continuation row. Ranges are non-overlapping and strictly
// increasing in position.
type Group struct {
	Fields []Field
}

// Schema is the ordered list of field groups for one record type, discovered
// once per distribution.
type Schema struct {
	Groups []Group
}

// fieldLineRegex recognizes a field directive:
// justification, type, length, 1-based location, optional identifier.
var fieldLineRegex = regexp.MustCompile(`^([LR])\s+(AN|N)\s+(\d+)\s+(\d+)(?:\s+([A-Za-z0-9/]+))?\s*$`)

// Parse reads a layout-description file and returns its schema. file names
// the source for diagnostics only.
//
// Any fatal condition (malformed character encoding, a field line with no
// preceding group marker, a field range that overlaps or moves backwards)
// aborts discovery for the whole record type.
func Parse(r io.Reader, file string) (*Schema, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	schema := &Schema{}
	started := false // have we seen the first group marker
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()

		if !utf8.ValidString(raw) {
			return nil, &SchemaError{
				File:    file,
				Line:    lineNum,
				Message: "malformed character encoding",
				Hint:    "Layout descriptions are plain ASCII text. Re-extract the distribution archive.",
			}
		}

		line := strings.TrimSpace(raw)
		if isGroupMarker(line) {
			schema.Groups = append(schema.Groups, Group{})
			started = true
			continue
		}

		match := fieldLineRegex.FindStringSubmatch(line)
		if match == nil {
			// Prose, headers, blank lines: not part of the grammar.
			continue
		}

		if !started {
			return nil, &SchemaError{
				File:    file,
				Line:    lineNum,
				Message: "field line before any group marker",
				Hint: "Every field directive must follow a '*' group marker line;\n" +
					"without one the field cannot be positioned in a row shape.",
			}
		}

		length, err := strconv.Atoi(match[3])
		if err != nil || length <= 0 {
			return nil, &SchemaError{
				File:    file,
				Line:    lineNum,
				Message: fmt.Sprintf("invalid field length %q", match[3]),
			}
		}
		location, err := strconv.Atoi(match[4])
		if err != nil || location <= 0 {
			return nil, &SchemaError{
				File:    file,
				Line:    lineNum,
				Message: fmt.Sprintf("invalid field location %q (locations are 1-based)", match[4]),
			}
		}

		field := Field{
			Identifier: parseIdentifier(match[5]),
			Start:      location - 1,
			End:        location - 1 + length,
		}

		group := &schema.Groups[len(schema.Groups)-1]
		if n := len(group.Fields); n > 0 && field.Start < group.Fields[n-1].End {
			return nil, &SchemaError{
				File:    file,
				Line:    lineNum,
				Message: fmt.Sprintf("field at location %d overlaps the previous field ending at %d", location, group.Fields[n-1].End),
				Hint:    "Field ranges within one group must be non-overlapping and strictly increasing.",
			}
		}
		group.Fields = append(group.Fields, field)
	}

	if err := scanner.Err(); err != nil {
		return nil, &SchemaError{
			File:    file,
			Message: fmt.Sprintf("reading layout description: %v", err),
		}
	}

	// A trailing marker with no fields before end of input declares nothing.
	if n := len(schema.Groups); n > 0 && len(schema.Groups[n-1].Fields) == 0 {
		schema.Groups = schema.Groups[:n-1]
	}

	return schema, nil
}

// isGroupMarker reports whether a trimmed line is one or more '*' characters
// alone.
func isGroupMarker(line string) bool {
	if line == "" {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '*' {
			return false
		}
	}
	return true
}

// parseIdentifier classifies the identifier word of a field directive.
func parseIdentifier(word string) FieldIdentifier {
	switch word {
	case "", "N/A", "NONE":
		return FieldIdentifier{Kind: IdentifierNone}
	case "DLID":
		return FieldIdentifier{Kind: IdentifierDLID}
	default:
		return FieldIdentifier{Kind: IdentifierNumber, Number: word}
	}
}

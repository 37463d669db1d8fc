package assemble

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/airnav-tools/nasr/internal/layout"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

// RecordParser assembles one record type from its distribution files. The
// pipeline controller drives it: BeginFile before each file, ParseLine per
// line, Finish exactly once at the end, even after an aborted pass, so that
// records assembled before the abort are still published.
type RecordParser interface {
	// RecordType identifies what this parser assembles.
	RecordType() nasr.RecordType

	// Files lists the distribution data files to stream, in order.
	Files() []string

	// BeginFile resets per-file state before the named file's first line.
	BeginFile(name string)

	// ParseLine decodes one raw line and folds it into the working set.
	ParseLine(ctx context.Context, line string) error

	// Finish publishes the assembled collection into the graph.
	Finish(data *nasr.Data) error

	// Records returns the number of distinct assembled records so far.
	Records() int

	// Replaced returns how many duplicate-key primary rows displaced an
	// earlier record.
	Replaced() int
}

// LayoutFileFor maps a data file to its companion layout description:
// "APT.txt" is described by "apt_rf.txt". CSV files have no companion;
// their shape comes from the header row.
func LayoutFileFor(dataFile string) string {
	base := strings.TrimSuffix(dataFile, path.Ext(dataFile))
	return strings.ToLower(base) + nasr.LayoutFileSuffix
}

// fixedWidth is the shared base for fixed-width parsers: it loads the layout
// schema on first use and hands out field groups. Schema discovery failures
// are fatal for the whole record type, which the lazy load surfaces on the
// first ParseLine instead of up front, keeping pipeline startup cheap.
type fixedWidth struct {
	dist       nasr.Distribution
	layoutFile string
	schema     *layout.Schema
}

func newFixedWidth(dist nasr.Distribution, dataFile string) fixedWidth {
	if dist == nil {
		panic("assemble: parser requires a distribution")
	}
	return fixedWidth{dist: dist, layoutFile: LayoutFileFor(dataFile)}
}

// group returns the i-th row shape, loading the schema if needed.
func (fw *fixedWidth) group(ctx context.Context, i int) (layout.Group, error) {
	if fw.schema == nil {
		if err := ctx.Err(); err != nil {
			return layout.Group{}, err
		}
		f, err := fw.dist.Open(fw.layoutFile)
		if err != nil {
			return layout.Group{}, err
		}
		schema, parseErr := layout.Parse(f, fw.layoutFile)
		if closeErr := f.Close(); parseErr == nil {
			parseErr = closeErr
		}
		if parseErr != nil {
			return layout.Group{}, parseErr
		}
		fw.schema = schema
	}
	if i >= len(fw.schema.Groups) {
		return layout.Group{}, &layout.SchemaError{
			File:    fw.layoutFile,
			Message: fmt.Sprintf("layout declares %d row shapes, record type needs at least %d", len(fw.schema.Groups), i+1),
			Hint:    "The layout description does not match this decoder's record catalog.",
		}
	}
	return fw.schema.Groups[i], nil
}

// tag extracts the row's leading type tag using the primary group's first
// field range, which every row shape of a tagged file shares.
func (fw *fixedWidth) tag(ctx context.Context, line string) (string, error) {
	prim, err := fw.group(ctx, 0)
	if err != nil {
		return "", err
	}
	if len(prim.Fields) == 0 {
		return "", &layout.SchemaError{
			File:    fw.layoutFile,
			Message: "primary row shape declares no fields",
		}
	}
	end := prim.Fields[0].End
	if len(line) < end {
		return "", fmt.Errorf("row is %d bytes but the type tag needs [0,%d): %w",
			len(line), end, nasr.ErrTruncatedRecord)
	}
	return strings.TrimSpace(line[:end]), nil
}

// splitCSV parses one CSV line into its fields. Quoted fields spanning
// multiple physical lines are not supported; the published CSV files do not
// use them.
func splitCSV(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	return fields, err
}

// csvColumns selects named columns out of header-described rows, in the
// order the transform pipeline expects them.
type csvColumns struct {
	names []string
	index []int
}

// bind maps the wanted column names against a header row. A wanted column
// missing from the header is a schema failure for the whole record type.
func (c *csvColumns) bind(file string, header []string) error {
	c.index = make([]int, len(c.names))
	for i, name := range c.names {
		c.index[i] = -1
		for j, col := range header {
			if strings.EqualFold(strings.TrimSpace(col), name) {
				c.index[i] = j
				break
			}
		}
		if c.index[i] < 0 {
			return fmt.Errorf("%s: header has no column %q: %w", file, name, nasr.ErrSchemaInvalid)
		}
	}
	return nil
}

// bound reports whether bind has run for the current file.
func (c *csvColumns) bound() bool { return c.index != nil }

// reset clears the binding at a file boundary.
func (c *csvColumns) reset() { c.index = nil }

// selectFrom picks the bound columns out of one data row.
func (c *csvColumns) selectFrom(fields []string) ([]string, error) {
	raw := make([]string, len(c.index))
	for i, j := range c.index {
		if j >= len(fields) {
			return nil, fmt.Errorf("row has %d columns but %q is column %d: %w",
				len(fields), c.names[i], j+1, nasr.ErrTruncatedRecord)
		}
		raw[i] = fields[j]
	}
	return raw, nil
}

// unknownParent reports a continuation row referencing a key no primary row
// has created.
func unknownParent(rt nasr.RecordType, key Key) error {
	return fmt.Errorf("%s continuation row references %q before any primary row created it: %w",
		rt, string(key), nasr.ErrUnknownParent)
}

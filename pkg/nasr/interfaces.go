package nasr

import (
	"context"
	"io"
)

// Distribution provides access to the files of one dated distribution
// snapshot: record-type data files, their companion layout descriptions, and
// CSV companions. Downloading and archive extraction happen before a
// Distribution exists; this interface only reads.
//
// Implementations must be safe for concurrent use: multiple record-type
// pipelines open their files independently.
type Distribution interface {
	// Open returns a reader over the named distribution file.
	// The caller owns the reader and must close it.
	Open(name string) (io.ReadCloser, error)

	// Size returns the size in bytes of the named file, for progress
	// reporting. Implementations that cannot determine a size return 0.
	Size(name string) (int64, error)
}

// LineSource yields the raw lines of one distribution file, one at a time.
// Consumption is cooperative: the pipeline requests the next line only after
// finishing work on the current one, so no line is buffered ahead of
// processing.
type LineSource interface {
	// Next returns the next raw line with line endings stripped.
	// It returns io.EOF when the source is exhausted.
	Next(ctx context.Context) (string, error)

	// BytesRead returns the number of source bytes consumed so far.
	BytesRead() int64
}

// RowApprover decides whether a parse pass continues after a row-level
// decode failure. It is the caller's severity threshold: a forced approver
// makes the decision unconditionally, an interactive one asks the user.
type RowApprover interface {
	// ContinueAfter reports whether parsing should continue past rowErr.
	// Returning false aborts the record type's pass; records assembled
	// before the abort are still published.
	ContinueAfter(ctx context.Context, rowErr error) (bool, error)
}

// Progress is invoked by the pipeline after each processed row.
// totalBytes is 0 when the distribution cannot size the file.
type Progress func(rt RecordType, rows int64, bytesRead int64, totalBytes int64)

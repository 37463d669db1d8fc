package pipeline

import (
	"time"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// FileChecksum identifies one distribution file's content.
type FileChecksum struct {
	File       string
	Raw        string
	Normalized string
}

// TypeSummary reports one record type's pass.
type TypeSummary struct {
	Type nasr.RecordType

	// Rows is the number of source lines consumed across the type's files.
	Rows int64

	// Records is the number of distinct records published.
	Records int

	// Replaced counts duplicate-key primary rows that displaced an earlier
	// record.
	Replaced int

	// Skipped counts row failures the approver decided to continue past.
	Skipped int64

	// Aborted reports that the pass stopped before consuming all input.
	// Records assembled before the stop were still published.
	Aborted bool

	// Err is the failure that stopped the pass, nil on a clean run.
	Err error

	// Checksums identify the input files the pass consumed.
	Checksums []FileChecksum
}

// Summary reports one parse run over a distribution.
type Summary struct {
	// RunID uniquely identifies this run in logs and downstream records.
	RunID string

	Cycle nasr.Cycle

	Started  time.Time
	Finished time.Time

	// Types holds one entry per requested record type, in request order.
	Types []TypeSummary
}

// Failed reports whether any record type's pass stopped on an error.
func (s *Summary) Failed() bool {
	for _, ts := range s.Types {
		if ts.Err != nil {
			return true
		}
	}
	return false
}

// TotalRecords sums published records across all types.
func (s *Summary) TotalRecords() int {
	total := 0
	for _, ts := range s.Types {
		total += ts.Records
	}
	return total
}

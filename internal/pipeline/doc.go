// Package pipeline drives parse passes over a distribution.
//
// One record type is one pass: its parser's files are streamed line by line,
// each line is parsed cooperatively (the next line is not read until the
// current one is done), and the assembled collection is published into the
// graph exactly once at the end of the pass, even when the pass aborts
// early, so callers can still work with everything decoded before the stop.
//
// Failures split two ways. Schema-level conditions (missing file, unusable
// layout description, a cancelled context) abort the record type outright.
// Row-level conditions are put to the RowApprover, which either skips the
// row or aborts the pass.
//
// Record types are independent: Run parses them concurrently and their
// failures do not interfere with each other.
package pipeline

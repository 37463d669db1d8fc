// Package transform converts one row's raw positional values into typed
// domain values according to a declared specification.
//
// A record-type parser declares one []Spec per row shape. Apply runs the
// pipeline over the raw values produced by fixed-width splitting or CSV
// column selection (the two input formats are identical from here on) and
// yields a Row of typed results, or fails at the first offending field with
// the field index, the raw value, and the reason.
//
// Null handling is distinct from error handling. Each Spec carries a
// NullPolicy that runs before its decoder: a raw value that qualifies as
// absent under the policy decodes to an absent result and is never an error,
// while any other undecodable value fails the whole row. Absent is a first-
// class outcome the assembler asks for explicitly via the Opt accessors.
//
// Accessors on Row are statically typed per field and fail loudly: asking
// for field 4 as an unsigned integer when the transform produced text is a
// checked nasr.ErrTypeMismatch, never a silent coercion.
package transform

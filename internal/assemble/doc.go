// Package assemble turns decoded rows into complete domain records.
//
// Each record type has a parser that knows its distribution files, its row
// shapes and its transform pipelines. Fixed-width parsers discover their
// field tables lazily from the companion layout-description file on first
// use; CSV parsers map columns by header name on each file's first row.
//
// Primary rows create records in a per-type registry keyed by the natural
// key; continuation rows look their parent up and append to it. A duplicate
// primary key replaces the earlier record (later rows win within one
// distribution snapshot), counted but not an error. A continuation row whose
// parent does not exist is a hard row failure.
package assemble

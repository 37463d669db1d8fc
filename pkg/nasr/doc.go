// Package nasr defines the public contract of the NASR distribution decoder:
// the parsed record types, the cross-reference graph that owns them, the
// configuration and error surface, and the interfaces the decoding engine
// consumes (distribution file access, line sources, logging, row-error
// approval).
//
// The engine itself lives under internal/: layout-description parsing in
// internal/layout, the field transform pipeline in internal/transform, record
// assembly in internal/assemble, and the streaming controller in
// internal/pipeline. Callers drive a parse through internal/pipeline and
// receive a *Data graph; everything they touch afterwards is in this package.
//
// Records are value types that never hold direct references to each other.
// Relationships are expressed as natural-key strings (an ARTCC ident, an
// airport site number) and resolved at access time against the owning Data
// graph. A lookup against a record type that has not been populated yet
// returns nil rather than failing, so resolution is independent of the order
// in which record types finish parsing.
package nasr

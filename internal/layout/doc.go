// Package layout parses the companion layout-description files that
// accompany each fixed-width record type in a distribution.
//
// A layout file is a small domain-specific grammar, one directive per line:
//
//	*********************************
//	L AN 0003 00001  NONE
//	L AN 0011 00004  DLID
//	R  N 0005 00015  E7
//	*********************************
//	L AN 0003 00001  NONE
//	...
//
// A line of one or more '*' characters starts a new field group (one row
// shape: primary record, remark continuation, frequency continuation, ...).
// A field line declares justification (L/R), type (N numeric / AN
// alphanumeric), length, 1-based location, and an identifier which is an
// alphanumeric word, the literal "N/A", "NONE", "DLID", or empty. Every
// other line (prose, headers, blank lines) is ignored.
//
// Field layouts vary by distribution snapshot and record type, so schemas
// are discovered at run time: parsed once per type per distribution, held
// for the lifetime of that type's parse pass, and discarded after.
//
// Failure here is fatal for the whole record type: a partial schema is not
// usable because every downstream positional decode would misalign.
package layout

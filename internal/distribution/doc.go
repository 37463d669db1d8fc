// Package distribution provides access to the files of one NASR
// distribution cycle.
//
// A distribution is a flat set of named data and layout files. The package
// defines two providers of the nasr.Distribution contract:
//   - Directory: production implementation over an extracted distribution
//     directory on disk
//   - Memory: in-memory implementation for testing
//
// It also provides the line source used by the streaming pipeline: a
// cooperative, pull-based reader that normalizes CRLF line endings and
// tracks how many source bytes have been consumed.
package distribution

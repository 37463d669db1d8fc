// Package checksum provides file content hashing with normalization support.
//
// The package implements a dual checksum strategy for distribution files:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after neutralizing line-ending and trailing
//     whitespace differences (identifies the same cycle served by different
//     mirrors or transfer modes)
//
// # Normalization Strategy
//
//  1. Convert CRLF line endings to LF
//  2. Drop trailing whitespace on each line
//  3. Drop trailing blank lines
//
// Two files with equal normalized checksums carry the same rows even when
// their raw bytes differ, which is what matters for decode reproducibility.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum

package nasr

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Parse completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration or parameters
	ExitFileMissing   = 11 // Distribution file not found
	ExitParseAborted  = 12 // Row-error approver aborted the parse
	ExitSchemaInvalid = 13 // Layout-description file could not be parsed
)

const (
	// MaxRawValuePreviewLength is the maximum number of characters of a raw
	// field value shown in error messages. Keeps diagnostics readable when a
	// misaligned split captures a large slice of the row.
	MaxRawValuePreviewLength = 80

	// LayoutFileSuffix is the naming convention for companion
	// layout-description files within a distribution: the record-type file
	// "APT.txt" is described by "apt_rf.txt".
	LayoutFileSuffix = "_rf.txt"
)

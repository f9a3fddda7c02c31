package scrub

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Scrub completed successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid configuration or header line count
	ExitInputNotFound      = 11 // Input file does not exist
	ExitInputReadFailure   = 12 // Input file could not be read
	ExitOutputWriteFailure = 13 // Output file could not be written
	ExitUnterminated       = 14 // Unterminated comment or literal in input
)

const (
	// DefaultHeaderLines is the number of leading lines preserved when no
	// --header-lines flag, environment variable or config value is given.
	DefaultHeaderLines = 0

	// MaxHeaderLines caps automatic header detection.
	MaxHeaderLines = 50

	// MaxHeaderPreviewLines is the number of lines shown when asking the
	// user to confirm a detected header.
	MaxHeaderPreviewLines = 10

	// DefaultWorkers is the batch worker count used when none is configured.
	DefaultWorkers = 4

	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = ".scrub.yaml"
)

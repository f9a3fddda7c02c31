package scrub

import "context"

// HeaderDetection is the outcome of scanning the top of a file for a
// license or documentation header.
type HeaderDetection struct {
	// Lines is the number of leading lines that look like a header.
	// Zero means no header was found.
	Lines int

	// Preview is the text shown to the user when confirming the header.
	Preview string
}

// Approver decides whether a detected header is kept verbatim.
//
// Implementations:
//   - ForcedApprover: accepts every detection (--yes)
//   - InteractiveApprover: asks the user in the terminal
//   - DecliningApprover: rejects every detection (non-interactive runs)
type Approver interface {
	// ApproveHeader asks whether the detected header should be preserved.
	//
	// Returns:
	//   - bool: true if the header should be kept
	//   - error: Any error that occurred while asking
	ApproveHeader(ctx context.Context, detection HeaderDetection) (bool, error)
}

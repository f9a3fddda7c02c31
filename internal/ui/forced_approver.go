package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval. It keeps every detected header without asking, used when the
// --yes flag is provided.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
}

// NewForcedApprover creates a new ForcedApprover reporting to out.
func NewForcedApprover(out io.Writer, verbose bool) *ForcedApprover {
	return &ForcedApprover{verbose: verbose, output: out}
}

// ApproveHeader accepts the detection, reporting it when verbose.
func (a *ForcedApprover) ApproveHeader(ctx context.Context, detection scrub.HeaderDetection) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.verbose {
		fmt.Fprintf(a.output, "[VERBOSE] Keeping %d detected header line(s) (--yes)\n", detection.Lines)
	}
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ scrub.Approver = (*ForcedApprover)(nil)

package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// DecliningApprover implements the Approver interface for runs that cannot
// prompt. It rejects every detection so comment headers are scrubbed like
// any other comment unless the user passes --yes.
type DecliningApprover struct {
	output io.Writer
}

// NewDecliningApprover creates a new DecliningApprover reporting to out.
func NewDecliningApprover(out io.Writer) *DecliningApprover {
	return &DecliningApprover{output: out}
}

// ApproveHeader rejects the detection and tells the user how to keep it.
func (a *DecliningApprover) ApproveHeader(ctx context.Context, detection scrub.HeaderDetection) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(a.output,
		"Detected a %d-line header but cannot prompt in non-interactive mode; it will be scrubbed. Pass --yes to keep it.\n",
		detection.Lines)
	return false, nil
}

// Verify DecliningApprover implements the Approver interface at compile time
var _ scrub.Approver = (*DecliningApprover)(nil)

package ui

import (
	"io"

	"github.com/vvka-141/scrub/internal/tui"
	"github.com/vvka-141/scrub/pkg/scrub"
)

// NewApprover picks the header approver for the current run: --yes forces
// approval, an interactive terminal prompts, anything else declines.
// Messages and prompts are written to out.
func NewApprover(out io.Writer, yes, verbose bool) scrub.Approver {
	return newApprover(out, yes, verbose, tui.IsInteractive())
}

func newApprover(out io.Writer, yes, verbose, interactive bool) scrub.Approver {
	switch {
	case yes:
		return NewForcedApprover(out, verbose)
	case interactive:
		return NewInteractiveApprover(out, verbose)
	default:
		return NewDecliningApprover(out)
	}
}

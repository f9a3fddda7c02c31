package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/scrub/internal/tui"
	"github.com/vvka-141/scrub/internal/tui/components"
	"github.com/vvka-141/scrub/pkg/scrub"
)

// runFunc runs a bubbletea model to completion and returns its final state.
type runFunc func(ctx context.Context, model tea.Model, input io.Reader, output io.Writer) (tea.Model, error)

// InteractiveApprover implements the Approver interface with a terminal
// yes/no prompt showing the detected header.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
	run     runFunc
}

// NewInteractiveApprover creates a new InteractiveApprover reading from stdin
// and rendering on out.
func NewInteractiveApprover(out io.Writer, verbose bool) *InteractiveApprover {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  out,
		run:     runProgram,
	}
}

// ApproveHeader shows the header preview and waits for an answer.
// A dismissed prompt counts as "no".
func (a *InteractiveApprover) ApproveHeader(ctx context.Context, detection scrub.HeaderDetection) (bool, error) {
	title := fmt.Sprintf("Keep the first %d line(s) as a header?", detection.Lines)
	prompt := components.NewConfirm(title, detection.Preview, false)

	final, err := a.run(ctx, prompt, a.input, a.output)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		fmt.Fprintln(a.output, tui.ErrorStyle.Render(tui.SymbolCross+" Header prompt failed"))
		return false, fmt.Errorf("header prompt failed: %w", err)
	}

	answer, ok := final.(components.Confirm)
	if !ok {
		return false, errors.New("header prompt returned an unexpected model")
	}

	if answer.Confirmed() {
		fmt.Fprintln(a.output, tui.SuccessStyle.Render(tui.SymbolCheck+" Keeping header"))
		return true, nil
	}
	if a.verbose {
		fmt.Fprintln(a.output, tui.WarningStyle.Render(tui.SymbolCross+" Header will be scrubbed"))
	}
	return false, nil
}

func runProgram(ctx context.Context, model tea.Model, input io.Reader, output io.Writer) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	)
	return p.Run()
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ scrub.Approver = (*InteractiveApprover)(nil)

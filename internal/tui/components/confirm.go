package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/scrub/internal/tui"
)

// Confirm is a yes/no prompt with an optional framed preview.
type Confirm struct {
	title     string
	preview   string
	choice    bool
	width     int
	showHelp  bool
	keyMap    tui.KeyMap
	submitted bool
	cancelled bool
}

// NewConfirm creates a new confirm component. defaultYes selects the
// initially highlighted answer.
func NewConfirm(title, preview string, defaultYes bool) Confirm {
	return Confirm{
		title:    title,
		preview:  preview,
		choice:   defaultYes,
		width:    72,
		showHelp: true,
		keyMap:   tui.DefaultKeyMap(),
	}
}

// WithShowHelp enables or disables the help text.
func (c Confirm) WithShowHelp(show bool) Confirm {
	c.showHelp = show
	return c
}

// Init implements tea.Model.
func (c Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keyMap.Yes):
			c.choice = true
			c.submitted = true
			return c, tea.Quit
		case key.Matches(msg, c.keyMap.No):
			c.choice = false
			c.submitted = true
			return c, tea.Quit
		case key.Matches(msg, c.keyMap.Toggle):
			c.choice = !c.choice
		case key.Matches(msg, c.keyMap.Select):
			c.submitted = true
			return c, tea.Quit
		case key.Matches(msg, c.keyMap.Quit):
			c.cancelled = true
			return c, tea.Quit
		}
	case tea.WindowSizeMsg:
		c.width = msg.Width
	}
	return c, nil
}

// View implements tea.Model.
func (c Confirm) View() string {
	if c.submitted || c.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(c.title))
	b.WriteString("\n")

	if c.preview != "" {
		b.WriteString(tui.PreviewStyle.MaxWidth(c.width).Render(c.preview))
		b.WriteString("\n\n")
	}

	b.WriteString(c.option("Yes", c.choice))
	b.WriteString("   ")
	b.WriteString(c.option("No", !c.choice))
	b.WriteString("\n")

	if c.showHelp {
		b.WriteString(tui.HelpStyle.Render(c.keyMap.HelpText()))
	}

	return b.String()
}

func (c Confirm) option(label string, active bool) string {
	if active {
		return tui.SelectedStyle.Render(tui.SymbolSelected + " " + label)
	}
	return tui.UnselectedStyle.Render(tui.SymbolUnselected + " " + label)
}

// Confirmed returns true if the user submitted Yes.
func (c Confirm) Confirmed() bool {
	return c.submitted && c.choice
}

// Cancelled returns true if the user dismissed the prompt without answering.
func (c Confirm) Cancelled() bool {
	return c.cancelled
}

// Submitted returns true if the user answered.
func (c Confirm) Submitted() bool {
	return c.submitted
}

// Package input provides the path input component for the prompt.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/keyscan/internal/adapters/driving/tui/styles"
)

// PathInput wraps a bubbles textinput for entering a file path.
type PathInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewPathInput creates a focused path input shown after label.
func NewPathInput(s *styles.Styles, label string) *PathInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/resume.pdf"
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60

	return &PathInput{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// Init initialises the input.
func (p *PathInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (p *PathInput) Update(msg tea.Msg) (*PathInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the label followed by the input.
func (p *PathInput) View() string {
	return p.styles.Prompt.Render(p.label) + p.textinput.View()
}

// Value returns the current input value.
func (p *PathInput) Value() string {
	return p.textinput.Value()
}

// SetValue sets the input value.
func (p *PathInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// SetWidth fits the input and its label into width columns.
func (p *PathInput) SetWidth(width int) {
	// Account for the label
	inputWidth := width - len(p.label)
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Reset clears the input.
func (p *PathInput) Reset() {
	p.textinput.Reset()
}

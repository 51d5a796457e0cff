// Package tui provides the interactive path prompt and renders scan reports
// for the terminal.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/custodia-labs/keyscan/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/keyscan/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/keyscan/internal/adapters/driving/tui/styles"
)

// PathPrompt is the question asked before an interactive scan.
const PathPrompt = "Enter the file path (txt, docx, or pdf): "

// PromptModel asks for a single file path.
// It implements tea.Model for use with Bubbletea.
type PromptModel struct {
	input     *input.PathInput
	keys      *keymap.KeyMap
	help      help.Model
	styles    *styles.Styles
	submitted bool
	cancelled bool
}

// Ensure PromptModel implements tea.Model.
var _ tea.Model = (*PromptModel)(nil)

// NewPromptModel creates a focused path prompt.
func NewPromptModel(s *styles.Styles) *PromptModel {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &PromptModel{
		input:  input.NewPathInput(s, PathPrompt),
		keys:   keymap.DefaultKeyMap(),
		help:   help.New(),
		styles: s,
	}
}

// Init starts the cursor blinking.
func (m *PromptModel) Init() tea.Cmd {
	return m.input.Init()
}

// Update handles key presses.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt. Once finished it renders nothing so the
// report starts on a clean line.
func (m *PromptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return m.input.View() + "\n" +
		m.styles.Help.Render(m.help.View(m.keys)) + "\n"
}

// Value returns the entered path with surrounding whitespace removed.
func (m *PromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// SetValue sets the input value.
func (m *PromptModel) SetValue(value string) {
	m.input.SetValue(value)
}

// Submitted reports whether the user pressed enter. A prompt that ended
// any other way has no path to scan.
func (m *PromptModel) Submitted() bool {
	return m.submitted
}

// Prompter reads a file path from the user.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	styles *styles.Styles
}

// NewPrompter creates a prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer, s *styles.Styles) *Prompter {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Prompter{in: in, out: out, styles: s}
}

// Prompt asks for a path. A terminal gets an editable text input;
// anything else is read as a single line.
func (p *Prompter) Prompt(ctx context.Context) (string, error) {
	if isTerminal(p.in) {
		return p.promptInteractive(ctx)
	}
	return p.promptLine()
}

func (p *Prompter) promptInteractive(ctx context.Context) (string, error) {
	model := NewPromptModel(p.styles)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrPromptCancelled
		}
		return "", fmt.Errorf("running prompt: %w", err)
	}

	m, ok := final.(*PromptModel)
	if !ok || !m.Submitted() {
		return "", ErrPromptCancelled
	}
	return m.Value(), nil
}

func (p *Prompter) promptLine() (string, error) {
	if _, err := fmt.Fprint(p.out, PathPrompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading path: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrPromptCancelled
	}
	return strings.TrimSpace(line), nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmayle/carry/internal/shared"
)

// Prompter gathers user decisions. The terminal implementation runs
// bubbletea programs; tests substitute a scripted one.
type Prompter interface {
	// Ask poses a free-text question and returns the entered line.
	Ask(question, placeholder string) (string, error)
	// Confirm poses a yes/no question.
	Confirm(question string) (bool, error)
}

// TerminalPrompter implements [Prompter] on the controlling terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) Ask(question, placeholder string) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := textModel{question: question, input: ti}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	result := final.(textModel)
	if result.aborted {
		return "", shared.ErrAborted
	}
	return result.input.Value(), nil
}

func (TerminalPrompter) Confirm(question string) (bool, error) {
	m := confirmModel{question: question}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	result := final.(confirmModel)
	if result.aborted {
		return false, shared.ErrAborted
	}
	return result.answer, nil
}

// textModel is a single-question free-text prompt.
type textModel struct {
	question string
	input    textinput.Model
	done     bool
	aborted  bool
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s\n",
		styles.title.Render(m.question),
		m.input.View(),
		styles.help.Render("enter to accept · esc to abort"))
}

// confirmModel is a single y/n prompt.
type confirmModel struct {
	question string
	answer   bool
	done     bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return fmt.Sprintf("%s %s\n",
		styles.title.Render(m.question),
		styles.help.Render("[y/n]"))
}

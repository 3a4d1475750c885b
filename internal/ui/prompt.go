package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brisa-ai/brisa/internal/config"
)

var (
	promptStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	promptPlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// readInput reads one line of free text from the user. On a TTY (unless the
// config says plain) it uses an inline styled prompt; otherwise it falls back
// to a buffered read so pipes and scripts keep working.
func readInput(mode string) (string, error) {
	switch mode {
	case config.PromptPlain:
		return readInputPlain()
	case config.PromptFancy:
		return readInputFancy()
	default:
		if isTerminal() {
			return readInputFancy()
		}
		return readInputPlain()
	}
}

func readInputPlain() (string, error) {
	fmt.Print("Your input: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func readInputFancy() (string, error) {
	p := tea.NewProgram(newPromptModel())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok || m.cancelled {
		return "", nil
	}
	return strings.TrimSpace(m.input.Value()), nil
}

// promptModel is a minimal one-shot text input: Enter submits, Esc or
// Ctrl+C cancels.
type promptModel struct {
	input     textinput.Model
	done      bool
	cancelled bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Placeholder = "weather in Paris tomorrow..."
	ti.Prompt = "› "
	ti.PromptStyle = promptStyle
	ti.PlaceholderStyle = promptPlaceholderStyle
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()
	return promptModel{input: ti}
}

// Init initializes the model.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt. After submit or cancel it renders nothing, so the
// input line disappears before the turn output starts.
func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.input.View() + "\n"
}

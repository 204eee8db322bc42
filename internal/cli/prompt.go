package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

// passwordModel is a single masked input line.
type passwordModel struct {
	input     textinput.Model
	submitted bool
}

func newPasswordModel(label string) passwordModel {
	input := textinput.New()
	input.Prompt = label
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passwordModel{input: input}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	return m.input.View() + "\n"
}

// readPassword asks for a password. A terminal gets a masked input; any
// other input stream is read line by line so passwords can be piped in.
func (a *App) readPassword(ctx context.Context, label string) (string, error) {
	if f, ok := a.in.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return promptPassword(ctx, label, f, a.errOut)
	}
	return a.prompt(label)
}

// promptPassword runs the masked input on in and out until enter, esc or
// ctrl+c.
func promptPassword(ctx context.Context, label string, in io.Reader, out io.Writer) (string, error) {
	final, err := tea.NewProgram(
		newPasswordModel(label),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	).Run()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	m, ok := final.(passwordModel)
	if !ok || !m.submitted || m.input.Value() == "" {
		return "", errNoPassword
	}
	return m.input.Value(), nil
}

// prompt reads one line from the input stream.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.errOut, label)

	line, err := bufio.NewReader(a.in).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("read password: %w", errors.Join(errNoPassword, err))
		}
		return "", errNoPassword
	}
	return line, nil
}

package gate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/marquee/internal/tui"
)

// ErrPromptCancelled is returned when the prompt is dismissed with Esc or Ctrl+C.
var ErrPromptCancelled = errors.New("prompt cancelled")

type promptModel struct {
	input     textinput.Model
	done      bool
	cancelled bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Placeholder = "Text to scroll"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Width = 48
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("marquee"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(tui.CountStyle.Render(fmt.Sprintf("%d characters", len(Filter(m.input.Value())))))
	b.WriteString("  ")
	b.WriteString(tui.HelpStyle.Render("enter: start • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Prompt reads one line with an interactive text field on the given
// terminal streams and returns it filtered.
func Prompt(in io.Reader, out io.Writer) ([]rune, error) {
	p := tea.NewProgram(newPromptModel(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	m := final.(promptModel)
	if m.cancelled {
		return nil, ErrPromptCancelled
	}
	return Filter(m.input.Value()), nil
}

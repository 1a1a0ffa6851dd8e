package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flapterm/internal/registry"
)

// NamedGame is implemented by games that attribute runs to a player.
// The platform fills the name before the first tick: locally through
// the intro screen or the --name flag, over SSH from the login user.
type NamedGame interface {
	registry.Game
	SetPlayerName(name string)
	PlayerName() string
}

// maxNameLen caps player names in the UI and the database.
const maxNameLen = 16

// SanitizeName reduces raw input to a safe player name. Keeps letters,
// digits, '-', '_' and '.', trims surrounding space, and cuts the
// result to maxNameLen runes. Returns "" when nothing survives.
func SanitizeName(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
		if b.Len() >= maxNameLen {
			break
		}
	}
	return b.String()
}

var (
	introTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3"))

	introPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7"))

	introErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	introHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// IntroModel is the Bubble Tea model for the pre-game name screen.
// The run cannot start until a non-empty name is entered; Esc backs
// out without starting.
type IntroModel struct {
	text      textinput.Model
	title     string
	width     int
	height    int
	name      string
	errMsg    string
	done      bool
	cancelled bool
}

// NewIntroModel creates the name screen for the given game title.
// initial pre-fills the input, so a returning player confirms with
// a single Enter.
func NewIntroModel(title, initial string, width, height int) IntroModel {
	ti := textinput.New()
	ti.Placeholder = "player"
	ti.CharLimit = maxNameLen
	ti.Width = 24
	ti.Prompt = "> "
	if initial != "" {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	ti.Focus()

	return IntroModel{
		text:   ti,
		title:  title,
		width:  width,
		height: height,
	}
}

// Init starts the input cursor blink.
func (m IntroModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the name screen.
func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			name := SanitizeName(m.text.Value())
			if name == "" {
				m.errMsg = "enter a name to start"
				return m, nil
			}
			m.name = name
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

// View renders the name screen centered in the terminal.
func (m IntroModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(introTitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(introPromptStyle.Render("Who's flying?"))
	b.WriteString("\n\n")
	b.WriteString(m.text.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(introErrorStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(introHelpStyle.Render("enter: start  esc: back"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Name returns the accepted player name, empty if cancelled.
func (m IntroModel) Name() string {
	return m.name
}

// IsCancelled returns true if the user backed out of the screen.
func (m IntroModel) IsCancelled() bool {
	return m.cancelled
}

// RunIntro shows the name screen and returns the entered name.
// cancelled is true when the user backed out instead of starting.
func RunIntro(title, initial string, width, height int) (name string, cancelled bool, err error) {
	model := NewIntroModel(title, initial, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", true, err
	}

	m, ok := finalModel.(IntroModel)
	if !ok {
		return "", true, nil
	}

	return m.Name(), m.IsCancelled(), nil
}

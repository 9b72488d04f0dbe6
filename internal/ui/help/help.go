package help

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/adibhanna/hiitsessions/internal/ui/theme"
)

type Model struct {
	width  int
	height int
	quit   bool
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit):
			m.quit = true
			return m, nil
		}
	}

	return m, nil
}

func (m Model) View() string {
	// Use reasonable defaults if dimensions aren't set
	width := m.width
	height := m.height
	if width == 0 {
		width = 100
	}
	if height == 0 {
		height = 30
	}

	containerStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Cyan).
		MarginBottom(1)

	sectionTitleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Mint).
		MarginBottom(1).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(theme.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC"))

	footerStyle := lipgloss.NewStyle().
		Foreground(theme.Faint).
		MarginTop(2)

	title := titleStyle.Render("HIIT Sessions Help")

	pickerSection := sectionTitleStyle.Render("Choosing a duration")
	pickerContent := fmt.Sprintf("%s - %s\n%s - %s\n%s - %s",
		keyStyle.Render("↑/k ↓/j"), descStyle.Render("One minute less / more"),
		keyStyle.Render("pgup pgdn"), descStyle.Render("Ten minutes less / more"),
		keyStyle.Render("home end"), descStyle.Render("Jump to 1 or 60 minutes"))

	sessionSection := sectionTitleStyle.Render("Session controls")
	sessionContent := fmt.Sprintf("%s - %s\n%s - %s\n%s - %s",
		keyStyle.Render("enter / s"), descStyle.Render("Start the session"),
		keyStyle.Render("c"), descStyle.Render("Toggle the 3-2-1 countdown"),
		keyStyle.Render("x / esc"), descStyle.Render("Stop the session and return to the picker"))

	appSection := sectionTitleStyle.Render("App")
	appContent := fmt.Sprintf("%s - %s\n%s - %s\n%s - %s",
		keyStyle.Render("?"), descStyle.Render("Show this help page"),
		keyStyle.Render("g"), descStyle.Render("Open settings"),
		keyStyle.Render("q / Ctrl+C"), descStyle.Render("Quit"))

	wrap := width - 8
	if wrap < 20 {
		wrap = 20
	}
	aboutSection := sectionTitleStyle.Render("How it works")
	aboutContent := descStyle.Render(wordwrap.String(
		"Each session alternates one minute of HIT (work) with one minute of REST, "+
			"starting with HIT, until the selected duration is reached. The background "+
			"turns green while you work and grey while you rest. The top clock shows "+
			"the total time, the large clock shows the time spent in the current phase. "+
			"Nothing is saved between runs except your settings in ~/.hiitsessions/config.toml.",
		wrap))

	footer := footerStyle.Render("Press 'b/esc' to go back • 'q' to close help")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		pickerSection,
		pickerContent,
		sessionSection,
		sessionContent,
		appSection,
		appContent,
		aboutSection,
		aboutContent,
		footer,
	)

	return containerStyle.Render(content)
}

func (m Model) ShouldQuit() bool {
	return m.quit
}

type keyMap struct {
	Back key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Back: key.NewBinding(
		key.WithKeys("b", "esc", "?"),
		key.WithHelp("b/esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "close"),
	),
}

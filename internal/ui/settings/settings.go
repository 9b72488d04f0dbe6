package settings

import (
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/adibhanna/hiitsessions/internal/models"
	"github.com/adibhanna/hiitsessions/internal/storage"
	"github.com/adibhanna/hiitsessions/internal/ui/theme"
)

const (
	fieldMinutes = iota
	fieldCountdownSeconds
	fieldCountdown
	fieldClock
	fieldCount
)

type Model struct {
	storage      *storage.Storage
	config       models.Config
	inputs       []textinput.Model
	focusIndex   int
	saved        bool
	reset        bool
	confirmReset bool
	errorMsg     string
	width        int
	height       int
}

func New(storage *storage.Storage) (Model, error) {
	config, err := storage.GetConfig()
	if err != nil {
		return Model{}, err
	}

	// Validation function to allow only numeric input
	numericValidation := func(text string) error {
		if text == "" {
			return nil // Allow empty input temporarily
		}
		for _, char := range text {
			if !unicode.IsDigit(char) {
				return errors.New("only numbers allowed")
			}
		}
		return nil
	}

	inputs := make([]textinput.Model, 2)

	// Session Minutes
	inputs[fieldMinutes] = textinput.New()
	inputs[fieldMinutes].Placeholder = "15"
	inputs[fieldMinutes].Focus()
	inputs[fieldMinutes].CharLimit = 2
	inputs[fieldMinutes].Width = 20
	inputs[fieldMinutes].Validate = numericValidation

	// Countdown Seconds
	inputs[fieldCountdownSeconds] = textinput.New()
	inputs[fieldCountdownSeconds].Placeholder = "3"
	inputs[fieldCountdownSeconds].CharLimit = 2
	inputs[fieldCountdownSeconds].Width = 20
	inputs[fieldCountdownSeconds].Validate = numericValidation

	m := Model{
		storage:    storage,
		config:     config,
		inputs:     inputs,
		focusIndex: fieldMinutes,
	}
	m.fillInputs()

	return m, nil
}

func (m *Model) fillInputs() {
	m.inputs[fieldMinutes].SetValue(strconv.Itoa(m.config.SessionMinutes))
	m.inputs[fieldCountdownSeconds].SetValue(strconv.Itoa(m.config.CountdownSeconds))
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Down):
			m.focusIndex++
			if m.focusIndex > fieldCount-1 {
				m.focusIndex = 0
			}
			return m.updateFocus(), nil

		case key.Matches(msg, keys.ShiftTab), key.Matches(msg, keys.Up):
			m.focusIndex--
			if m.focusIndex < 0 {
				m.focusIndex = fieldCount - 1
			}
			return m.updateFocus(), nil

		case key.Matches(msg, keys.Toggle) && m.focusIndex >= fieldCountdown:
			m.toggleFocused()
			m.errorMsg = ""
			return m, nil

		case key.Matches(msg, keys.Save):
			if err := m.saveConfig(); err == nil {
				m.saved = true
				m.errorMsg = ""
				log.Info().
					Int("session_minutes", m.config.SessionMinutes).
					Bool("countdown", m.config.Countdown).
					Str("clock", m.config.Clock).
					Msg("settings saved")
				return m, tea.Quit
			} else {
				m.errorMsg = err.Error()
				m.saved = false
			}

		case key.Matches(msg, keys.Reset):
			if !m.confirmReset {
				m.confirmReset = true
				return m, nil
			} else {
				// Perform reset
				if err := m.resetAllData(); err == nil {
					m.reset = true
					m.confirmReset = false
					return m, tea.Quit
				} else {
					m.errorMsg = err.Error()
				}
			}

		case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit):
			if m.confirmReset {
				m.confirmReset = false
				return m, nil
			}
			return m, tea.Quit
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *Model) updateFocus() tea.Model {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return *m
}

func (m *Model) toggleFocused() {
	switch m.focusIndex {
	case fieldCountdown:
		m.config.Countdown = !m.config.Countdown
	case fieldClock:
		if m.config.Clock == models.ClockMonotonic {
			m.config.Clock = models.ClockFixed
		} else {
			m.config.Clock = models.ClockMonotonic
		}
	}
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		oldValue := m.inputs[i].Value()
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
		// Clear error message when user starts typing
		if m.inputs[i].Value() != oldValue {
			m.errorMsg = ""
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) saveConfig() error {
	minutesStr := m.inputs[fieldMinutes].Value()
	if minutesStr == "" {
		return errors.New("session minutes is required")
	}
	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes < models.MinSessionMinutes || minutes > models.MaxSessionMinutes {
		return errors.Errorf("session minutes must be between %d-%d",
			models.MinSessionMinutes, models.MaxSessionMinutes)
	}

	secondsStr := m.inputs[fieldCountdownSeconds].Value()
	if secondsStr == "" {
		return errors.New("countdown seconds is required")
	}
	seconds, err := strconv.Atoi(secondsStr)
	if err != nil || seconds < 1 || seconds > 10 {
		return errors.New("countdown seconds must be between 1-10")
	}

	m.config.SessionMinutes = minutes
	m.config.CountdownSeconds = seconds

	return m.storage.SaveConfig(m.config)
}

func (m *Model) resetAllData() error {
	if err := m.storage.ResetAllData(); err != nil {
		return err
	}

	// Reset to default config
	m.config = models.DefaultConfig()
	m.fillInputs()

	return nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	containerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Padding(4)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Cyan).
		MarginBottom(3).
		Align(lipgloss.Center)

	formStyle := lipgloss.NewStyle().
		Align(lipgloss.Left).
		MarginTop(2).
		MarginBottom(2)

	labelStyle := lipgloss.NewStyle().
		Foreground(theme.Mint).
		MarginBottom(1)

	inputStyle := lipgloss.NewStyle().
		MarginBottom(2)

	focusedStyle := lipgloss.NewStyle().
		Foreground(theme.Cyan).
		Bold(true)

	successStyle := lipgloss.NewStyle().
		Foreground(theme.Mint).
		Bold(true).
		MarginTop(2)

	title := titleStyle.Render("Settings")

	labels := []string{
		"Default session length (minutes):",
		"Countdown length (seconds):",
		"3-2-1 countdown before the first phase:",
		"Clock:",
	}

	var form string
	for i, label := range labels {
		form += labelStyle.Render(label) + "\n"
		switch i {
		case fieldMinutes, fieldCountdownSeconds:
			form += inputStyle.Render(m.inputs[i].View()) + "\n"
		default:
			value := m.toggleValue(i)
			if m.focusIndex == i {
				value = focusedStyle.Render("> " + value)
			} else {
				value = "  " + value
			}
			form += inputStyle.Render(value) + "\n"
		}
	}

	help := m.renderHelp()

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		formStyle.Render(form),
		help,
	)

	if m.saved {
		content += "\n" + successStyle.Render("Settings saved")
	}

	if m.reset {
		content += "\n" + successStyle.Render("Settings reset to defaults")
	}

	if m.confirmReset {
		warningStyle := lipgloss.NewStyle().
			Foreground(theme.Danger).
			Bold(true).
			MarginTop(2)
		content += "\n" + warningStyle.Render("WARNING: This will reset all settings to their defaults!")
	}

	if m.errorMsg != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(theme.Danger).
			Bold(true).
			MarginTop(2)
		content += "\n" + errorStyle.Render("Error: "+m.errorMsg)
	}

	return containerStyle.Render(content)
}

func (m Model) toggleValue(field int) string {
	switch field {
	case fieldCountdown:
		if m.config.Countdown {
			return "on"
		}
		return "off"
	case fieldClock:
		if m.config.Clock == models.ClockMonotonic {
			return "monotonic (measured wall time)"
		}
		return "fixed (10ms per tick)"
	}
	return ""
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(theme.Faint).
		MarginTop(2)

	if m.confirmReset {
		return helpStyle.Render("Press 'r' again to confirm RESET • b: cancel")
	}

	return helpStyle.Render("tab/↓: next field • shift+tab/↑: previous • space: toggle • s: save • r: reset • b: back • q: quit")
}

// Config is the configuration as last loaded or saved.
func (m Model) Config() models.Config {
	return m.config
}

func (m Model) Saved() bool {
	return m.saved
}

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Save     key.Binding
	Reset    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous field"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next field"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter", "left", "right"),
		key.WithHelp("space", "toggle"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset settings"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Package picker is a scrolling number list used to choose the session length.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/hiitsessions/internal/models"
	"github.com/adibhanna/hiitsessions/internal/ui/theme"
)

const pageSize = 10

type Model struct {
	low     int
	high    int
	cursor  int
	visible int
}

// New builds a picker over [low, high] with value selected.
func New(low, high, value int) Model {
	m := Model{low: low, high: high, visible: 7}
	m.SetValue(value)
	return m
}

// NewMinutes is the 1-60 minute picker.
func NewMinutes(value int) Model {
	return New(models.MinSessionMinutes, models.MaxSessionMinutes, value)
}

func (m Model) Value() int {
	return m.cursor
}

// SetValue moves the cursor, clamping to the picker range.
func (m *Model) SetValue(v int) {
	if v < m.low {
		v = m.low
	}
	if v > m.high {
		v = m.high
	}
	m.cursor = v
}

// SetVisible sets how many rows are shown; odd values keep the cursor centered.
func (m *Model) SetVisible(rows int) {
	if rows < 1 {
		rows = 1
	}
	m.visible = rows
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > m.low {
			m.cursor--
		} else {
			m.cursor = m.high
		}

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < m.high {
			m.cursor++
		} else {
			m.cursor = m.low
		}

	case key.Matches(keyMsg, keys.PageUp):
		m.SetValue(m.cursor - pageSize)

	case key.Matches(keyMsg, keys.PageDown):
		m.SetValue(m.cursor + pageSize)

	case key.Matches(keyMsg, keys.First):
		m.cursor = m.low

	case key.Matches(keyMsg, keys.Last):
		m.cursor = m.high
	}

	return m, nil
}

func (m Model) View() string {
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Cyan).
		Background(theme.White).
		Width(8).
		Align(lipgloss.Center)

	normalStyle := lipgloss.NewStyle().
		Foreground(theme.White).
		Background(theme.Cyan).
		Width(8).
		Align(lipgloss.Center)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Cyan)

	half := m.visible / 2
	var rows []string
	for v := m.cursor - half; v <= m.cursor+half; v++ {
		if v < m.low || v > m.high {
			rows = append(rows, normalStyle.Render(""))
			continue
		}
		if v == m.cursor {
			rows = append(rows, selectedStyle.Render(fmt.Sprintf("▶ %d", v)))
		} else {
			rows = append(rows, normalStyle.Render(fmt.Sprintf("%d", v)))
		}
	}

	return boxStyle.Render(strings.Join(rows, "\n"))
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding
	Last     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "fewer minutes"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "more minutes"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "left", "h"),
		key.WithHelp("pgup", "-10"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "right", "l"),
		key.WithHelp("pgdn", "+10"),
	),
	First: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "1 minute"),
	),
	Last: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "60 minutes"),
	),
}

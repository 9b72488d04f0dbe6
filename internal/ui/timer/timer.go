package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adibhanna/hiitsessions/internal/interval"
	"github.com/adibhanna/hiitsessions/internal/models"
	"github.com/adibhanna/hiitsessions/internal/ui/help"
	"github.com/adibhanna/hiitsessions/internal/ui/picker"
	"github.com/adibhanna/hiitsessions/internal/ui/theme"
)

// tickMsg carries the generation of the timer that scheduled it. Ticks
// from an earlier generation are dropped, which is how a stopped session
// releases its timer.
type tickMsg struct {
	gen uint64
	t   time.Time
}

type Model struct {
	ctrl      *interval.Controller
	picker    picker.Model
	progress  progress.Model
	helpModel help.Model
	showHelp  bool

	sessionID string
	logger    zerolog.Logger
	completed int
	lastTotal time.Duration
	notice    string

	width        int
	height       int
	shouldQuit   bool
	openSettings bool
}

// New builds the timer screen around ctrl. The picker starts on the
// controller's selected duration.
func New(ctrl *interval.Controller) Model {
	prog := progress.New(progress.WithSolidFill(string(theme.Cyan)), progress.WithoutPercentage())
	prog.Width = 60
	prog.EmptyColor = string(theme.Track)

	return Model{
		ctrl:      ctrl,
		picker:    picker.NewMinutes(ctrl.SelectedMinutes()),
		progress:  prog,
		helpModel: help.New(),
		logger:    log.Logger,
	}
}

func (m Model) Init() tea.Cmd {
	if m.ctrl.Running() {
		return tickCmd(m.ctrl.Generation())
	}
	return nil
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(interval.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, t: t}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 80)
		m.picker.SetVisible(max(3, min(msg.Height-16, 9)|1))
		helpModel, _ := m.helpModel.Update(msg)
		m.helpModel = helpModel.(help.Model)
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			helpModel, _ := m.helpModel.Update(msg)
			m.helpModel = helpModel.(help.Model)
			if m.helpModel.ShouldQuit() {
				m.showHelp = false
				m.helpModel = help.New()
				m.helpModel, _ = m.resizedHelp()
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.teardown()
			m.shouldQuit = true
			return m, tea.Quit

		case key.Matches(msg, keys.Stop) && m.ctrl.Running():
			return m.stopSession()

		case m.ctrl.Running():
			// Only stop and quit are live during a session.
			return m, nil

		case key.Matches(msg, keys.Start):
			return m.startSession()

		case key.Matches(msg, keys.Countdown):
			if err := m.ctrl.SetCountdown(!m.ctrl.CountdownEnabled()); err != nil {
				m.logger.Debug().Err(err).Msg("countdown toggle rejected")
			}
			return m, nil

		case key.Matches(msg, keys.Help):
			m.showHelp = true
			return m, nil

		case key.Matches(msg, keys.Settings):
			m.openSettings = true
			return m, tea.Quit

		default:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			if err := m.ctrl.SelectDuration(m.picker.Value()); err != nil {
				m.logger.Debug().Err(err).Msg("duration rejected")
			}
			m.notice = ""
			return m, cmd
		}

	case tickMsg:
		if msg.gen != m.ctrl.Generation() || !m.ctrl.Running() {
			return m, nil
		}

		for _, event := range m.ctrl.Tick() {
			switch event {
			case interval.EventWorkStarted:
				m.logger.Debug().Msg("countdown finished")
			case interval.EventPhaseFlipped:
				m.logger.Info().
					Str("phase", m.ctrl.Phase().String()).
					Int64("total_ms", m.ctrl.TotalElapsed().Milliseconds()).
					Msg("phase flipped")
			case interval.EventCompleted:
				return m.completeSession()
			}
		}
		return m, tickCmd(m.ctrl.Generation())
	}

	return m, nil
}

func (m Model) resizedHelp() (help.Model, tea.Cmd) {
	if m.width == 0 || m.height == 0 {
		return m.helpModel, nil
	}
	helpModel, cmd := m.helpModel.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return helpModel.(help.Model), cmd
}

func (m Model) startSession() (tea.Model, tea.Cmd) {
	if err := m.ctrl.SelectDuration(m.picker.Value()); err != nil {
		m.logger.Debug().Err(err).Msg("duration rejected")
		return m, nil
	}
	if err := m.ctrl.Start(); err != nil {
		m.logger.Debug().Err(err).Msg("start rejected")
		return m, nil
	}

	m.sessionID = uuid.New().String()
	m.logger = log.With().Str("session_id", m.sessionID).Int("minutes", m.ctrl.SelectedMinutes()).Logger()
	m.logger.Info().Bool("countdown", m.ctrl.CountdownEnabled()).Msg("session started")
	m.notice = ""

	return m, tickCmd(m.ctrl.Generation())
}

func (m Model) stopSession() (tea.Model, tea.Cmd) {
	m.lastTotal = m.ctrl.TotalElapsed()
	if err := m.ctrl.Stop(); err != nil {
		m.logger.Debug().Err(err).Msg("stop rejected")
		return m, nil
	}

	m.logger.Info().Int64("total_ms", m.lastTotal.Milliseconds()).Msg("session stopped")
	m.notice = fmt.Sprintf("Stopped at %s", interval.FormatClock(m.lastTotal))
	return m, nil
}

func (m Model) completeSession() (tea.Model, tea.Cmd) {
	m.completed++
	m.lastTotal = time.Duration(m.ctrl.SelectedMinutes()) * interval.PhaseLength
	m.logger.Info().Int64("total_ms", m.lastTotal.Milliseconds()).Msg("session completed")
	m.notice = fmt.Sprintf("Session complete! %s of intervals", interval.MinutesLabel(m.ctrl.SelectedMinutes()))
	return m, nil
}

func (m *Model) teardown() {
	if m.ctrl.Running() {
		m.logger.Info().Int64("total_ms", m.ctrl.TotalElapsed().Milliseconds()).Msg("session abandoned")
	}
	m.ctrl.Teardown()
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.helpModel.View()
	}

	state := m.ctrl.State()
	screen := theme.Screen(state.Phase, m.width, m.height)

	switch state.Phase {
	case models.PhaseCountdown:
		return screen.Render(m.renderCountdown(state))
	case models.PhaseHit, models.PhaseRest:
		return screen.Render(m.renderActive(state))
	default:
		return screen.Render(m.renderIdle())
	}
}

func (m Model) renderIdle() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.White).
		MarginBottom(1)

	buttonStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Night).
		Background(theme.Cyan).
		Padding(1, 4).
		MarginTop(1)

	noticeStyle := lipgloss.NewStyle().
		Foreground(theme.Mint).
		Bold(true).
		MarginBottom(1)

	optionStyle := lipgloss.NewStyle().
		Foreground(theme.Muted).
		MarginTop(1)

	countdown := "off"
	if m.ctrl.CountdownEnabled() {
		countdown = "on"
	}

	parts := []string{}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts,
		titleStyle.Render("Select duration (minutes)"),
		m.picker.View(),
		buttonStyle.Render("START "+strings.ToUpper(interval.MinutesLabel(m.picker.Value()))),
		optionStyle.Render("3-2-1 countdown: "+countdown),
		helpView(false),
	)

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m Model) renderCountdown(state interval.State) string {
	digitStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.White).
		Padding(1, 6).
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Cyan)

	labelStyle := lipgloss.NewStyle().
		Foreground(theme.Muted).
		MarginBottom(1)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		labelStyle.Render(theme.PhaseLabel(state.Phase)),
		digitStyle.Render(theme.CountdownLabel(state.CountdownRemaining)),
		helpView(true),
	)
}

func (m Model) renderActive(state interval.State) string {
	totalStyle := lipgloss.NewStyle().
		Foreground(theme.White).
		MarginBottom(1)

	clockStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.White).
		MarginTop(1).
		MarginBottom(1)

	roundStyle := lipgloss.NewStyle().
		Foreground(theme.White).
		MarginTop(1)

	label := theme.PhaseLabel(state.Phase)
	if state.Phase == models.PhaseHit && state.TotalElapsed < time.Second {
		label = theme.CountdownLabel(0) + " " + label
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		totalStyle.Render("Total: "+interval.FormatClock(state.TotalElapsed)),
		theme.Badge(state.Phase).Render(label),
		clockStyle.Render(interval.FormatClock(state.PhaseElapsed)),
		m.progress.ViewAs(state.Progress()/100),
		roundStyle.Render(fmt.Sprintf("Round %d/%d", state.Round(), state.Minutes)),
		helpView(true),
	)
}

func helpView(running bool) string {
	helpStyle := lipgloss.NewStyle().
		Foreground(theme.Faint).
		MarginTop(2)

	var helpText string
	if !running {
		helpText = "↑/↓: duration • enter: start • c: countdown • g: settings • ?: help • q: quit"
	} else {
		helpText = "x: stop • q: quit"
	}

	return helpStyle.Render(helpText)
}

// ShouldQuit reports whether the user asked to leave the app.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// ShouldOpenSettings reports whether the program exited to show settings.
func (m Model) ShouldOpenSettings() bool {
	return m.openSettings
}

// Completed is the number of sessions that ran to the end.
func (m Model) Completed() int {
	return m.completed
}

type keyMap struct {
	Start     key.Binding
	Stop      key.Binding
	Countdown key.Binding
	Help      key.Binding
	Settings  key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter/s", "start"),
	),
	Stop: key.NewBinding(
		key.WithKeys("x", "esc"),
		key.WithHelp("x/esc", "stop"),
	),
	Countdown: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "toggle countdown"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "settings"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

package theme

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/hiitsessions/internal/models"
)

var (
	Night  = lipgloss.Color("#111111")
	Mint   = lipgloss.Color("#00b894")
	Slate  = lipgloss.Color("#636e72")
	Cyan   = lipgloss.Color("#00cec9")
	Track  = lipgloss.Color("#2d3436")
	Danger = lipgloss.Color("#d63031")
	White  = lipgloss.Color("#FAFAFA")
	Muted  = lipgloss.Color("#888")
	Faint  = lipgloss.Color("#666")
)

// PhaseBackground is the screen color for each phase.
func PhaseBackground(p models.Phase) lipgloss.Color {
	switch p {
	case models.PhaseHit:
		return Mint
	case models.PhaseRest:
		return Slate
	default:
		return Night
	}
}

func PhaseLabel(p models.Phase) string {
	switch p {
	case models.PhaseHit:
		return "HIT"
	case models.PhaseRest:
		return "REST"
	case models.PhaseCountdown:
		return "GET READY"
	default:
		return "READY"
	}
}

// CountdownLabel is the big countdown digit, or GO! once it reaches zero.
func CountdownLabel(remaining int) string {
	if remaining <= 0 {
		return "GO!"
	}
	return strconv.Itoa(remaining)
}

// Screen fills the whole terminal with the phase color.
func Screen(p models.Phase, width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Background(PhaseBackground(p)).
		Foreground(White)
}

// Badge renders the phase label on the phase color.
func Badge(p models.Phase) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(White).
		Background(PhaseBackground(p)).
		Padding(1, 4)
}

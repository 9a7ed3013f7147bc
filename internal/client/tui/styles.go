// Package tui is the full-screen terminal client: sign-up and sign-in
// forms, and the dashboard with its cards, create dialog, share dialog and
// sidebar. Every screen is a bubbletea model driven by messages.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	Purple      = lipgloss.Color("#7c3aed")
	PurpleLight = lipgloss.Color("#ede9fe")
	Gray        = lipgloss.Color("#6b7280")
	GrayLight   = lipgloss.Color("#e5e7eb")
	Destructive = lipgloss.Color("#dc2626")
	Success     = lipgloss.Color("#16a34a")
	White       = lipgloss.Color("#ffffff")
)

// Styles groups the lipgloss styles shared by the screens.
type Styles struct {
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Label       lipgloss.Style
	Primary     lipgloss.Style
	Secondary   lipgloss.Style
	Disabled    lipgloss.Style
	Focused     lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Dialog      lipgloss.Style
	Sidebar     lipgloss.Style
	NavItem     lipgloss.Style
	ActiveNav   lipgloss.Style
	Help        lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(Purple),
		Subtle:      lipgloss.NewStyle().Foreground(Gray),
		Error:       lipgloss.NewStyle().Foreground(Destructive),
		Success:     lipgloss.NewStyle().Foreground(Success).Bold(true),
		Label:       lipgloss.NewStyle().Bold(true),
		Primary:     lipgloss.NewStyle().Foreground(White).Background(Purple).Padding(0, 2),
		Secondary:   lipgloss.NewStyle().Foreground(Purple).Background(PurpleLight).Padding(0, 2),
		Disabled:    lipgloss.NewStyle().Foreground(Gray).Background(GrayLight).Padding(0, 2),
		Focused:     lipgloss.NewStyle().Underline(true),
		Tab:         lipgloss.NewStyle().Foreground(Gray).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Foreground(Purple).Background(PurpleLight).Bold(true).Padding(0, 1),
		Dialog:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Purple).Padding(1, 2),
		Sidebar:     lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(GrayLight).Padding(0, 1),
		NavItem:     lipgloss.NewStyle().Foreground(Gray),
		ActiveNav:   lipgloss.NewStyle().Foreground(Purple).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(Gray).Italic(true),
		Placeholder: lipgloss.NewStyle().Foreground(GrayLight),
	}
}

var styles = DefaultStyles()

// truncate cuts s to at most n cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

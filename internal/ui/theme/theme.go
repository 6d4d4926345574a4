package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: brass on a dark bench mat.
var (
	Primary   = lipgloss.Color("#F59E0B") // Brass
	Secondary = lipgloss.Color("#10B981") // Oil green
	Accent    = lipgloss.Color("#FCD34D") // Polished gilt
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9") // White
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#020617") // Bench mat
	BgCard    = lipgloss.Color("#0F172A") // Tray
	Border    = lipgloss.Color("#1E293B") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Italic(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)

	Mono = lipgloss.NewStyle().
		Foreground(Primary)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	ActiveCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Tab = lipgloss.NewStyle().
		Foreground(TextDim).
		Padding(0, 1)

	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 1)

	Badge = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Secondary).
		Bold(true).
		Padding(0, 1)
)

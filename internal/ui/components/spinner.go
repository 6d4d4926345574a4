package components

import (
	"charm.land/bubbles/v2/spinner"
	"charm.land/lipgloss/v2"

	"github.com/watchbench/apprentice/internal/ui/theme"
)

// NewSpinner returns the busy indicator shown while the mentor is
// writing. Start it by returning its Tick as a command.
func NewSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
	)
}

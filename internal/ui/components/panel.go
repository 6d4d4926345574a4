package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/watchbench/apprentice/internal/ui/theme"
)

// ContentWidth returns the inner width used for stacked panels, capped so
// long prose stays readable on wide terminals.
func ContentWidth(frameWidth, maxWidth int) int {
	w := frameWidth - 4
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel renders content in a rounded card of the given outer width with
// an optional title line. Active panels get the brass border.
func Panel(title, content string, width int, active bool) string {
	style := theme.Card
	if active {
		style = theme.ActiveCard
	}
	body := content
	if title != "" {
		body = theme.Title.Render(title) + "\n" + content
	}
	return style.Width(width).Render(body)
}

// Tabs renders a single-line tab strip with the active label highlighted.
func Tabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = theme.TabActive.Render(l)
		} else {
			parts[i] = theme.Tab.Render(l)
		}
	}
	return strings.Join(parts, " ")
}

// Bullets renders items as a dotted list wrapped to width.
func Bullets(items []string, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	var b strings.Builder
	for _, it := range items {
		b.WriteString(style.Render("• " + it))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Package layout draws the chrome around every screen: a header bar, the
// active screen's body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/watchbench/apprentice/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below CompactWidth screens drop their side panels.
	CompactWidth = 100
)

// KeyHint is one entry of the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool { return width < CompactWidth }

func IsTooSmall(width, height int) bool { return width < MinWidth || height < MinHeight }

// Frame is the chrome drawn around the active screen.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
}

// Render draws the frame at width x height. body is asked to fill whatever
// the header and footer leave over. Terminals below MinWidth x MinHeight get
// a resize notice instead.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	if IsTooSmall(width, height) {
		return tooSmall(width, height)
	}
	header, footer := f.header(width), f.footer(width)
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().Width(width).Height(h).MaxHeight(h).Render(body(width, h))
	return strings.Join([]string{header, content, footer}, "\n")
}

func tooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf("The bench is too narrow.\n\nResize to at least %d x %d\n(now %d x %d)",
			MinWidth, MinHeight, width, height))
}

// bar is the bordered strip used for header and footer.
func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// header puts the product name left, the title centred and the status right.
func (f Frame) header(width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Apprentice")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.Status)

	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	return bar(width, left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right)
}

// footer lists hints in order and drops the ones that would overflow.
func (f Frame) footer(width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	inner := max(width-4, 0)
	line := " "
	for _, h := range f.Hints {
		part := "  " + key.Render(h.Key) + " " + desc.Render(h.Description)
		if lipgloss.Width(line+part) > inner {
			break
		}
		line += part
	}
	return bar(width, line)
}

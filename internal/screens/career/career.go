// Package career is the career-readiness screen with the bench-test
// protocol overlay.
package career

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/watchbench/apprentice/internal/content"
	"github.com/watchbench/apprentice/internal/screen"
	"github.com/watchbench/apprentice/internal/state"
	"github.com/watchbench/apprentice/internal/ui/components"
	"github.com/watchbench/apprentice/internal/ui/layout"
	"github.com/watchbench/apprentice/internal/ui/theme"
)

// CareerScreen renders static career content.
type CareerScreen struct {
	career       content.Career
	showProtocol bool
	scroll       components.Scroller
}

var _ screen.Screen = (*CareerScreen)(nil)

// New creates the career screen.
func New(st *state.State) *CareerScreen {
	return &CareerScreen{
		career: st.Catalog.Career(),
		scroll: components.NewScroller(true),
	}
}

func (c *CareerScreen) Init() tea.Cmd {
	return nil
}

func (c *CareerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "p", "P":
			c.showProtocol = !c.showProtocol
			c.scroll.Top()
			return c, nil
		case "esc":
			if c.showProtocol {
				c.showProtocol = false
				c.scroll.Top()
			}
			return c, nil
		}
	}
	var cmd tea.Cmd
	c.scroll, cmd = c.scroll.Update(msg)
	return c, cmd
}

func (c *CareerScreen) View(width, height int) string {
	cw := components.ContentWidth(width, 90)
	var body string
	if c.showProtocol {
		body = c.renderProtocol(cw)
	} else {
		body = c.renderOverview(cw)
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(c.scroll.Render(body, cw, height))
}

func (c *CareerScreen) renderOverview(cw int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(cw)

	b.WriteString(theme.Title.Render(c.career.Headline))
	b.WriteString("\n")
	b.WriteString(wrap.Foreground(theme.TextDim).Render(c.career.Intro))
	b.WriteString("\n\n")

	for _, p := range c.career.Pillars {
		b.WriteString(components.Panel(p.Title, wrap.Width(cw-4).Render(p.Description), cw, false))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Label.Render("BENCH-READINESS CHECKLIST"))
	b.WriteString("\n")
	for _, cat := range c.career.Checklist {
		b.WriteString(theme.Selected.Render(cat.Title))
		b.WriteString("\n")
		b.WriteString(components.Bullets(cat.Items, cw))
		b.WriteString("\n\n")
	}

	b.WriteString(wrap.Italic(true).Foreground(theme.Accent).Render("“" + c.career.Quote + "”"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press P to view the industry bench-test protocol."))
	return b.String()
}

func (c *CareerScreen) renderProtocol(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Industry Bench-Test Protocol"))
	b.WriteString("\n\n")
	for _, step := range c.career.Protocol {
		b.WriteString(components.Panel(step.Title, lipgloss.NewStyle().Width(cw-4).Render(step.Body), cw, true))
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Render("Press P or Esc to close."))
	return b.String()
}

func (c *CareerScreen) Title() string {
	return state.ViewCareer.String()
}

// ViewID reports the workspace view this screen represents.
func (c *CareerScreen) ViewID() state.View { return state.ViewCareer }

// ProtocolOpen reports whether the protocol overlay is showing.
func (c *CareerScreen) ProtocolOpen() bool { return c.showProtocol }

// CapturesEsc keeps esc for closing the overlay while it is open.
func (c *CareerScreen) CapturesEsc() bool { return c.showProtocol }

func (c *CareerScreen) KeyHints() []layout.KeyHint {
	if c.showProtocol {
		return []layout.KeyHint{
			{Key: "P/Esc", Description: "Close protocol"},
			{Key: "↑↓", Description: "Scroll"},
		}
	}
	return []layout.KeyHint{
		{Key: "P", Description: "Protocol"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

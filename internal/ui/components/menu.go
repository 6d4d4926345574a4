package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/watchbench/apprentice/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Hint is an optional shortcut shown
// dimmed after the label.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a cursor that skips disabled items and
// wraps at both ends.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu puts the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

// Update moves the cursor on up/down (k/j) and fires the selected item's
// action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if item, ok := m.current(); ok && item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

// move steps the cursor by dir to the next enabled item, wrapping around.
// It stays put when nothing else is enabled.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) || m.Items[m.Selected].Disabled {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

func (m Menu) View() string {
	var (
		selected = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		normal   = lipgloss.NewStyle().Foreground(theme.Text)
		muted    = lipgloss.NewStyle().Foreground(theme.TextDim)
	)
	var b strings.Builder
	for i, item := range m.Items {
		style, cursor := normal, "    "
		switch {
		case item.Disabled:
			style = muted
		case i == m.Selected:
			style, cursor = selected, "  ▸ "
		}
		b.WriteString(style.Render(cursor + item.Label))
		if item.Hint != "" {
			b.WriteString(muted.Render("  " + item.Hint))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

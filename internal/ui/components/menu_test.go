package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

var (
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

type picked string

func workshopMenu() Menu {
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{Label: label, Disabled: disabled, Action: func() tea.Cmd {
			return func() tea.Msg { return picked(label) }
		}}
	}
	return NewMenu([]MenuItem{
		item("Lathe", true),
		item("Bench", false),
		item("Library", false),
		item("Archive", true),
	})
}

func TestMenuStartsOnFirstEnabledItem(t *testing.T) {
	if m := workshopMenu(); m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
}

func TestMenuSkipsDisabledAndWraps(t *testing.T) {
	m := workshopMenu()

	m, _ = m.Update(keyDown)
	if m.Selected != 2 {
		t.Fatalf("down: Selected = %d, want 2", m.Selected)
	}
	// Past the disabled tail back to the top.
	m, _ = m.Update(keyDown)
	if m.Selected != 1 {
		t.Fatalf("wrap down: Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(keyUp)
	if m.Selected != 2 {
		t.Fatalf("wrap up: Selected = %d, want 2", m.Selected)
	}
}

func TestMenuEnterFiresAction(t *testing.T) {
	m := workshopMenu()
	m, _ = m.Update(keyDown)

	_, cmd := m.Update(keyEnter)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got := cmd(); got != picked("Library") {
		t.Fatalf("action returned %v", got)
	}
}

func TestMenuAllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Lathe", Disabled: true}})
	m, _ = m.Update(keyDown)
	if _, cmd := m.Update(keyEnter); cmd != nil {
		t.Fatal("disabled item must not fire")
	}
	if NewMenu(nil).View() != "" {
		t.Fatal("empty menu should render nothing")
	}
}

func TestMenuViewShowsHints(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Bench", Hint: "2"}, {Label: "Library", Hint: "3"}})
	view := m.View()
	if !strings.Contains(view, "▸ Bench") {
		t.Errorf("cursor missing:\n%s", view)
	}
	if !strings.Contains(view, "3") {
		t.Errorf("hint missing:\n%s", view)
	}
}

package library

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/watchbench/apprentice/internal/state"
)

func TestLibraryListsBooksThenTopics(t *testing.T) {
	st := state.New(nil, nil)
	l := New(st)

	if got := l.Selected(); got != st.Catalog.Books()[0].Title {
		t.Errorf("first item = %q, want first book", got)
	}
	for range st.Catalog.Books() {
		l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if got := l.Selected(); got != st.Catalog.Topics()[0] {
		t.Errorf("after books = %q, want first topic", got)
	}
}

func TestLibraryEnterOpensReader(t *testing.T) {
	st := state.New(nil, nil)
	l := New(st)
	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(state.OpenReaderMsg)
	if !ok {
		t.Fatalf("expected OpenReaderMsg, got %T", cmd())
	}
	if msg.Topic != st.Catalog.Books()[1].Title {
		t.Errorf("Topic = %q", msg.Topic)
	}
}

func TestLibraryCursorClamped(t *testing.T) {
	l := New(state.New(nil, nil))
	l.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if l.cursor != 0 {
		t.Errorf("cursor = %d, want 0", l.cursor)
	}
	for range 50 {
		l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if l.cursor != len(l.items)-1 {
		t.Errorf("cursor = %d, want %d", l.cursor, len(l.items)-1)
	}
}

func TestLibraryView(t *testing.T) {
	l := New(state.New(nil, nil))
	if l.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
	if l.Title() != "The Library" {
		t.Errorf("Title = %q", l.Title())
	}
	if len(l.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(l.KeyHints()))
	}
}

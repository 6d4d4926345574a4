package journal

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/watchbench/apprentice/internal/content"
	jrnl "github.com/watchbench/apprentice/internal/journal"
	"github.com/watchbench/apprentice/internal/llm"
	"github.com/watchbench/apprentice/internal/mentor"
	"github.com/watchbench/apprentice/internal/state"
)

var ctrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}

func newScreen(responses ...llm.MockResponse) (*JournalScreen, *state.State) {
	st := state.New(content.Default(), mentor.New(llm.NewMockProvider(responses...), mentor.DefaultConfig()))
	return New(st), st
}

// recorded runs cmd and returns the review result, skipping spinner ticks.
func recorded(t *testing.T, cmd tea.Cmd) entryRecordedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	switch msg := cmd().(type) {
	case entryRecordedMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if m, ok := c().(entryRecordedMsg); ok {
				return m
			}
		}
	}
	t.Fatal("command produced no entry")
	return entryRecordedMsg{}
}

func TestSubmitFilesReviewedEntry(t *testing.T) {
	j, st := newScreen(llm.MockResponse{Text: "Mind the pallet stones."})
	j.Init()
	j.input.SetValue("Serviced an ST3600 escapement.")

	_, cmd := j.Update(ctrlS)
	if !st.Journal.Busy() {
		t.Fatal("expected busy while the review runs")
	}

	msg := recorded(t, cmd)
	j.Update(msg)

	if st.Journal.Busy() {
		t.Error("expected busy cleared after review")
	}
	if j.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", j.input.Value())
	}
	entries := st.Journal.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Status != jrnl.StatusReviewed || e.Feedback != "Mind the pallet stones." || e.Phase != 1 {
		t.Errorf("unexpected entry: %+v", e)
	}
	if !strings.Contains(j.View(100, 40), "Service Record #1") {
		t.Error("expected the record in the view")
	}
}

func TestSubmitBlankIgnored(t *testing.T) {
	j, st := newScreen()
	j.input.SetValue("   \n  ")

	if _, cmd := j.Update(ctrlS); cmd != nil {
		t.Error("blank submission should not start a review")
	}
	if st.Journal.Busy() || st.Journal.Len() != 0 {
		t.Error("blank submission must leave the journal untouched")
	}
}

func TestSubmitWhileBusyIgnored(t *testing.T) {
	j, st := newScreen(llm.MockResponse{Text: "one"}, llm.MockResponse{Text: "two"})
	j.input.SetValue("first")
	_, first := j.Update(ctrlS)

	j.input.SetValue("second")
	if _, cmd := j.Update(ctrlS); cmd != nil {
		t.Error("second submission while busy should be ignored")
	}

	j.Update(recorded(t, first))
	if st.Journal.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", st.Journal.Len())
	}
}

func TestBackendFailureStillRecords(t *testing.T) {
	j, st := newScreen(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	j.input.SetValue("Cleaned the barrel.")

	_, cmd := j.Update(ctrlS)
	j.Update(recorded(t, cmd))

	entries := st.Journal.Entries()
	if len(entries) != 1 || entries[0].Feedback != mentor.MasterBusy {
		t.Fatalf("expected one entry with the fallback, got %+v", entries)
	}
}

func TestTabCyclesPhase(t *testing.T) {
	j, st := newScreen()
	j.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if st.JournalPhase() != 2 {
		t.Errorf("JournalPhase = %d, want 2", st.JournalPhase())
	}
}

func TestJournalScreenBasics(t *testing.T) {
	j, _ := newScreen()
	if j.Title() != "Service Book" {
		t.Errorf("Title = %q", j.Title())
	}
	if !j.CapturesInput() {
		t.Error("journal should capture typing")
	}
	if !strings.Contains(j.View(100, 30), "No service records yet") {
		t.Error("expected empty-state hint")
	}
	if len(j.KeyHints()) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(j.KeyHints()))
	}
}

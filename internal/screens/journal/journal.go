// Package journal is the service-book screen: the apprentice writes up
// bench work and the mentor reviews each entry.
package journal

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	jrnl "github.com/watchbench/apprentice/internal/journal"
	"github.com/watchbench/apprentice/internal/screen"
	"github.com/watchbench/apprentice/internal/state"
	"github.com/watchbench/apprentice/internal/ui/components"
	"github.com/watchbench/apprentice/internal/ui/layout"
	"github.com/watchbench/apprentice/internal/ui/theme"
)

// entryRecordedMsg is sent when the mentor's review has been filed.
type entryRecordedMsg struct {
	entry jrnl.Entry
}

// JournalScreen holds the entry form and the record list.
type JournalScreen struct {
	state   *state.State
	input   textarea.Model
	spinner spinner.Model
	scroll  components.Scroller
}

var _ screen.Screen = (*JournalScreen)(nil)

// New creates the journal screen.
func New(st *state.State) *JournalScreen {
	ta := textarea.New()
	ta.Placeholder = "Describe today's bench work: the caliber, what you serviced, what went wrong..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetHeight(4)

	return &JournalScreen{
		state:   st,
		input:   ta,
		spinner: components.NewSpinner(),
		scroll:  components.NewScroller(false),
	}
}

func (j *JournalScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{j.input.Focus()}
	if j.state.Journal.Busy() {
		cmds = append(cmds, j.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (j *JournalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entryRecordedMsg:
		j.input.Reset()
		j.scroll.Top()
		return j, nil

	case spinner.TickMsg:
		if !j.state.Journal.Busy() {
			return j, nil
		}
		var cmd tea.Cmd
		j.spinner, cmd = j.spinner.Update(msg)
		return j, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			return j, j.submit()
		case "tab":
			j.state.CycleJournalPhase()
			return j, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			j.scroll, cmd = j.scroll.Update(msg)
			return j, cmd
		}
		if j.state.Journal.Busy() {
			return j, nil
		}
	}

	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	return j, cmd
}

// submit files the current text for review. Blank text or an outstanding
// review is ignored without comment.
func (j *JournalScreen) submit() tea.Cmd {
	pending, ok := j.state.Journal.Begin(j.input.Value(), j.state.JournalPhase())
	if !ok {
		return nil
	}
	book, reviewer := j.state.Journal, j.state.Mentor
	review := func() tea.Msg {
		feedback := reviewer.ReviewFeedback(context.Background(), pending.Text, pending.Phase)
		return entryRecordedMsg{entry: book.Complete(pending, feedback)}
	}
	return tea.Batch(j.spinner.Tick, review)
}

func (j *JournalScreen) View(width, height int) string {
	cw := components.ContentWidth(width, 100)
	j.input.SetWidth(cw - 2)

	var top strings.Builder
	top.WriteString(theme.Title.Render("Service Book"))
	top.WriteString("\n")
	top.WriteString(j.renderPhases())
	top.WriteString("\n\n")
	top.WriteString(j.input.View())
	top.WriteString("\n")
	if j.state.Journal.Busy() {
		top.WriteString(j.spinner.View() + theme.Hint.Render(" The master is reviewing your work..."))
	} else {
		top.WriteString(theme.Hint.Render("Ctrl+S submits for review"))
	}
	top.WriteString("\n")

	head := top.String()
	listHeight := max(height-lipgloss.Height(head)-1, 1)
	list := j.scroll.Render(j.renderEntries(cw), cw, listHeight)

	return lipgloss.NewStyle().PaddingLeft(2).Render(head + "\n" + list)
}

func (j *JournalScreen) renderPhases() string {
	phases := j.state.Catalog.Phases()
	labels := make([]string, len(phases))
	active := 0
	for i, p := range phases {
		labels[i] = fmt.Sprintf("Phase %d", p.ID)
		if p.ID == j.state.JournalPhase() {
			active = i
		}
	}
	return components.Tabs(labels, active)
}

func (j *JournalScreen) renderEntries(cw int) string {
	entries := j.state.Journal.Entries()
	if len(entries) == 0 {
		return theme.Hint.Render("No service records yet. Your first write-up will appear here.")
	}

	wrap := lipgloss.NewStyle().Width(cw - 4)
	var b strings.Builder
	for _, e := range entries {
		header := theme.Selected.Render(e.Title) + "  " +
			theme.Hint.Render(fmt.Sprintf("Phase %d · %s · %s", e.Phase, e.CreatedAt.Format("Jan 2 15:04"), e.Status))
		body := wrap.Foreground(theme.Text).Render(e.Description) + "\n\n" +
			theme.Label.Render("MASTER'S FEEDBACK") + "\n" +
			wrap.Foreground(theme.Accent).Render(e.Feedback)
		b.WriteString(components.Panel("", header+"\n"+body, cw, false))
		b.WriteString("\n")
	}
	return b.String()
}

func (j *JournalScreen) Title() string {
	return state.ViewJournal.String()
}

// ViewID reports the workspace view this screen represents.
func (j *JournalScreen) ViewID() state.View { return state.ViewJournal }

// CapturesInput keeps printable keys for the entry form.
func (j *JournalScreen) CapturesInput() bool { return true }

func (j *JournalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Tab", Description: "Phase"},
		{Key: "PgUp/PgDn", Description: "Records"},
		{Key: "Esc", Description: "Back"},
	}
}

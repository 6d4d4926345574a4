// Package reader is the deep-dive modal: it shows the text for one topic,
// pre-authored or written by the mentor on demand.
package reader

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/watchbench/apprentice/internal/library"
	"github.com/watchbench/apprentice/internal/screen"
	"github.com/watchbench/apprentice/internal/state"
	"github.com/watchbench/apprentice/internal/ui/components"
	"github.com/watchbench/apprentice/internal/ui/layout"
	"github.com/watchbench/apprentice/internal/ui/theme"
)

// lookupDoneMsg carries a finished lookup back to the reader that asked.
type lookupDoneMsg struct {
	requestID string
	result    library.Result
}

// ReaderScreen displays one deep dive.
type ReaderScreen struct {
	state     *state.State
	topic     string
	requestID string
	loading   bool
	result    library.Result
	spinner   spinner.Model
	scroll    components.Scroller
}

var _ screen.Screen = (*ReaderScreen)(nil)

// New creates a reader for topic.
func New(st *state.State, topic string) *ReaderScreen {
	return &ReaderScreen{
		state:   st,
		topic:   topic,
		spinner: components.NewSpinner(),
		scroll:  components.NewScroller(true),
	}
}

// Init resolves the topic. Pre-authored text is shown at once; anything
// else is requested in the background while the spinner runs.
func (r *ReaderScreen) Init() tea.Cmd {
	r.state.OpenReader(r.topic)

	if r.state.Library.IsLocal(r.topic) {
		r.result = r.state.Library.Lookup(context.Background(), r.topic)
		return nil
	}

	r.loading = true
	r.requestID = uuid.NewString()
	lib, topic, id := r.state.Library, r.topic, r.requestID
	lookup := func() tea.Msg {
		return lookupDoneMsg{requestID: id, result: lib.Lookup(context.Background(), topic)}
	}
	return tea.Batch(r.spinner.Tick, lookup)
}

func (r *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupDoneMsg:
		// Results for a reader that was closed and reopened are dropped.
		if msg.requestID != r.requestID || !r.loading {
			return r, nil
		}
		r.loading = false
		r.result = msg.result
		r.scroll.Top()
		return r, nil

	case spinner.TickMsg:
		if !r.loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	}

	var cmd tea.Cmd
	r.scroll, cmd = r.scroll.Update(msg)
	return r, cmd
}

func (r *ReaderScreen) View(width, height int) string {
	cw := components.ContentWidth(width, 100)

	heading := theme.Title.Render(r.topic)
	var source string
	switch {
	case r.loading:
		source = theme.Hint.Render("consulting the master watchmaker")
	case r.result.Source == library.SourceLocal:
		source = theme.Hint.Render("from the reference shelf")
	default:
		source = theme.Hint.Render("written by the master watchmaker")
	}
	top := heading + "\n" + source + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))

	bodyHeight := max(height-lipgloss.Height(top)-1, 1)

	var body string
	if r.loading {
		body = lipgloss.NewStyle().
			Width(cw).
			Height(bodyHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render(r.spinner.View() + " Preparing the deep dive...")
	} else {
		body = r.scroll.Render(theme.Body.Render(r.result.Text), cw, bodyHeight)
	}

	return lipgloss.NewStyle().PaddingLeft(2).Render(top + "\n" + body)
}

func (r *ReaderScreen) Title() string {
	return state.ViewReader.String()
}

// ViewID reports the workspace view this screen represents.
func (r *ReaderScreen) ViewID() state.View { return state.ViewReader }

// Topic returns the topic on display.
func (r *ReaderScreen) Topic() string { return r.topic }

// Loading reports whether the text is still being written.
func (r *ReaderScreen) Loading() bool { return r.loading }

// Text returns the resolved text, empty while loading.
func (r *ReaderScreen) Text() string { return r.result.Text }

func (r *ReaderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓/PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Close"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

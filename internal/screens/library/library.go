// Package library is the reference-library screen: book summaries and
// physics modules, each opening a deep dive.
package library

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/watchbench/apprentice/internal/screen"
	"github.com/watchbench/apprentice/internal/state"
	"github.com/watchbench/apprentice/internal/ui/components"
	"github.com/watchbench/apprentice/internal/ui/layout"
	"github.com/watchbench/apprentice/internal/ui/theme"
)

// LibraryScreen lists the shelf. The cursor runs over books first, then
// topics.
type LibraryScreen struct {
	state  *state.State
	items  []string
	books  int
	cursor int
	scroll components.Scroller
}

var _ screen.Screen = (*LibraryScreen)(nil)

// New creates the library screen.
func New(st *state.State) *LibraryScreen {
	var items []string
	for _, b := range st.Catalog.Books() {
		items = append(items, b.Title)
	}
	books := len(items)
	items = append(items, st.Catalog.Topics()...)
	return &LibraryScreen{
		state:  st,
		items:  items,
		books:  books,
		scroll: components.NewScroller(false),
	}
}

func (l *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
			return l, nil
		case "down", "j":
			if l.cursor < len(l.items)-1 {
				l.cursor++
			}
			return l, nil
		case "enter":
			if l.cursor < len(l.items) {
				return l, state.Read(l.items[l.cursor])
			}
			return l, nil
		}
	}
	var cmd tea.Cmd
	l.scroll, cmd = l.scroll.Update(msg)
	return l, cmd
}

func (l *LibraryScreen) View(width, height int) string {
	cw := components.ContentWidth(width, 90)
	var b strings.Builder

	b.WriteString(theme.Title.Render("The Reference Library"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Digital summaries and deep-dives from the most revered horological texts."))
	b.WriteString("\n\n")

	b.WriteString(theme.Label.Render("BOOKS"))
	b.WriteString("\n")
	for i, book := range l.state.Catalog.Books() {
		tags := theme.Hint.Render(strings.Join(book.Tags, " · "))
		line := fmt.Sprintf("%s  %s  %s", book.Title, lipgloss.NewStyle().Foreground(theme.Primary).Render(book.Focus), tags)
		b.WriteString(l.row(i, line))
	}

	b.WriteString("\n")
	b.WriteString(theme.Label.Render("HOROLOGICAL PHYSICS MODULES"))
	b.WriteString("\n")
	for i, topic := range l.items[l.books:] {
		b.WriteString(l.row(l.books+i, topic))
	}

	return lipgloss.NewStyle().PaddingLeft(2).Render(l.scroll.Render(b.String(), cw, height))
}

// row renders one selectable line, marking topics that need the mentor.
func (l *LibraryScreen) row(i int, label string) string {
	marker := theme.Hint.Render("  ✦ ask the master")
	if l.state.Library.IsLocal(l.items[i]) {
		marker = theme.Hint.Render("  ◆ on the shelf")
	}
	if i == l.cursor {
		return theme.Selected.Render("▸ ") + theme.Selected.Render(label) + marker + "\n"
	}
	return "  " + theme.Unselected.Render(label) + marker + "\n"
}

func (l *LibraryScreen) Title() string {
	return state.ViewLibrary.String()
}

// ViewID reports the workspace view this screen represents.
func (l *LibraryScreen) ViewID() state.View { return state.ViewLibrary }

// Selected returns the topic under the cursor.
func (l *LibraryScreen) Selected() string {
	if l.cursor >= len(l.items) {
		return ""
	}
	return l.items[l.cursor]
}

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
	}
}

// Package app wires the router, the shared state and the workspace
// screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/watchbench/apprentice/internal/router"
	"github.com/watchbench/apprentice/internal/screen"
	"github.com/watchbench/apprentice/internal/screens/bench"
	"github.com/watchbench/apprentice/internal/screens/career"
	"github.com/watchbench/apprentice/internal/screens/dashboard"
	"github.com/watchbench/apprentice/internal/screens/exam"
	"github.com/watchbench/apprentice/internal/screens/journal"
	"github.com/watchbench/apprentice/internal/screens/library"
	"github.com/watchbench/apprentice/internal/screens/reader"
	"github.com/watchbench/apprentice/internal/state"
	"github.com/watchbench/apprentice/internal/ui/layout"
)

// viewer is implemented by screens that stand for a workspace view.
type viewer interface {
	ViewID() state.View
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  *state.State
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at the dashboard.
func newAppModel(st *state.State) AppModel {
	return AppModel{
		router: router.New(dashboard.New(st)),
		state:  st,
	}
}

// screenFor builds the screen for a workspace view. The dashboard is the
// router root and yields nil.
func screenFor(st *state.State, v state.View) screen.Screen {
	switch v {
	case state.ViewBench:
		return bench.New(st)
	case state.ViewLibrary:
		return library.New(st)
	case state.ViewExam:
		return exam.New(st)
	case state.ViewJournal:
		return journal.New(st)
	case state.ViewCareer:
		return career.New(st)
	default:
		return nil
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case state.OpenViewMsg:
		cmd := m.router.Open(screenFor(m.state, msg.View))
		m.sync()
		return m, cmd

	case state.OpenReaderMsg:
		cmd := m.router.Push(reader.New(m.state, msg.Topic))
		m.sync()
		return m, cmd

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 && !capturesEsc(m.router.Active()) {
				return m, router.Back
			}
		case "1", "2", "3", "4", "5", "6":
			if !capturesInput(m.router.Active()) {
				v := state.Workspace[int(key[0]-'1')]
				slog.Debug("Workspace shortcut", slog.String("view", v.String()))
				return m, state.Open(v)
			}
		}
	}

	cmd := m.router.Update(msg)
	m.sync()
	return m, cmd
}

// sync records the active screen's view in the shared state.
func (m AppModel) sync() {
	if v, ok := m.router.Active().(viewer); ok && v.ViewID() != m.state.View() {
		m.state.SetView(v.ViewID())
	}
}

func capturesEsc(s screen.Screen) bool {
	c, ok := s.(screen.EscCapturer)
	return ok && c.CapturesEsc()
}

func capturesInput(s screen.Screen) bool {
	c, ok := s.(screen.InputCapturer)
	return ok && c.CapturesInput()
}

// status summarizes progress and mentor availability for the header.
func (m AppModel) status() string {
	mentor := "mentor offline"
	if m.state.Mentor.Available() {
		mentor = "mentor online"
	}
	return fmt.Sprintf("Passed %d/%d · %s", m.state.PassedCount(), len(m.state.Catalog.Phases()), mentor)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render lays out header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	active := m.router.Active()
	frame := layout.Frame{Status: m.status(), Hints: m.hints(active)}
	if active != nil {
		frame.Title = active.Title()
	}
	return frame.Render(m.width, m.height, m.router.View)
}

// hints come from the active screen, or fall back to generic navigation.
func (m AppModel) hints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, st *state.State) error {
	p := tea.NewProgram(newAppModel(st), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}

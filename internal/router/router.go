// Package router keeps the stack of screens the application navigates: the
// dashboard at the root, at most one workspace view above it and any
// modals (the reader) on top.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/watchbench/apprentice/internal/screen"
)

// BackMsg closes the top screen. The root is never closed.
type BackMsg struct{}

// Back is a command producing BackMsg.
func Back() tea.Msg { return BackMsg{} }

// Router is a screen stack with a fixed root.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Open makes s the only screen above the root, closing any view or modal
// that was open. A nil s returns to the root.
func (r *Router) Open(s screen.Screen) tea.Cmd {
	clear(r.stack[1:])
	r.stack = r.stack[:1]
	if s == nil {
		return nil
	}
	return r.Push(s)
}

// Push opens s on top of the current screen and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen unless it is the root.
func (r *Router) Pop() {
	if n := len(r.stack); n > 1 {
		r.stack[n-1] = nil
		r.stack = r.stack[:n-1]
	}
}

func (r *Router) Active() screen.Screen { return r.stack[len(r.stack)-1] }

func (r *Router) Depth() int { return len(r.stack) }

// Update handles BackMsg and hands everything else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(BackMsg); ok {
		r.Pop()
		return nil
	}
	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}

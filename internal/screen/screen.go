package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/watchbench/apprentice/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscCapturer is implemented by screens that handle esc themselves at
// the moment, e.g. while a text field has focus. When CapturesEsc
// returns true the app forwards esc instead of popping the screen.
type EscCapturer interface {
	CapturesEsc() bool
}

// InputCapturer is implemented by screens that are reading free text.
// While CapturesInput returns true the app does not treat printable keys
// as global navigation shortcuts.
type InputCapturer interface {
	CapturesInput() bool
}

package state

import tea "charm.land/bubbletea/v2"

// OpenViewMsg asks the app to show a workspace view.
type OpenViewMsg struct {
	View View
}

// OpenReaderMsg asks the app to open the deep-dive reader for Topic.
type OpenReaderMsg struct {
	Topic string
}

// Open returns a command that switches to v.
func Open(v View) tea.Cmd {
	return func() tea.Msg { return OpenViewMsg{View: v} }
}

// Read returns a command that opens the reader for topic.
func Read(topic string) tea.Cmd {
	return func() tea.Msg { return OpenReaderMsg{Topic: topic} }
}

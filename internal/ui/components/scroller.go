package components

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// Scroller is a vertically scrolling region for content taller than the
// screen. It only claims the paging keys so arrow keys stay free for
// the owning screen; set Arrows to let it take up and down too.
type Scroller struct {
	vp viewport.Model
}

// NewScroller returns a soft-wrapping scroller. With arrows set, up/down
// and k/j scroll by line as well.
func NewScroller(arrows bool) Scroller {
	vp := viewport.New()
	vp.SoftWrap = true
	km := viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "space")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithKeys("shift+up")),
		Down:         key.NewBinding(key.WithKeys("shift+down")),
		Left:         key.NewBinding(key.WithDisabled()),
		Right:        key.NewBinding(key.WithDisabled()),
	}
	if arrows {
		km.Up = key.NewBinding(key.WithKeys("up", "k", "shift+up"))
		km.Down = key.NewBinding(key.WithKeys("down", "j", "shift+down"))
	}
	vp.KeyMap = km
	return Scroller{vp: vp}
}

// Update handles scrolling keys and the mouse wheel.
func (s Scroller) Update(msg tea.Msg) (Scroller, tea.Cmd) {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// Render sizes the region, loads content and returns the visible window.
// The scroll position survives content changes where possible.
func (s *Scroller) Render(content string, width, height int) string {
	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	s.vp.SetContent(content)
	return s.vp.View()
}

// Top scrolls back to the first line.
func (s *Scroller) Top() {
	s.vp.GotoTop()
}

// Percent reports the scroll position in [0, 1].
func (s Scroller) Percent() float64 {
	return s.vp.ScrollPercent()
}

// Scrollable reports whether the last rendered content overflowed.
func (s Scroller) Scrollable() bool {
	return s.vp.TotalLineCount() > s.vp.Height()
}

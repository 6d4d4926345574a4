// Package bench is the workbench: movement reference cards, service
// guides, technical data sheets and factory manual links.
package bench

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/watchbench/apprentice/internal/content"
	"github.com/watchbench/apprentice/internal/screen"
	"github.com/watchbench/apprentice/internal/state"
	"github.com/watchbench/apprentice/internal/ui/components"
	"github.com/watchbench/apprentice/internal/ui/layout"
	"github.com/watchbench/apprentice/internal/ui/theme"
)

// Mode is the active bench tab.
type Mode int

const (
	ModeVisual Mode = iota
	ModeService
	ModeDataSheet
	ModeManual
)

var modeLabels = []string{"Visual Workbench", "Service Guide", "Technical Data", "Factory Manual"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeLabels) {
		return "unknown"
	}
	return modeLabels[m]
}

const (
	noGuide = "Service guide not available."
	noSpec  = "No reference card on file for this part."
)

// BenchScreen shows one movement at a time.
type BenchScreen struct {
	catalog   *content.Catalog
	movements []content.Movement
	partNames []string

	movement     int
	mode         Mode
	partCursor   int
	selectedPart string

	search components.TextInput
	scroll components.Scroller
}

var _ screen.Screen = (*BenchScreen)(nil)

// New creates the bench screen on the first movement.
func New(st *state.State) *BenchScreen {
	return &BenchScreen{
		catalog:   st.Catalog,
		movements: st.Catalog.Movements(),
		partNames: st.Catalog.PartNames(),
		search:    components.NewTextInput("Search parts by name/ID...", 40),
		scroll:    components.NewScroller(false),
	}
}

func (b *BenchScreen) Init() tea.Cmd {
	return nil
}

func (b *BenchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if b.search.Focused() {
			b.search, cmd = b.search.Update(msg)
			return b, cmd
		}
		b.scroll, cmd = b.scroll.Update(msg)
		return b, cmd
	}

	if b.search.Focused() {
		switch kmsg.String() {
		case "esc", "enter":
			b.search.Blur()
			return b, nil
		}
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		b.scroll.Top()
		return b, cmd
	}

	switch kmsg.String() {
	case "tab":
		b.setMode((b.mode + 1) % Mode(len(modeLabels)))
	case "shift+tab":
		b.setMode((b.mode + Mode(len(modeLabels)) - 1) % Mode(len(modeLabels)))
	case "left", "h":
		b.selectMovement(b.movement - 1)
	case "right", "l":
		b.selectMovement(b.movement + 1)
	case "up", "k":
		if b.mode == ModeVisual && b.partCursor > 0 {
			b.partCursor--
		}
	case "down", "j":
		if b.mode == ModeVisual && b.partCursor < len(b.partNames)-1 {
			b.partCursor++
		}
	case "enter":
		if b.mode == ModeVisual && b.partCursor < len(b.partNames) {
			name := b.partNames[b.partCursor]
			if b.selectedPart == name {
				b.selectedPart = ""
			} else {
				b.selectedPart = name
			}
		}
	case "/":
		if b.mode == ModeDataSheet {
			return b, b.search.Focus()
		}
	default:
		var cmd tea.Cmd
		b.scroll, cmd = b.scroll.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b *BenchScreen) setMode(m Mode) {
	b.mode = m
	b.scroll.Top()
}

func (b *BenchScreen) selectMovement(i int) {
	if len(b.movements) == 0 {
		return
	}
	b.movement = (i + len(b.movements)) % len(b.movements)
	b.scroll.Top()
}

func (b *BenchScreen) current() content.Movement {
	if len(b.movements) == 0 {
		return content.Movement{}
	}
	return b.movements[b.movement]
}

func (b *BenchScreen) View(width, height int) string {
	cw := components.ContentWidth(width, 110)
	m := b.current()

	var head strings.Builder
	head.WriteString(theme.Hint.Render("◂ ") + theme.Title.Render(m.Name) + theme.Hint.Render(" ▸"))
	head.WriteString("  ")
	head.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %d parts · %s", m.Type, m.Parts, m.Difficulty)))
	head.WriteString("\n")
	head.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(m.Description))
	head.WriteString("\n\n")
	head.WriteString(components.Tabs(modeLabels, int(b.mode)))
	head.WriteString("\n\n")

	var body string
	switch b.mode {
	case ModeVisual:
		body = b.renderVisual(cw)
	case ModeService:
		body = b.renderService(cw)
	case ModeDataSheet:
		body = b.renderDataSheet(cw)
	case ModeManual:
		body = b.renderManual(cw)
	}

	top := head.String()
	bodyHeight := max(height-lipgloss.Height(top), 1)
	return lipgloss.NewStyle().PaddingLeft(2).Render(top + b.scroll.Render(body, cw, bodyHeight))
}

func (b *BenchScreen) renderVisual(cw int) string {
	var s strings.Builder
	s.WriteString(theme.Hint.Render("Explore key movement components. Select a part to see its function, clearances and assembly requirements."))
	s.WriteString("\n\n")
	for i, name := range b.partNames {
		marker := "  "
		style := theme.Unselected
		if i == b.partCursor {
			marker = "▸ "
			style = theme.Selected
		}
		if name == b.selectedPart {
			name += "  ◆"
		}
		s.WriteString(style.Render(marker + name))
		s.WriteString("\n")
	}

	if b.selectedPart == "" {
		return s.String()
	}
	s.WriteString("\n")

	spec, ok := b.catalog.PartSpec(b.selectedPart)
	if !ok {
		s.WriteString(components.Panel(b.selectedPart, theme.Hint.Render(noSpec), cw, true))
		return s.String()
	}

	wrap := lipgloss.NewStyle().Width(cw - 4)
	var card strings.Builder
	card.WriteString(theme.Hint.Render(strings.ToUpper(spec.Name)))
	card.WriteString("\n")
	card.WriteString(wrap.Italic(true).Foreground(theme.Text).Render(spec.Description))
	card.WriteString("\n\n")
	card.WriteString(theme.Label.Render("GENERAL REQUIREMENTS"))
	card.WriteString("\n")
	card.WriteString(components.Bullets(spec.Requirements, cw-4))
	card.WriteString("\n\n")
	card.WriteString(theme.Label.Render("CLEARANCE  ") + theme.Mono.Render(spec.Clearances))
	card.WriteString("\n")
	card.WriteString(theme.Label.Render("LUBRICATION  ") + lipgloss.NewStyle().Foreground(theme.Secondary).Render(spec.Lubrication))
	card.WriteString("\n\n")
	card.WriteString(theme.Label.Render("MASTER'S CRITICAL CHECK"))
	card.WriteString("\n")
	card.WriteString(wrap.Italic(true).Foreground(theme.Accent).Render(spec.CriticalCheck))

	s.WriteString(components.Panel(spec.Title, card.String(), cw, true))
	return s.String()
}

func (b *BenchScreen) renderService(cw int) string {
	guide, ok := b.catalog.ServiceGuide(b.current().ID)
	if !ok {
		guide = noGuide
	}
	return theme.Title.Render("Technical Service Procedure") + "\n\n" +
		lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(guide)
}

func (b *BenchScreen) renderDataSheet(cw int) string {
	m := b.current()
	parts := b.catalog.SearchParts(m.ID, b.search.Value())

	var s strings.Builder
	s.WriteString(theme.Title.Render("Exploded Parts List: " + strings.ToUpper(m.ID)))
	s.WriteString("\n")
	s.WriteString(b.search.View())
	s.WriteString("\n\n")

	if len(parts) == 0 {
		s.WriteString(theme.Hint.Render("No parts match."))
		return s.String()
	}

	idW, nameW, catW, lubeW := 8, 24, 14, 18
	notesW := max(cw-idW-nameW-catW-lubeW, 10)
	row := func(cols ...string) string {
		widths := []int{idW, nameW, catW, lubeW, notesW}
		var r strings.Builder
		for i, c := range cols {
			r.WriteString(lipgloss.NewStyle().Width(widths[i]).MaxHeight(1).Render(c))
		}
		return r.String()
	}

	s.WriteString(theme.Label.Render(row("PART ID", "NAME", "CATEGORY", "LUBRICATION", "SERVICE NOTES")))
	s.WriteString("\n")
	for _, p := range parts {
		lube := p.Lubrication
		if lube == "" {
			lube = "-"
		}
		s.WriteString(row(theme.Mono.Render(p.ID), p.Name, p.Category, lube, theme.Hint.Render(p.Notes)))
		s.WriteString("\n")
	}
	return s.String()
}

func (b *BenchScreen) renderManual(cw int) string {
	m := b.current()
	var s strings.Builder
	s.WriteString(theme.Badge.Render("PDF") + " " + theme.Mono.Render(m.Name+"_TechGuide.pdf"))
	s.WriteString("\n\n")
	s.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(
		"Factory documents open outside the workshop. Use the link below in your browser to view the official PDF."))
	s.WriteString("\n\n")
	s.WriteString(theme.Label.Render("FACTORY REFERENCE"))
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Underline(true).Render(m.ManualURL))
	return s.String()
}

func (b *BenchScreen) Title() string {
	return state.ViewBench.String()
}

// ViewID reports the workspace view this screen represents.
func (b *BenchScreen) ViewID() state.View { return state.ViewBench }

// Mode returns the active tab.
func (b *BenchScreen) Mode() Mode { return b.mode }

// Movement returns the movement on the bench.
func (b *BenchScreen) Movement() content.Movement { return b.current() }

// SelectedPart returns the part whose card is open, or "".
func (b *BenchScreen) SelectedPart() string { return b.selectedPart }

// CapturesEsc keeps esc for leaving the search field.
func (b *BenchScreen) CapturesEsc() bool { return b.search.Focused() }

// CapturesInput keeps printable keys while searching.
func (b *BenchScreen) CapturesInput() bool { return b.search.Focused() }

func (b *BenchScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Movement"},
		{Key: "Tab", Description: "Mode"},
	}
	switch b.mode {
	case ModeVisual:
		hints = append(hints, layout.KeyHint{Key: "↑↓/Enter", Description: "Part"})
	case ModeDataSheet:
		if b.search.Focused() {
			return []layout.KeyHint{{Key: "Enter/Esc", Description: "Done"}}
		}
		hints = append(hints, layout.KeyHint{Key: "/", Description: "Search"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Package dashboard is the home screen: the apprenticeship path, the
// syllabus and the workspace menu.
package dashboard

import (
	"fmt"
	"strconv"
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

const menuWidth = 26

type focus int

const (
	focusPath focus = iota
	focusMenu
)

// DashboardScreen lists phases then lessons under one cursor, with the
// workspace menu beside them.
type DashboardScreen struct {
	state    *state.State
	phases   []content.Phase
	lessons  []content.Lesson
	cursor   int
	expanded int // lesson ID, 0 when none
	focus    focus
	menu     components.Menu
	scroll   components.Scroller
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(st *state.State) *DashboardScreen {
	var items []components.MenuItem
	for i, v := range state.Workspace {
		if v == state.ViewDashboard {
			continue
		}
		items = append(items, components.MenuItem{
			Label:  v.String(),
			Hint:   strconv.Itoa(i + 1),
			Action: func() tea.Cmd { return state.Open(v) },
		})
	}
	items = append(items, components.MenuItem{Label: "Leave the workshop", Action: func() tea.Cmd { return tea.Quit }})

	return &DashboardScreen{
		state:   st,
		phases:  st.Catalog.Phases(),
		lessons: st.Catalog.Lessons(),
		menu:    components.NewMenu(items),
		scroll:  components.NewScroller(false),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.scroll, cmd = d.scroll.Update(msg)
		return d, cmd
	}

	if kmsg.String() == "tab" {
		if d.focus == focusPath {
			d.focus = focusMenu
		} else {
			d.focus = focusPath
		}
		return d, nil
	}

	if d.focus == focusMenu {
		var cmd tea.Cmd
		d.menu, cmd = d.menu.Update(msg)
		return d, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.phases)+len(d.lessons)-1 {
			d.cursor++
		}
	case "enter":
		return d, d.activate()
	case "s":
		if l, ok := d.selectedLesson(); ok {
			return d, state.Read(l.Title)
		}
	default:
		var cmd tea.Cmd
		d.scroll, cmd = d.scroll.Update(msg)
		return d, cmd
	}
	return d, nil
}

// activate opens a phase's detailed curriculum, or expands a lesson. A
// second Enter on an expanded lesson opens its deep dive.
func (d *DashboardScreen) activate() tea.Cmd {
	if d.cursor < len(d.phases) {
		return state.Read(d.phases[d.cursor].CurriculumTopic())
	}
	l, ok := d.selectedLesson()
	if !ok {
		return nil
	}
	if d.expanded == l.ID {
		return state.Read(l.Title)
	}
	d.expanded = l.ID
	return nil
}

func (d *DashboardScreen) selectedLesson() (content.Lesson, bool) {
	i := d.cursor - len(d.phases)
	if i < 0 || i >= len(d.lessons) {
		return content.Lesson{}, false
	}
	return d.lessons[i], true
}

func (d *DashboardScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width)

	menuBox := components.Panel("Workspace", d.menu.View(), menuWidth, d.focus == focusMenu)
	var mainWidth int
	if compact {
		mainWidth = components.ContentWidth(width, 0)
	} else {
		mainWidth = components.ContentWidth(width-menuWidth-2, 100)
	}

	body := d.renderPath(mainWidth)
	if compact {
		menuHeight := lipgloss.Height(menuBox)
		return lipgloss.NewStyle().PaddingLeft(2).Render(
			menuBox + "\n" + d.scroll.Render(body, mainWidth, max(height-menuHeight-1, 1)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Render(menuBox),
		d.scroll.Render(body, mainWidth, height),
	)
}

func (d *DashboardScreen) renderPath(cw int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(cw)

	b.WriteString(theme.Title.Render("The Horological Apprenticeship"))
	b.WriteString("\n")
	b.WriteString(wrap.Foreground(theme.TextDim).Render(
		`Becoming a professional watchmaker is a journey of "microns and patience." Master the WOSTEP standards through a rigorous 12-month program.`))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("Phases passed",
		float64(d.state.PassedCount())/float64(max(len(d.phases), 1)), true, cw).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Label.Render("APPRENTICESHIP BLUEPRINT"))
	b.WriteString("\n")
	for i, p := range d.phases {
		b.WriteString(d.renderPhase(p, cw, d.focus == focusPath && i == d.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Label.Render(fmt.Sprintf("FULL CURRICULUM · %d LESSONS", len(d.lessons))))
	b.WriteString("\n")
	for i, l := range d.lessons {
		selected := d.focus == focusPath && len(d.phases)+i == d.cursor
		style, marker := theme.Unselected, "  "
		if selected {
			style, marker = theme.Selected, "▸ "
		}
		b.WriteString(style.Render(marker + l.Title))
		b.WriteString("\n")
		if d.expanded == l.ID {
			b.WriteString(lipgloss.NewStyle().Width(cw-4).PaddingLeft(4).Italic(true).Foreground(theme.TextDim).Render(l.Summary))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(theme.Hint.Render("Enter or S: study module")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (d *DashboardScreen) renderPhase(p content.Phase, cw int, active bool) string {
	status := ""
	if d.state.Passed(p.ID) {
		status = " " + theme.Badge.Render("PASSED")
	} else if best, ok := d.state.BestScore(p.ID); ok {
		status = " " + theme.Hint.Render(fmt.Sprintf("best %d%%", best))
	}

	inner := cw - 4
	var b strings.Builder
	b.WriteString(theme.Hint.Render(strings.ToUpper(p.Duration)) + status)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.TextDim).Render(p.Goal))
	if active {
		b.WriteString("\n\n")
		b.WriteString(theme.Label.Render("KNOWLEDGE CORE"))
		b.WriteString("\n")
		b.WriteString(components.Bullets(p.Knowledge, inner))
		b.WriteString("\n\n")
		if len(p.Reading) > 0 {
			b.WriteString(theme.Label.Render("READING"))
			b.WriteString("\n")
			b.WriteString(components.Bullets(p.Reading, inner))
			b.WriteString("\n\n")
		}
		if len(p.Homework) > 0 {
			b.WriteString(theme.Label.Render("BENCH HOMEWORK"))
			b.WriteString("\n")
			b.WriteString(components.Bullets(p.Homework, inner))
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Label.Render("PHASE QUIZ  ") + theme.Body.Render(p.QuizTopic))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Enter: detailed curriculum"))
	}
	return components.Panel(p.Title, b.String(), cw, active)
}

func (d *DashboardScreen) Title() string {
	return state.ViewDashboard.String()
}

// ViewID reports the workspace view this screen represents.
func (d *DashboardScreen) ViewID() state.View { return state.ViewDashboard }

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.focus == focusMenu {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Tab", Description: "Curriculum"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Tab", Description: "Menu"},
		{Key: "1-6", Description: "Jump"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

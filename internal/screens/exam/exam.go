// Package exam is the examination hall: phase selection, the question
// runner and the result card.
package exam

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/watchbench/apprentice/internal/exam"
	"github.com/watchbench/apprentice/internal/screen"
	"github.com/watchbench/apprentice/internal/state"
	"github.com/watchbench/apprentice/internal/ui/components"
	"github.com/watchbench/apprentice/internal/ui/layout"
	"github.com/watchbench/apprentice/internal/ui/theme"
)

// ExamScreen renders whichever state the exam engine is in.
type ExamScreen struct {
	state  *state.State
	cursor int
	mc     components.MultiChoice
	notice string
}

var _ screen.Screen = (*ExamScreen)(nil)

// New creates the exam screen. An attempt already in progress resumes.
func New(st *state.State) *ExamScreen {
	e := &ExamScreen{state: st}
	if st.Exam.Session() != nil {
		e.loadQuestion()
	}
	return e
}

func (e *ExamScreen) Init() tea.Cmd {
	return nil
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}
	switch e.state.Exam.State() {
	case engine.SelectingPhase:
		e.updateHall(kmsg.String())
	case engine.InProgress:
		e.updateQuestion(kmsg)
	case engine.Completed:
		e.updateResult(kmsg.String())
	}
	return e, nil
}

func (e *ExamScreen) updateHall(key string) {
	phases := e.state.Catalog.Phases()
	switch key {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(phases)-1 {
			e.cursor++
		}
	case "enter":
		if e.cursor >= len(phases) {
			return
		}
		if _, err := e.state.Exam.Start(phases[e.cursor].ID); err != nil {
			e.notice = "No examination is on file for this phase."
			return
		}
		e.notice = ""
		e.loadQuestion()
	}
}

func (e *ExamScreen) updateQuestion(kmsg tea.KeyMsg) {
	sess := e.state.Exam.Session()
	switch kmsg.String() {
	case "esc":
		e.state.Exam.Exit()
		return
	case "enter":
		if _, answered := sess.Answered(); answered {
			if err := sess.Advance(); err != nil {
				return
			}
			if sess.Completed() {
				e.state.RecordResult(sess.Result())
				return
			}
			e.loadQuestion()
			return
		}
	}

	e.mc, _ = e.mc.Update(kmsg)
	if e.mc.Submitted {
		// The widget only offers indices of real options.
		_ = sess.Submit(e.mc.ChosenIndex)
	}
}

func (e *ExamScreen) updateResult(key string) {
	switch key {
	case "r", "R":
		if _, err := e.state.Exam.Restart(); err == nil {
			e.loadQuestion()
		}
	case "esc", "enter":
		e.state.Exam.Exit()
	}
}

// loadQuestion points the choice widget at the session's current question.
func (e *ExamScreen) loadQuestion() {
	sess := e.state.Exam.Session()
	if sess == nil || sess.Completed() {
		return
	}
	q := sess.Current()
	e.mc = components.NewMultiChoice(q.Question, q.Options, q.Correct)
	if chosen, ok := sess.Answered(); ok {
		e.mc.Selected = chosen
		e.mc.Submitted = true
		e.mc.ChosenIndex = chosen
	}
}

func (e *ExamScreen) View(width, height int) string {
	cw := components.ContentWidth(width, 90)
	var body string
	switch e.state.Exam.State() {
	case engine.SelectingPhase:
		body = e.renderHall(cw)
	case engine.InProgress:
		body = e.renderQuestion(cw)
	case engine.Completed:
		body = e.renderResult(cw)
	}
	return lipgloss.NewStyle().PaddingLeft(2).MaxHeight(height).Render(body)
}

func (e *ExamScreen) renderHall(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("The Examination Hall"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Validate your theoretical knowledge. A score of %d%% passes the phase.", engine.PassMark)))
	b.WriteString("\n\n")

	for i, p := range e.state.Catalog.Phases() {
		questions, _ := e.state.Catalog.Quiz(p.ID)
		status := theme.Hint.Render("not attempted")
		if best, ok := e.state.BestScore(p.ID); ok {
			status = theme.Hint.Render(fmt.Sprintf("best %d%%", best))
			if e.state.Passed(p.ID) {
				status = theme.Badge.Render("PASSED") + " " + status
			}
		}
		card := fmt.Sprintf("%s\n%s  %s  %s",
			theme.Body.Bold(true).Render(p.QuizTopic),
			theme.Hint.Render(fmt.Sprintf("%d questions", len(questions))),
			lipgloss.NewStyle().Foreground(theme.Accent).Render("Timed"),
			status,
		)
		b.WriteString(components.Panel(fmt.Sprintf("Phase %d Examination", p.ID), card, cw, i == e.cursor))
		b.WriteString("\n")
	}
	if e.notice != "" {
		b.WriteString(theme.Incorrect.Render(e.notice))
		b.WriteString("\n")
	}
	return b.String()
}

func (e *ExamScreen) renderQuestion(cw int) string {
	sess := e.state.Exam.Session()
	var b strings.Builder

	info := fmt.Sprintf("Phase %d · Question %d of %d · Score %d", sess.Phase(), sess.Index()+1, sess.Len(), sess.Score())
	b.WriteString(theme.Label.Render(info))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(sess.Index())/float64(sess.Len()), false, cw).View())
	b.WriteString("\n\n")
	b.WriteString(e.mc.View(cw))

	if _, answered := sess.Answered(); answered {
		q := sess.Current()
		verdict := theme.Incorrect.Render("Not quite.")
		if e.mc.IsCorrect() {
			verdict = theme.Correct.Render("Correct.")
		}
		b.WriteString("\n")
		b.WriteString(verdict)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Italic(true).Render(q.Explanation))
		b.WriteString("\n\n")
		next := "Next question"
		if sess.IsLast() {
			next = "See results"
		}
		b.WriteString(theme.Hint.Render("Enter: " + next))
	} else {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(e.mc.Options))))
	}
	return b.String()
}

func (e *ExamScreen) renderResult(cw int) string {
	r := e.state.Exam.Session().Result()
	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Phase %d Examination Complete", r.Phase)))
	b.WriteString("\n\n")

	pct := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(fmt.Sprintf("%d%%", r.Percent))
	b.WriteString(pct)
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("You answered %d of %d correctly.", r.Score, r.Total)))
	b.WriteString("\n\n")
	if r.Passed {
		b.WriteString(theme.Correct.Render("Passed. The master signs off on this phase."))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Not yet. %d%% is required to pass.", engine.PassMark)))
	}
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("Score", float64(r.Percent)/100, true, cw).View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("R: Retake   Esc: Back to the hall"))
	return b.String()
}

func (e *ExamScreen) Title() string {
	return state.ViewExam.String()
}

// ViewID reports the workspace view this screen represents.
func (e *ExamScreen) ViewID() state.View { return state.ViewExam }

// CapturesEsc returns esc to the hall while an attempt is open.
func (e *ExamScreen) CapturesEsc() bool {
	return e.state.Exam.State() != engine.SelectingPhase
}

// CapturesInput keeps the number keys for answering.
func (e *ExamScreen) CapturesInput() bool {
	return e.state.Exam.State() != engine.SelectingPhase
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	switch e.state.Exam.State() {
	case engine.InProgress:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Answer"},
			{Key: "Enter", Description: "Select/Next"},
			{Key: "Esc", Description: "Leave exam"},
		}
	case engine.Completed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "Esc", Description: "Hall"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Phase"},
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

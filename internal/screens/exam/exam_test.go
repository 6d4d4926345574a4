package exam

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	engine "github.com/watchbench/apprentice/internal/exam"
	"github.com/watchbench/apprentice/internal/state"
)

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func digit(n int) tea.KeyPressMsg {
	r := rune('0' + n)
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// answerAll answers every question of the running attempt, correctly for
// the first `correct` questions.
func answerAll(t *testing.T, e *ExamScreen, correct int) {
	t.Helper()
	for i := 0; e.state.Exam.State() == engine.InProgress; i++ {
		q := e.state.Exam.Session().Current()
		opt := q.Correct
		if i >= correct {
			opt = (q.Correct + 1) % len(q.Options)
		}
		e.Update(digit(opt + 1))
		e.Update(enter)
	}
}

func TestHallStartsSelectedPhase(t *testing.T) {
	st := state.New(nil, nil)
	e := New(st)

	e.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	e.Update(enter)

	if st.Exam.State() != engine.InProgress {
		t.Fatalf("expected InProgress, got %s", st.Exam.State())
	}
	if st.Exam.Session().Phase() != 2 {
		t.Errorf("Phase = %d, want 2", st.Exam.Session().Phase())
	}
	if !e.CapturesEsc() || !e.CapturesInput() {
		t.Error("a running exam should capture esc and digits")
	}
}

func TestAnswerShowsExplanationThenAdvances(t *testing.T) {
	st := state.New(nil, nil)
	e := New(st)
	e.Update(enter)

	sess := st.Exam.Session()
	q := sess.Current()
	e.Update(digit(q.Correct + 1))

	if sess.Score() != 1 {
		t.Errorf("Score = %d, want 1", sess.Score())
	}
	if !strings.Contains(e.View(100, 40), "Correct.") {
		t.Error("expected verdict after answering")
	}

	// A second answer for the same question changes nothing.
	e.Update(digit((q.Correct+1)%len(q.Options) + 1))
	if got, _ := sess.Answered(); got != q.Correct {
		t.Errorf("answer changed to %d", got)
	}

	e.Update(enter)
	if sess.Index() != 1 {
		t.Errorf("Index = %d, want 1", sess.Index())
	}
}

func TestEnterWithoutAnswerSelectsHighlighted(t *testing.T) {
	st := state.New(nil, nil)
	e := New(st)
	e.Update(enter)

	e.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	e.Update(enter)

	got, ok := st.Exam.Session().Answered()
	if !ok || got != 1 {
		t.Errorf("Answered = %d (%v), want 1", got, ok)
	}
}

func TestOutOfRangeDigitIgnored(t *testing.T) {
	st := state.New(nil, nil)
	e := New(st)
	e.Update(enter)

	e.Update(digit(9))
	if _, ok := st.Exam.Session().Answered(); ok {
		t.Error("digit past the last option must be ignored")
	}
}

func TestCompletionRecordsResult(t *testing.T) {
	st := state.New(nil, nil)
	e := New(st)
	e.Update(enter)

	answerAll(t, e, 100)

	if st.Exam.State() != engine.Completed {
		t.Fatalf("expected Completed, got %s", st.Exam.State())
	}
	if !st.Passed(1) {
		t.Error("perfect run should pass phase 1")
	}
	if !strings.Contains(e.View(100, 40), "100%") {
		t.Error("expected percentage on the result card")
	}
}

func TestRetakeResetsScore(t *testing.T) {
	st := state.New(nil, nil)
	e := New(st)
	e.Update(enter)
	answerAll(t, e, 100)

	first := st.Exam.Session()
	e.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})

	second := st.Exam.Session()
	if second == first {
		t.Fatal("retake must start a fresh attempt")
	}
	if second.Score() != 0 || second.Index() != 0 {
		t.Errorf("retake did not reset: score=%d index=%d", second.Score(), second.Index())
	}
	if _, ok := second.Answered(); ok {
		t.Error("retake should start unanswered")
	}
}

func TestEscReturnsToHall(t *testing.T) {
	st := state.New(nil, nil)
	e := New(st)
	e.Update(enter)

	e.Update(esc)
	if st.Exam.State() != engine.SelectingPhase || st.Exam.Session() != nil {
		t.Errorf("expected hall with no session, got %s", st.Exam.State())
	}
	if e.CapturesEsc() {
		t.Error("hall should let esc through")
	}
}

func TestHallView(t *testing.T) {
	e := New(state.New(nil, nil))
	view := e.View(100, 40)
	if !strings.Contains(view, "Timed") {
		t.Error("expected the Timed label on phase cards")
	}
	if e.Title() != "The Exam Room" {
		t.Errorf("Title = %q", e.Title())
	}
	if len(e.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(e.KeyHints()))
	}
}

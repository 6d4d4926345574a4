// Package exam drives one examination session per phase: question
// sequencing, answer scoring and the completion summary.
package exam

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/watchbench/apprentice/internal/content"
)

// PassMark is the percentage required to pass a phase exam.
const PassMark = 80

// Sentinel errors returned by the engine. Callers at the UI boundary
// treat them as ignored input, never as user-visible failures.
var (
	ErrNoQuiz           = errors.New("no quiz available for phase")
	ErrEmptyQuiz        = errors.New("quiz has no questions")
	ErrNoSession        = errors.New("no exam in progress")
	ErrCompleted        = errors.New("exam already completed")
	ErrNotAnswered      = errors.New("current question has not been answered")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// State is the engine's top-level state.
type State int

const (
	SelectingPhase State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case SelectingPhase:
		return "selecting-phase"
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// QuizSource supplies quizzes by phase. *content.Catalog satisfies it.
type QuizSource interface {
	Quiz(phaseID int) ([]content.QuizQuestion, bool)
}

// Result summarizes a finished exam.
type Result struct {
	Phase   int
	Score   int
	Total   int
	Percent int
	Passed  bool
}

// Percent returns round(100*score/total). A zero total yields 0.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// Session is one attempt at a phase quiz. It is not safe for concurrent
// use; the owning screen processes one user action at a time.
type Session struct {
	id        string
	phase     int
	questions []content.QuizQuestion
	cursor    int
	score     int
	answered  int // -1 while unanswered
	completed bool
}

func newSession(phase int, questions []content.QuizQuestion) *Session {
	return &Session{
		id:        uuid.NewString(),
		phase:     phase,
		questions: questions,
		answered:  -1,
	}
}

// ID uniquely identifies the attempt.
func (s *Session) ID() string { return s.id }

// Phase returns the phase under examination.
func (s *Session) Phase() int { return s.phase }

// Index returns the 0-based cursor of the current question.
func (s *Session) Index() int { return s.cursor }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Completed reports whether the user advanced past the last question.
func (s *Session) Completed() bool { return s.completed }

// Current returns the question under the cursor.
func (s *Session) Current() content.QuizQuestion { return s.questions[s.cursor] }

// IsLast reports whether the cursor is on the final question.
func (s *Session) IsLast() bool { return s.cursor == len(s.questions)-1 }

// Answered returns the option chosen for the current question.
func (s *Session) Answered() (int, bool) {
	if s.answered < 0 {
		return 0, false
	}
	return s.answered, true
}

// Submit records an answer for the current question. A second submission
// for the same question is a no-op.
func (s *Session) Submit(option int) error {
	if s.completed {
		return ErrCompleted
	}
	if s.answered >= 0 {
		return nil
	}
	q := s.questions[s.cursor]
	if option < 0 || option >= len(q.Options) {
		return ErrOptionOutOfRange
	}
	s.answered = option
	if q.IsCorrect(option) {
		s.score++
	}
	return nil
}

// Advance moves past an answered question, completing the session after
// the last one.
func (s *Session) Advance() error {
	if s.completed {
		return ErrCompleted
	}
	if s.answered < 0 {
		return ErrNotAnswered
	}
	if s.IsLast() {
		s.completed = true
		return nil
	}
	s.cursor++
	s.answered = -1
	return nil
}

// Result summarizes the session. Meaningful once Completed is true.
func (s *Session) Result() Result {
	pct := Percent(s.score, len(s.questions))
	return Result{
		Phase:   s.phase,
		Score:   s.score,
		Total:   len(s.questions),
		Percent: pct,
		Passed:  pct >= PassMark,
	}
}

// Engine owns at most one active session.
type Engine struct {
	source  QuizSource
	session *Session
}

// NewEngine creates an engine reading quizzes from source.
func NewEngine(source QuizSource) *Engine {
	return &Engine{source: source}
}

// State returns the engine's top-level state.
func (e *Engine) State() State {
	switch {
	case e.session == nil:
		return SelectingPhase
	case e.session.completed:
		return Completed
	default:
		return InProgress
	}
}

// Session returns the active session, or nil while selecting a phase.
func (e *Engine) Session() *Session { return e.session }

// Start begins a fresh session for phaseID, replacing any active one.
// Empty quizzes are refused so a percentage is always defined.
func (e *Engine) Start(phaseID int) (*Session, error) {
	questions, ok := e.source.Quiz(phaseID)
	if !ok {
		return nil, ErrNoQuiz
	}
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	e.session = newSession(phaseID, questions)
	return e.session, nil
}

// Restart discards the active session and starts a new attempt at the
// same phase.
func (e *Engine) Restart() (*Session, error) {
	if e.session == nil {
		return nil, ErrNoSession
	}
	return e.Start(e.session.phase)
}

// Exit discards the active session and returns to phase selection.
func (e *Engine) Exit() {
	e.session = nil
}

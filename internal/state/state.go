// Package state holds the application-wide UI state: which workspace view
// is showing, which phase the journal files under, the open deep-dive
// topic and the best exam result per phase. Screens receive a *State by
// injection; nothing here is global.
package state

import (
	"github.com/watchbench/apprentice/internal/content"
	"github.com/watchbench/apprentice/internal/exam"
	"github.com/watchbench/apprentice/internal/journal"
	"github.com/watchbench/apprentice/internal/library"
	"github.com/watchbench/apprentice/internal/mentor"
)

// View identifies a top-level workspace view.
type View int

const (
	ViewDashboard View = iota
	ViewBench
	ViewLibrary
	ViewReader
	ViewExam
	ViewJournal
	ViewCareer
)

func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "The Path"
	case ViewBench:
		return "The Bench"
	case ViewLibrary:
		return "The Library"
	case ViewReader:
		return "Deep Dive"
	case ViewExam:
		return "The Exam Room"
	case ViewJournal:
		return "Service Book"
	case ViewCareer:
		return "Career Hub"
	default:
		return "unknown"
	}
}

// Workspace lists the views reachable from the sidebar, in menu order.
// The reader is a modal and is opened from a topic instead.
var Workspace = []View{ViewDashboard, ViewBench, ViewLibrary, ViewExam, ViewJournal, ViewCareer}

type phaseScore struct {
	best   int
	passed bool
}

// State is the single controller for UI-level state. It is owned by the
// Bubble Tea update loop and is not safe for concurrent use; background
// commands must go through the component types (Journal is safe).
type State struct {
	Catalog *content.Catalog
	Mentor  *mentor.Mentor
	Library *library.Library
	Exam    *exam.Engine
	Journal *journal.Journal

	view         View
	journalPhase int
	readerTopic  string
	scores       map[int]phaseScore
}

// New wires the components around catalog. A nil mentor is allowed: every
// generated text then resolves to its fallback.
func New(catalog *content.Catalog, m *mentor.Mentor) *State {
	if catalog == nil {
		catalog = content.Default()
	}
	if m == nil {
		m = mentor.New(nil, mentor.DefaultConfig())
	}
	journalPhase := 1
	if phases := catalog.Phases(); len(phases) > 0 {
		journalPhase = phases[0].ID
	}
	return &State{
		Catalog:      catalog,
		Mentor:       m,
		Library:      library.New(catalog, m),
		Exam:         exam.NewEngine(catalog),
		Journal:      journal.New(),
		view:         ViewDashboard,
		journalPhase: journalPhase,
		scores:       make(map[int]phaseScore),
	}
}

// View returns the selected view.
func (s *State) View() View { return s.view }

// SetView selects v. Leaving the reader forgets its topic.
func (s *State) SetView(v View) {
	s.view = v
	if v != ViewReader {
		s.readerTopic = ""
	}
}

// OpenReader selects the reader view for topic.
func (s *State) OpenReader(topic string) {
	s.view = ViewReader
	s.readerTopic = topic
}

// ReaderTopic returns the open deep-dive topic, or "" when none is open.
func (s *State) ReaderTopic() string { return s.readerTopic }

// JournalPhase returns the phase new journal entries are filed under.
func (s *State) JournalPhase() int { return s.journalPhase }

// SelectJournalPhase sets the journal phase. Unknown phases are ignored.
func (s *State) SelectJournalPhase(id int) bool {
	if _, ok := s.Catalog.Phase(id); !ok {
		return false
	}
	s.journalPhase = id
	return true
}

// CycleJournalPhase moves the journal phase to the next one in catalog
// order, wrapping around.
func (s *State) CycleJournalPhase() {
	phases := s.Catalog.Phases()
	for i, p := range phases {
		if p.ID == s.journalPhase {
			s.journalPhase = phases[(i+1)%len(phases)].ID
			return
		}
	}
}

// RecordResult keeps the best percentage per phase. A phase stays passed
// once any attempt has passed.
func (s *State) RecordResult(r exam.Result) {
	prev := s.scores[r.Phase]
	s.scores[r.Phase] = phaseScore{
		best:   max(prev.best, r.Percent),
		passed: prev.passed || r.Passed,
	}
}

// Passed reports whether any exam for the phase has passed.
func (s *State) Passed(phase int) bool { return s.scores[phase].passed }

// BestScore returns the best percentage for the phase and whether the
// phase has been attempted.
func (s *State) BestScore(phase int) (int, bool) {
	sc, ok := s.scores[phase]
	return sc.best, ok
}

// PassedCount returns how many phases have a passing exam.
func (s *State) PassedCount() int {
	n := 0
	for _, sc := range s.scores {
		if sc.passed {
			n++
		}
	}
	return n
}

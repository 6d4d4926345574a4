package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/watchbench/apprentice/internal/exam"
)

func TestNewDefaults(t *testing.T) {
	s := New(nil, nil)

	assert.Equal(t, ViewDashboard, s.View())
	assert.Equal(t, 1, s.JournalPhase())
	assert.Empty(t, s.ReaderTopic())
	assert.False(t, s.Mentor.Available())
	assert.Equal(t, exam.SelectingPhase, s.Exam.State())
	assert.Zero(t, s.Journal.Len())
}

func TestReaderTopicClearedOnLeave(t *testing.T) {
	s := New(nil, nil)

	s.OpenReader("Hooke's Law")
	assert.Equal(t, ViewReader, s.View())
	assert.Equal(t, "Hooke's Law", s.ReaderTopic())

	s.SetView(ViewReader)
	assert.Equal(t, "Hooke's Law", s.ReaderTopic())

	s.SetView(ViewLibrary)
	assert.Empty(t, s.ReaderTopic())
}

func TestJournalPhaseSelection(t *testing.T) {
	s := New(nil, nil)

	assert.True(t, s.SelectJournalPhase(3))
	assert.Equal(t, 3, s.JournalPhase())

	assert.False(t, s.SelectJournalPhase(9))
	assert.Equal(t, 3, s.JournalPhase())

	s.CycleJournalPhase()
	assert.Equal(t, 4, s.JournalPhase())
	s.CycleJournalPhase()
	assert.Equal(t, 1, s.JournalPhase(), "cycling wraps to the first phase")
}

func TestRecordResultKeepsBest(t *testing.T) {
	s := New(nil, nil)

	_, attempted := s.BestScore(2)
	assert.False(t, attempted)

	s.RecordResult(exam.Result{Phase: 2, Percent: 100, Passed: true})
	s.RecordResult(exam.Result{Phase: 2, Percent: 50, Passed: false})

	best, attempted := s.BestScore(2)
	assert.True(t, attempted)
	assert.Equal(t, 100, best)
	assert.True(t, s.Passed(2), "a later failure does not revoke a pass")
	assert.Equal(t, 1, s.PassedCount())
}

func TestViewNames(t *testing.T) {
	for _, v := range Workspace {
		assert.NotEqual(t, "unknown", v.String())
	}
	assert.Equal(t, "unknown", View(42).String())
}

func TestCommands(t *testing.T) {
	assert.Equal(t, OpenViewMsg{View: ViewBench}, Open(ViewBench)())
	assert.Equal(t, OpenReaderMsg{Topic: "Motive Force"}, Read("Motive Force")())
}

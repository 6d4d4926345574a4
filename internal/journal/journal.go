// Package journal keeps the apprentice's service records for the current
// run. Records are built only after the mentor has answered and are never
// changed afterwards. Nothing is written to disk.
package journal

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is the review state of an entry.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusReviewed Status = "reviewed"
	StatusApproved Status = "approved"
)

// Entry is one service record.
type Entry struct {
	ID          string
	CreatedAt   time.Time
	Title       string
	Description string
	Phase       int
	Status      Status
	Feedback    string
}

// Reviewer produces feedback for an entry. *mentor.Mentor satisfies it.
type Reviewer interface {
	ReviewFeedback(ctx context.Context, entryText string, phase int) string
}

// Pending is a submission accepted by Begin and awaiting feedback.
type Pending struct {
	Text  string
	Phase int
}

// Journal holds entries newest first and guards against overlapping
// submissions with a busy flag.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
	busy    bool
	now     func() time.Time
}

// New returns an empty journal.
func New() *Journal {
	return &Journal{now: time.Now}
}

// Begin accepts a submission. It returns false, leaving state untouched,
// when the text is blank or another submission is outstanding.
func (j *Journal) Begin(text string, phase int) (Pending, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if strings.TrimSpace(text) == "" || j.busy {
		return Pending{}, false
	}
	j.busy = true
	return Pending{Text: text, Phase: phase}, true
}

// Complete records the reviewed entry at the head of the list and clears
// the busy flag.
func (j *Journal) Complete(p Pending, feedback string) Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	e := Entry{
		ID:          uuid.NewString(),
		CreatedAt:   j.now(),
		Title:       fmt.Sprintf("Service Record #%d", len(j.entries)+1),
		Description: p.Text,
		Phase:       p.Phase,
		Status:      StatusReviewed,
		Feedback:    feedback,
	}
	j.entries = append([]Entry{e}, j.entries...)
	j.busy = false
	return e
}

// Submit runs Begin, the reviewer and Complete in one call.
func (j *Journal) Submit(ctx context.Context, r Reviewer, text string, phase int) (Entry, bool) {
	p, ok := j.Begin(text, phase)
	if !ok {
		return Entry{}, false
	}
	return j.Complete(p, r.ReviewFeedback(ctx, p.Text, p.Phase)), true
}

// Entries returns a copy of the records, newest first.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of records.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Busy reports whether a submission is awaiting feedback.
func (j *Journal) Busy() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.busy
}

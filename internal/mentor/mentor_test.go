package mentor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchbench/apprentice/internal/llm"
)

func TestReviewFeedbackReturnsTextVerbatim(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  Check the endshake.  \n"})
	m := New(mock, DefaultConfig())

	got := m.ReviewFeedback(context.Background(), "Cleaned the train wheels", 2)
	assert.Equal(t, "  Check the endshake.  \n", got)

	req, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, reviewSystemPrompt, req.System)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "Phase 2")
	assert.Contains(t, req.Messages[0].Content, `"Cleaned the train wheels"`)
}

func TestReviewFeedbackEmptyText(t *testing.T) {
	m := New(llm.NewMockProvider(llm.MockResponse{Text: ""}), DefaultConfig())
	assert.Equal(t, FeedbackUnavailable, m.ReviewFeedback(context.Background(), "entry", 1))
}

func TestReviewFeedbackFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"rate limit", &llm.ErrRateLimit{Err: errors.New("429")}},
		{"unavailable", &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		{"invalid", &llm.ErrInvalidResponse{Err: errors.New("no text")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(llm.NewMockProvider(llm.MockResponse{Err: tt.err}), DefaultConfig())
			assert.Equal(t, MasterBusy, m.ReviewFeedback(context.Background(), "entry", 1))
		})
	}
}

func TestNilProviderFallsBack(t *testing.T) {
	m := New(nil, DefaultConfig())
	assert.False(t, m.Available())
	assert.Equal(t, MasterBusy, m.ReviewFeedback(context.Background(), "entry", 1))
	assert.Equal(t, DeepDiveUnavailable, m.DeepDive(context.Background(), "Escapements"))
}

func TestDeepDivePrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Chapter text"})
	m := New(mock, DefaultConfig())

	assert.Equal(t, "Chapter text", m.DeepDive(context.Background(), "Isochronism"))

	req, _ := mock.LastCall()
	assert.Equal(t, deepDiveSystemPrompt, req.System)
	assert.InDelta(t, 0.5, req.Temperature, 1e-9)
	prompt := req.Messages[0].Content
	assert.Contains(t, prompt, `"Isochronism"`)
	for _, section := range []string{"Historical Context", "Material Science", "Mathematical Theory", "Bench Implementation", "Master's Secrets"} {
		assert.Contains(t, prompt, section)
	}
	assert.Contains(t, prompt, "at least 1000 words")
}

func TestDeepDiveFailureAndEmpty(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Text: "   "},
	)
	m := New(mock, DefaultConfig())

	assert.Equal(t, DeepDiveUnavailable, m.DeepDive(context.Background(), "a"))
	assert.Equal(t, DeepDiveUnavailable, m.DeepDive(context.Background(), "b"))
	assert.Equal(t, 2, mock.CallCount())
}

func TestTruncatedResponseIsKept(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{Text: "Partial chapter"}})
	m := New(mock, DefaultConfig())

	got := m.DeepDive(context.Background(), "Hairsprings")
	assert.True(t, strings.HasPrefix(got, "Partial"))
}

// purposeRecorder captures the purpose label attached to each call.
type purposeRecorder struct {
	purposes []string
}

func (p *purposeRecorder) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	return &llm.Response{Text: "ok"}, nil
}

func (p *purposeRecorder) ModelID() string { return "recorder" }

func TestPurposeLabels(t *testing.T) {
	rec := &purposeRecorder{}
	m := New(rec, DefaultConfig())

	m.ReviewFeedback(context.Background(), "entry", 1)
	m.DeepDive(context.Background(), "topic")

	assert.Equal(t, []string{PurposeReview, PurposeDeepDive}, rec.purposes)
}

// Package mentor turns the LLM provider into the two calls the workshop
// needs: feedback on a journal entry and a long-form deep dive on a topic.
// Neither call ever fails from the caller's point of view; backend errors
// are logged and replaced with fixed fallback text.
package mentor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/watchbench/apprentice/internal/llm"
)

// Fallback texts shown in place of generated content.
const (
	FeedbackUnavailable = "Feedback currently unavailable."
	MasterBusy          = "The Master is currently busy. Please try your review again later."
	DeepDiveUnavailable = "Error retrieving deep dive content."
)

// LLM purpose labels.
const (
	PurposeReview   = "review"
	PurposeDeepDive = "deep-dive"
)

var errNoProvider = errors.New("no LLM provider configured")

// Config holds generation settings.
type Config struct {
	ReviewTemperature   float64
	ReviewMaxTokens     int
	DeepDiveTemperature float64
	DeepDiveMaxTokens   int

	// Timeout bounds each call. Zero means no extra deadline.
	Timeout time.Duration
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		ReviewTemperature:   0.7,
		ReviewMaxTokens:     1024,
		DeepDiveTemperature: 0.5,
		DeepDiveMaxTokens:   8192,
	}
}

// Mentor issues review and deep-dive requests. A nil provider is allowed
// and behaves as a backend that always fails.
type Mentor struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Mentor.
func New(provider llm.Provider, cfg Config) *Mentor {
	return &Mentor{provider: provider, cfg: cfg}
}

// Available reports whether a provider is configured.
func (m *Mentor) Available() bool {
	return m != nil && m.provider != nil
}

// ReviewFeedback asks the master watchmaker persona to critique a journal
// entry written for phase.
func (m *Mentor) ReviewFeedback(ctx context.Context, entryText string, phase int) string {
	req := llm.UserPrompt(reviewSystemPrompt, buildReviewPrompt(entryText, phase), m.cfg.ReviewTemperature)
	req.MaxTokens = m.cfg.ReviewMaxTokens

	text, err := m.generate(llm.WithPurpose(ctx, PurposeReview), req)
	if err != nil {
		slog.WarnContext(ctx, "review feedback failed", "phase", phase, "error", err)
		return MasterBusy
	}
	if text == "" {
		return FeedbackUnavailable
	}
	return text
}

// DeepDive requests a structured five-section treatment of topic.
func (m *Mentor) DeepDive(ctx context.Context, topic string) string {
	req := llm.UserPrompt(deepDiveSystemPrompt, buildDeepDivePrompt(topic), m.cfg.DeepDiveTemperature)
	req.MaxTokens = m.cfg.DeepDiveMaxTokens

	text, err := m.generate(llm.WithPurpose(ctx, PurposeDeepDive), req)
	if err != nil {
		slog.WarnContext(ctx, "deep dive failed", "topic", topic, "error", err)
		return DeepDiveUnavailable
	}
	if text == "" {
		return DeepDiveUnavailable
	}
	return text
}

// generate returns the provider's text. A response cut short by the token
// limit still counts when it carries text.
func (m *Mentor) generate(ctx context.Context, req llm.Request) (string, error) {
	if !m.Available() {
		return "", errNoProvider
	}
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	resp, err := m.provider.Generate(ctx, req)
	if err != nil {
		var maxTok *llm.ErrMaxTokensExceeded
		if errors.As(err, &maxTok) && strings.TrimSpace(maxTok.Text) != "" {
			slog.InfoContext(ctx, "using truncated llm response", "purpose", llm.PurposeFrom(ctx))
			return maxTok.Text, nil
		}
		return "", err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", nil
	}
	return resp.Text, nil
}

package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/watchbench/apprentice/internal/store"
)

// LoggingProvider records every request's metadata in the diagnostics
// store and the log. Prompt and completion text are not recorded.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
}

// WithLogging wraps p. provider names the backend ("gemini", "anthropic",
// ...) in the recorded events.
func WithLogging(p Provider, provider string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, provider: provider, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.StopReason = resp.StopReason
	}

	attrs := []any{
		slog.String("provider", data.Provider),
		slog.String("model", data.Model),
		slog.String("purpose", purpose),
		slog.Int64("latency_ms", data.LatencyMs),
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		slog.WarnContext(ctx, "LLM request failed", append(attrs, slog.String("error", data.ErrorMessage))...)
	} else {
		slog.InfoContext(ctx, "LLM request", append(attrs,
			slog.Int("input_tokens", data.InputTokens),
			slog.Int("output_tokens", data.OutputTokens),
			slog.String("stop_reason", data.StopReason))...)
	}

	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		slog.WarnContext(ctx, "Failed to record LLM request event", slog.String("error", logErr.Error()))
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

package llm

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"
)

// RetryProvider re-sends a mentor request after transient failures, backing
// off exponentially with jitter between attempts.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p. A MaxAttempts of 1 or less sends each request once.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.cfg.MaxAttempts, 1)
	emptyRetried := false

	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt >= attempts || ctx.Err() != nil || !retryable(err, &emptyRetried) {
			return nil, err
		}

		wait := r.delay(attempt, err)
		slog.DebugContext(ctx, "retrying mentor request",
			"purpose", PurposeFrom(ctx), "attempt", attempt, "wait", wait, "error", err)
		if err := sleepCtx(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether another attempt could succeed. An empty answer
// earns one more try per request.
func retryable(err error, emptyRetried *bool) bool {
	var (
		truncated *ErrMaxTokensExceeded
		rejected  *ErrRequestRejected
		empty     *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.As(err, &truncated), errors.As(err, &rejected):
		return false
	case errors.As(err, &empty):
		if *emptyRetried {
			return false
		}
		*emptyRetried = true
		return true
	default:
		// Rate limits, outages and bare transport errors.
		return true
	}
}

// delay is the pause after the given 1-based attempt. A backend-supplied
// Retry-After wins over the computed backoff.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait)
	for range attempt - 1 {
		wait *= r.cfg.Multiplier
	}
	if ceiling := float64(r.cfg.MaxWait); ceiling > 0 && wait > ceiling {
		wait = ceiling
	}
	// ±20% jitter
	wait *= 0.8 + 0.4*rand.Float64()
	return time.Duration(wait)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

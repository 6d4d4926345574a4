package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match when set
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string

	// Request shape only. Prompt and completion text are never stored:
	// they carry journal entries.
	Temperature float64
	MaxTokens   int
	StopReason  string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to diagnostic events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event, or nil if id is unknown.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// NopEventRepo returns an EventRepo that records nothing. It backs
// --no-db runs.
func NopEventRepo() EventRepo { return nopRepo{} }

type nopRepo struct{}

func (nopRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error { return nil }

func (nopRepo) QueryLLMEvents(context.Context, QueryOpts) ([]LLMRequestEventRecord, error) {
	return nil, nil
}

func (nopRepo) GetLLMEvent(context.Context, int) (*LLMRequestEventRecord, error) { return nil, nil }

func (nopRepo) LLMUsageByPurpose(context.Context) ([]LLMUsageStats, error) { return nil, nil }

func (nopRepo) LLMUsageByModel(context.Context) ([]LLMModelUsage, error) { return nil, nil }

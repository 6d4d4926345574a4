package llm

import (
	"context"
	"sync"
)

// MockResponse is one scripted answer. Err wins over Text.
type MockResponse struct {
	Text  string
	Usage Usage
	Err   error
}

// MockProvider answers from a script, first in first out, and keeps every
// request it saw. With the script exhausted it behaves like a backend that
// is down, so the mentor falls back to its canned lines.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

// NewMockProvider returns a provider that plays script in order.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

// Generate records req and plays the next scripted answer. A cancelled ctx
// is reported before the script advances.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	next := m.script[0]
	m.script = m.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Text: next.Text, Usage: next.Usage, Model: "mock", StopReason: "end"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount reports how many requests reached the provider.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

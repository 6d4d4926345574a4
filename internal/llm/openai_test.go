package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// openaiServer serves /v1/chat/completions and hands each decoded request
// body to seen. The returned provider uses the configured model name.
func openaiServer(t *testing.T, model string, seen func(body map[string]any), reply func(w http.ResponseWriter)) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if seen != nil {
			seen(body)
		}
		w.Header().Set("Content-Type", "application/json")
		reply(w)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: model, BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func chatCompletion(content, finish string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1760000000,
			"model":   "gpt-4o-mini-2024-07-18",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 90, "completion_tokens": 60, "total_tokens": 150},
		})
	}
}

func TestOpenAIProvider_ReviewRequest(t *testing.T) {
	var body map[string]any
	feedback := "## Strengths\nGood note on the stud.\n\n## Next\nMeasure in six positions."
	p := openaiServer(t, "gpt-4o-mini", func(b map[string]any) { body = b }, chatCompletion(feedback, "stop"))

	req := UserPrompt(testReviewSystem, testReviewPrompt, 0.7)
	req.MaxTokens = 1024
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if body["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v", body["model"])
	}
	// Temperature travels as float32.
	if temp, _ := body["temperature"].(float64); float32(temp) != float32(0.7) {
		t.Errorf("temperature = %v, want 0.7", body["temperature"])
	}
	if body["max_completion_tokens"] != float64(1024) {
		t.Errorf("max_completion_tokens = %v, want 1024", body["max_completion_tokens"])
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %v", body["messages"])
	}
	system, user := msgs[0].(map[string]any), msgs[1].(map[string]any)
	if system["role"] != "system" || system["content"] != testReviewSystem {
		t.Errorf("system message = %v", system)
	}
	if user["role"] != "user" || user["content"] != testReviewPrompt {
		t.Errorf("user message = %v", user)
	}

	if resp.Text != feedback {
		t.Errorf("text = %q, want it verbatim", resp.Text)
	}
	if resp.StopReason != "end" || resp.Usage.TotalTokens != 150 || resp.Model != "gpt-4o-mini-2024-07-18" {
		t.Errorf("unexpected response metadata: %+v", resp)
	}
}

func TestOpenAIProvider_DeepDiveCutAtTokenLimit(t *testing.T) {
	var body map[string]any
	p := openaiServer(t, "gpt-4o", func(b map[string]any) { body = b }, chatCompletion("# Tourbillon\nBreguet patented", "length"))

	req := UserPrompt(testDeepDiveSystem, "Tourbillon", 0.5)
	req.MaxTokens = 8192
	_, err := p.Generate(context.Background(), req)

	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
	if maxTok.Text != "# Tourbillon\nBreguet patented" {
		t.Errorf("partial text = %q", maxTok.Text)
	}
	if body["max_completion_tokens"] != float64(8192) {
		t.Errorf("max_completion_tokens = %v", body["max_completion_tokens"])
	}
}

func TestOpenAIProvider_EmptyContent(t *testing.T) {
	p := openaiServer(t, "gpt-4o-mini", nil, chatCompletion("", "stop"))

	_, err := p.Generate(context.Background(), UserPrompt(testReviewSystem, testReviewPrompt, 0.7))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestOpenAIProvider_OmitsEmptySystem(t *testing.T) {
	var body map[string]any
	p := openaiServer(t, "gpt-4o-mini", func(b map[string]any) { body = b }, chatCompletion("ok", "stop"))

	if _, err := p.Generate(context.Background(), UserPrompt("", "hello", 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("expected only the user message, got %v", body["messages"])
	}
	if _, ok := body["temperature"]; ok {
		t.Errorf("zero temperature should be omitted, got %v", body["temperature"])
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"bad key", http.StatusUnauthorized, func(err error) bool {
			var rejected *ErrRequestRejected
			return errors.As(err, &rejected) && rejected.Status == http.StatusUnauthorized
		}},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var unavail *ErrProviderUnavailable
			return errors.As(err, &unavail)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := openaiServer(t, "gpt-4o-mini", nil, func(w http.ResponseWriter) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": tt.name, "type": "error"},
				})
			})
			_, err := p.Generate(context.Background(), UserPrompt(testReviewSystem, testReviewPrompt, 0.7))
			if !tt.check(err) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
		})
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Fatal("expected error for empty API key")
	}

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unlisted names pass through as model IDs.
	if p.ModelID() != "gpt-4.1" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
}

package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}

	tests := []struct {
		model string
		want  string
	}{
		{"gemini-flash", "google/gemini-2.5-flash"},
		{"claude-haiku", "anthropic/claude-haiku-4.5"},
		{"mistralai/mistral-large", "mistralai/mistral-large"}, // slugs pass through
	}
	for _, tt := range tests {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: tt.model})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.model, err)
		}
		if p.ModelID() != tt.want {
			t.Errorf("%s: ModelID() = %q, want %q", tt.model, p.ModelID(), tt.want)
		}
	}
}

func TestOpenRouterProvider_SendsTitle(t *testing.T) {
	var title, auth, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title, auth, path = r.Header.Get("X-Title"), r.Header.Get("Authorization"), r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		chatCompletion("Ninety-six hours of reserve.", "stop")(w)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "gemini-flash", BaseURL: server.URL + "/api/v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Generate(context.Background(), UserPrompt(testDeepDiveSystem, "Mainspring", 0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Ninety-six hours of reserve." {
		t.Errorf("text = %q", resp.Text)
	}
	if title != openRouterTitle {
		t.Errorf("X-Title = %q, want %q", title, openRouterTitle)
	}
	if auth != "Bearer sk-or-test" {
		t.Errorf("Authorization = %q", auth)
	}
	if path != "/api/v1/chat/completions" {
		t.Errorf("path = %q", path)
	}
}

package llm

import (
	"fmt"
	"net/http"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openRouterTitle names the app in OpenRouter's usage dashboard.
const openRouterTitle = "Watchmaking Apprentice"

// openrouterModels maps the names accepted in config to OpenRouter slugs.
var openrouterModels = map[string]string{
	"gemini-flash": "google/gemini-2.5-flash",
	"claude-haiku": "anthropic/claude-haiku-4.5",
}

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter, which
// speaks the chat completions protocol.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider builds a provider from cfg. Every request carries
// OpenRouter's attribution header.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	httpClient := &http.Client{Transport: attributionTransport{base: http.DefaultTransport}}
	inner := newOpenAICompatible(OpenAIConfig{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: baseURL}, openrouterModels, httpClient)
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

type attributionTransport struct {
	base http.RoundTripper
}

func (t attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(r)
}

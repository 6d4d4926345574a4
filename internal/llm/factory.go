package llm

import (
	"context"
	"fmt"
	"sort"

	"github.com/watchbench/apprentice/internal/store"
)

// backends builds the bare provider for each name accepted in Config.Provider.
var backends = map[string]func(ctx context.Context, cfg Config) (Provider, error){
	"anthropic": func(_ context.Context, cfg Config) (Provider, error) {
		return NewAnthropicProvider(cfg.Anthropic)
	},
	"openai": func(_ context.Context, cfg Config) (Provider, error) {
		return NewOpenAIProvider(cfg.OpenAI)
	},
	"gemini": func(ctx context.Context, cfg Config) (Provider, error) {
		return NewGeminiProvider(ctx, cfg.Gemini)
	},
	"openrouter": func(_ context.Context, cfg Config) (Provider, error) {
		return NewOpenRouterProvider(cfg.OpenRouter)
	},
	"mock": func(context.Context, Config) (Provider, error) {
		return NewMockProvider(), nil
	},
}

// Backends lists the provider names NewProvider accepts.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider builds the mentor's backend from cfg. Calls pass through
// retry first, then logging, so every attempt gets its own diagnostics row.
// Pass store.NopEventRepo when diagnostics are off.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	build, ok := backends[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider %q (want one of %v)", cfg.Provider, Backends())
	}
	base, err := build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, cfg.Provider, eventRepo), cfg.Retry), nil
}

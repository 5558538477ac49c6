package llm

import (
	"log/slog"

	"github.com/nikhilbhutani/kidsagent/internal/config"
)

// Select resolves the completion backend once at startup from config.
// It returns nil when no credential is configured; callers treat a nil
// provider as "run without a backend".
func Select(cfg config.LLMConfig) Provider {
	switch {
	case cfg.OpenAIKey != "":
		return NewOpenAIProvider(cfg.OpenAIKey)
	case cfg.AnthropicKey != "":
		return NewAnthropicProvider(cfg.AnthropicKey)
	default:
		slog.Warn("no LLM credential configured, running with fallback responses only")
		return nil
	}
}

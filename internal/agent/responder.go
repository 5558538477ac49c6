package agent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nikhilbhutani/kidsagent/internal/guardrails"
	"github.com/nikhilbhutani/kidsagent/internal/llm"
)

const systemPrompt = `You are a friendly, educational assistant for children ages 6-12.
Your role is to:
- Help kids learn in a fun, engaging way
- Explain concepts simply and clearly
- Encourage curiosity and questions
- Keep all content age-appropriate and safe
- Never provide inappropriate content
- Never ask for or share personal information
- Focus on educational topics like science, math, history, reading, etc.

Be enthusiastic, patient, and encouraging. Use simple language appropriate for kids.`

// Responder answers user messages for the kids educational agent. It
// rejects unsafe input outright, delegates the rest to the configured
// completion backend, and degrades to deterministic fallback responses
// when no backend is available or the call fails.
type Responder struct {
	filter      *guardrails.InputFilter
	provider    llm.Provider // nil means no backend configured
	model       string
	maxTokens   int
	temperature float64
}

// ResponderConfig holds configuration for creating a Responder.
type ResponderConfig struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

func NewResponder(provider llm.Provider, cfg ResponderConfig) *Responder {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 300
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	return &Responder{
		filter:      guardrails.NewInputFilter(),
		provider:    provider,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Respond is total: it always returns a non-empty reply and never an error.
// Backend failures are logged and absorbed by the fallback path.
func (r *Responder) Respond(ctx context.Context, message string) string {
	if rejection, rejected := r.filter.Check(message); rejected {
		return rejection
	}

	if r.provider == nil {
		return fallbackResponse(message)
	}

	resp, err := r.provider.ChatCompletion(ctx, llm.ChatRequest{
		Model: r.model,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   r.maxTokens,
		Temperature: r.temperature,
	})
	if err != nil {
		slog.Error("backend completion failed, using fallback", "provider", r.provider.Name(), "error", err)
		return fallbackResponse(message)
	}

	return strings.TrimSpace(resp.Content)
}

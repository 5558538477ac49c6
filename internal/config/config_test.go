package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:6000", cfg.Addr())
	assert.Empty(t, cfg.LLM.OpenAIKey)
	assert.Equal(t, 300, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, "http://localhost:6000/a2a", cfg.Harness.AgentURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7001")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_MAX_TOKENS", "128")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAIKey)
	assert.Equal(t, 128, cfg.LLM.MaxTokens)
}

func TestLoadRejectsBadInt(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

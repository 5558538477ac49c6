package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Harness HarnessConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LLMConfig struct {
	OpenAIKey    string
	AnthropicKey string
	Model        string
	MaxTokens    int
	Temperature  float64
}

type HarnessConfig struct {
	AgentURL       string
	RequestTimeout time.Duration
	HealthTimeout  time.Duration
	OutputPath     string
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 6000)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxTokens, err := getEnvInt("LLM_MAX_TOKENS", 300)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_MAX_TOKENS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		LLM: LLMConfig{
			OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
			AnthropicKey: getEnv("ANTHROPIC_API_KEY", ""),
			Model:        getEnv("LLM_MODEL", ""),
			MaxTokens:    maxTokens,
			Temperature:  0.7,
		},
		Harness: HarnessConfig{
			AgentURL:       getEnv("AGENT_URL", "http://localhost:6000/a2a"),
			RequestTimeout: 30 * time.Second,
			HealthTimeout:  5 * time.Second,
			OutputPath:     getEnv("STRESS_TEST_OUTPUT", "stress_test_results.json"),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

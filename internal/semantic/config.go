package semantic

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM provider behind the resolver.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single resolution including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the endpoint for OpenAI-compatible APIs.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff for transient provider failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks Gemini with a small fast model. Title resolution
// is a one-line classification, so the cheapest tier is plenty.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays ADAPTIFOCUS_* environment variables on the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	for _, v := range []struct {
		key string
		dst *string
	}{
		{"ADAPTIFOCUS_LLM_PROVIDER", &cfg.Provider},
		{"ADAPTIFOCUS_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"ADAPTIFOCUS_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"ADAPTIFOCUS_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"ADAPTIFOCUS_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"ADAPTIFOCUS_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"ADAPTIFOCUS_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"ADAPTIFOCUS_GEMINI_MODEL", &cfg.Gemini.Model},
		{"ADAPTIFOCUS_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"ADAPTIFOCUS_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
	} {
		if s := os.Getenv(v.key); s != "" {
			*v.dst = s
		}
	}

	return cfg
}

// DiscoverConfig returns a usable Config or false when no provider is
// reachable. Explicit ADAPTIFOCUS_* configuration wins; otherwise the
// standard API key variables are checked in priority order. With no key
// at all, title resolution stays off and the rule classifier runs
// alone.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()
	if cfg.Provider != "" && cfg.Validate() == nil {
		return cfg, true
	}

	candidates := []struct {
		env      string
		provider string
		dst      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, c := range candidates {
		if k := os.Getenv(c.env); k != "" {
			cfg.Provider = c.provider
			*c.dst = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}

	if c.Provider == "mock" {
		return nil
	}
	key, ok := keys[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("ADAPTIFOCUS_%s_API_KEY is required for the %s provider",
			providerEnvName(c.Provider), c.Provider)
	}
	return nil
}

func providerEnvName(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC"
	case "openai":
		return "OPENAI"
	case "gemini":
		return "GEMINI"
	default:
		return "OPENROUTER"
	}
}

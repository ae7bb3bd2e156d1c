package semantic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearProviderEnv blanks every env var the config layer reads so tests
// see a clean slate regardless of the host environment.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ADAPTIFOCUS_LLM_PROVIDER",
		"ADAPTIFOCUS_ANTHROPIC_API_KEY", "ADAPTIFOCUS_ANTHROPIC_MODEL",
		"ADAPTIFOCUS_OPENAI_API_KEY", "ADAPTIFOCUS_OPENAI_MODEL", "ADAPTIFOCUS_OPENAI_BASE_URL",
		"ADAPTIFOCUS_GEMINI_API_KEY", "ADAPTIFOCUS_GEMINI_MODEL",
		"ADAPTIFOCUS_OPENROUTER_API_KEY", "ADAPTIFOCUS_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ADAPTIFOCUS_LLM_PROVIDER", "openai")
	t.Setenv("ADAPTIFOCUS_OPENAI_API_KEY", "sk-test")
	t.Setenv("ADAPTIFOCUS_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	// Untouched sections keep their defaults.
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	require.Error(t, cfg.Validate())

	cfg.Anthropic.APIKey = "key"
	require.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	require.NoError(t, cfg.Validate())

	cfg.Provider = "telepathy"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}

func TestDiscoverConfigFromExplicitEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ADAPTIFOCUS_LLM_PROVIDER", "anthropic")
	t.Setenv("ADAPTIFOCUS_ANTHROPIC_API_KEY", "key")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
}

func TestDiscoverConfigKeyPrecedence(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "oai")
	t.Setenv("ANTHROPIC_API_KEY", "ant")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	// Gemini is absent so OpenAI wins over Anthropic.
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "oai", cfg.OpenAI.APIKey)
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	clearProviderEnv(t)

	_, ok := DiscoverConfig()
	assert.False(t, ok)
}

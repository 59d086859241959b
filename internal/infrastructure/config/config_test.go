package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/remaimber-it/sattutor/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "QUESTIONS_PATH", "LLM_URL", "LLM_MODEL",
		"LLM_API_KEY", "GOOGLE_API_KEY", "LLM_TEMPERATURE", "ANALYSIS_TIMEOUT", "LOG_FILE",
	} {
		t.Setenv(k, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "questions.json", cfg.QuestionsPath)
	assert.Equal(t, 0.3, cfg.LLMTemperature)
	assert.Equal(t, 20*time.Second, cfg.AnalysisTimeout)
	assert.Empty(t, cfg.LLMAPIKey, "a missing credential is not a startup error")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("QUESTIONS_PATH", "bank.yaml")
	t.Setenv("ANALYSIS_TIMEOUT", "5s")
	t.Setenv("LLM_TEMPERATURE", "0")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg := config.Load()

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddress)
	assert.Equal(t, "bank.yaml", cfg.QuestionsPath)
	assert.Equal(t, 5*time.Second, cfg.AnalysisTimeout)
	assert.Equal(t, 0.0, cfg.LLMTemperature)
	assert.Equal(t, "google-key", cfg.LLMAPIKey)
}

func TestLoad_ExplicitKeyWins(t *testing.T) {
	t.Setenv("LLM_API_KEY", "explicit")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	assert.Equal(t, "explicit", config.Load().LLMAPIKey)
}

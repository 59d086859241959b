package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question catalog: .json, .yaml/.yml or an imported .db
	QuestionsPath string

	// Answer analysis
	LLMURL          string // OpenAI-compatible endpoint
	LLMModel        string
	LLMAPIKey       string // empty = every analysis uses the fallback verdict
	LLMTemperature  float64
	AnalysisTimeout time.Duration

	// CLI log file, rotated
	LogFile string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT", "10s"),
		QuestionsPath:   getenvDefault("QUESTIONS_PATH", "questions.json"),
		LLMURL:          getenvDefault("LLM_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:        getenvDefault("LLM_MODEL", "gemini-2.0-flash"),
		LLMAPIKey:       getenvDefault("LLM_API_KEY", os.Getenv("GOOGLE_API_KEY")),
		LLMTemperature:  mustGetFloat("LLM_TEMPERATURE", "0.3"),
		AnalysisTimeout: mustGetDuration("ANALYSIS_TIMEOUT", "20s"),
		LogFile:         getenvDefault("LOG_FILE", "tutor.log"),
	}
}

func mustGetDuration(k, fallback string) time.Duration {
	v := getenvDefault(k, fallback)
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func mustGetFloat(k, fallback string) float64 {
	v := getenvDefault(k, fallback)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid number: %v", k, v, err)
	}
	return f
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

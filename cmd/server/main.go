package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/sattutor/internal/api"
	"github.com/remaimber-it/sattutor/internal/catalog"
	"github.com/remaimber-it/sattutor/internal/grader"
	"github.com/remaimber-it/sattutor/internal/infrastructure/config"
	"github.com/remaimber-it/sattutor/internal/service"
	"github.com/remaimber-it/sattutor/internal/telemetry"

	_ "github.com/remaimber-it/sattutor/docs" // generated swagger docs
)

// @title           SAT Math Tutor API
// @version         1.0
// @description     Practice SAT math questions, get each answer analysed, and follow your accuracy over the session.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	questions := catalog.NewLoader(logger).LoadOrEmpty(context.Background(), cfg.QuestionsPath)
	metrics := telemetry.New()

	llm := grader.NewLLMClient(grader.LLMConfig{
		URL:         cfg.LLMURL,
		Model:       cfg.LLMModel,
		APIKey:      cfg.LLMAPIKey,
		Temperature: cfg.LLMTemperature,
	})
	if cfg.LLMAPIKey == "" {
		logger.Warn("no LLM API key configured, answers are judged by exact comparison")
	}
	analyzer := grader.NewAnalyzer(llm, cfg.AnalysisTimeout, logger, metrics)
	sessions := service.NewManager(questions, analyzer, logger, metrics, service.WithTelemetry(metrics))
	handler := api.NewHandler(sessions, metrics, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Metrics → Logging → CORS → mux ────────────
	wrapped := api.Instrument(metrics)(api.Logging(logger)(api.CORS(mux)))

	// ── Server ──────────────────────────────────────────────────────
	// WriteTimeout leaves room for a full answer analysis.
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           wrapped,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.AnalysisTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "questions", len(questions))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

package grader

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Analysis outcomes reported to a Recorder.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
)

// Recorder observes analysis outcomes. reason is empty for OutcomeOK.
type Recorder interface {
	RecordAnalysis(outcome, reason string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAnalysis(string, string) {}

// Analyzer turns a Client Result into a Verdict. It never fails: when the
// remote call errors or times out the deterministic FallbackVerdict is used.
type Analyzer struct {
	client   Client
	timeout  time.Duration
	logger   *slog.Logger
	recorder Recorder
}

// NewAnalyzer creates an Analyzer. A zero timeout leaves the deadline to the
// caller's context; a nil recorder discards outcomes.
func NewAnalyzer(client Client, timeout time.Duration, logger *slog.Logger, recorder Recorder) *Analyzer {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Analyzer{
		client:   client,
		timeout:  timeout,
		logger:   logger,
		recorder: recorder,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, questionText, studentAnswer, correctAnswer string) Verdict {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	result := a.client.Evaluate(ctx, questionText, studentAnswer, correctAnswer)
	if !result.Ok() {
		reason := failureReason(result.Err)
		a.logger.Warn("answer analysis unavailable, using fallback verdict",
			"reason", reason,
			"error", result.Err,
		)
		a.recorder.RecordAnalysis(OutcomeFallback, reason)
		return FallbackVerdict(studentAnswer, correctAnswer)
	}

	a.recorder.RecordAnalysis(OutcomeOK, "")
	return result.Verdict
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrServiceUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}

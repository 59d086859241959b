package grader

import (
	"context"
	"errors"
	"fmt"
)

// Fallback texts used when the analysis service cannot produce a verdict.
const (
	FallbackExplanation     = "Unable to generate detailed explanation."
	FallbackImprovementTips = "Please try again later."
)

var (
	ErrMissingCredential  = errors.New("analysis service credential is not configured")
	ErrServiceUnavailable = errors.New("analysis service unavailable")
	ErrMalformedResponse  = errors.New("analysis service returned a malformed response")
)

// Verdict is the judgment of one submitted answer.
type Verdict struct {
	IsCorrect       bool   `json:"is_correct"`
	Explanation     string `json:"explanation"`
	ImprovementTips string `json:"improvement_tips"`
}

// Result is either a validated Verdict or the error that prevented one.
type Result struct {
	Verdict Verdict
	Err     error
}

func (r Result) Ok() bool {
	return r.Err == nil
}

// Client asks a remote reasoning service to judge an answer. A single call is
// made; failures are reported in Result.Err, never retried.
type Client interface {
	Evaluate(ctx context.Context, questionText, studentAnswer, correctAnswer string) Result
}

// AnalysisError describes why the remote analysis failed. Kind is one of the
// package sentinels, so callers can use errors.Is.
type AnalysisError struct {
	Kind    error
	Reason  string
	Wrapped error
}

func (e *AnalysisError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("analysis failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("analysis failed: %s", e.Reason)
}

func (e *AnalysisError) Unwrap() []error {
	if e.Wrapped == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Wrapped}
}

// FallbackVerdict judges by exact string equality. The boolean is always
// right; only the explanatory text is degraded.
func FallbackVerdict(studentAnswer, correctAnswer string) Verdict {
	return Verdict{
		IsCorrect:       studentAnswer == correctAnswer,
		Explanation:     FallbackExplanation,
		ImprovementTips: FallbackImprovementTips,
	}
}

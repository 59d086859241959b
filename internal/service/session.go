// internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/remaimber-it/sattutor/internal/catalog"
	"github.com/remaimber-it/sattutor/internal/domain/attempt"
	"github.com/remaimber-it/sattutor/internal/domain/question"
	"github.com/remaimber-it/sattutor/internal/grader"
	"github.com/remaimber-it/sattutor/internal/id"
	"github.com/remaimber-it/sattutor/internal/stats"
)

var (
	ErrNoQuestion      = errors.New("no question selected")
	ErrSessionNotFound = errors.New("session not found")
)

// EmptyFilterError reports that no catalog question matches the requested
// filter, together with the labels that do exist.
type EmptyFilterError struct {
	Topic                 string
	Difficulty            string
	AvailableTopics       []string
	AvailableDifficulties []string
}

func (e *EmptyFilterError) Error() string {
	return fmt.Sprintf("No questions available for Topic: %s, Difficulty: %s. Try different filters.",
		labelOrAll(e.Topic, catalog.AllTopics), labelOrAll(e.Difficulty, catalog.AllDifficulties))
}

// Suggestion lists the labels the user can pick instead.
func (e *EmptyFilterError) Suggestion() string {
	return fmt.Sprintf("Available topics: %s\nAvailable difficulties: %s",
		strings.Join(e.AvailableTopics, ", "), strings.Join(e.AvailableDifficulties, ", "))
}

func labelOrAll(label, all string) string {
	if label == "" {
		return all
	}
	return label
}

// VerdictAnalyzer judges one answer. *grader.Analyzer is the production
// implementation; it never fails.
type VerdictAnalyzer interface {
	Analyze(ctx context.Context, questionText, studentAnswer, correctAnswer string) grader.Verdict
}

// Telemetry receives session activity. *telemetry.Metrics implements it.
type Telemetry interface {
	RecordAttempt(topic string, correct bool)
	RecordEmptyFilter()
}

type nopTelemetry struct{}

func (nopTelemetry) RecordAttempt(string, bool) {}
func (nopTelemetry) RecordEmptyFilter()         {}

// Feedback is what the user sees after submitting an answer.
type Feedback struct {
	Question question.Question
	Verdict  grader.Verdict
	Record   attempt.Record
}

// ShowTips reports whether improvement tips should be displayed.
func (f Feedback) ShowTips() bool {
	return !f.Verdict.IsCorrect
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the source used to draw questions.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithClock sets the clock used to timestamp attempts.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

func WithTelemetry(t Telemetry) Option {
	return func(s *Session) {
		if t != nil {
			s.telemetry = t
		}
	}
}

// Session is one user's quiz: the current question and the attempt history.
// The catalog is shared read-only; everything else is owned by the session.
// Operations are serialized so the history keeps submission order.
type Session struct {
	ID string

	catalog   []question.Question
	analyzer  VerdictAnalyzer
	telemetry Telemetry
	rng       *rand.Rand
	clock     func() time.Time

	mu           sync.Mutex
	current      *question.Question
	lastFeedback *Feedback
	history      *attempt.Log
}

// NewSession creates an idle session over the given catalog.
func NewSession(questions []question.Question, analyzer VerdictAnalyzer, opts ...Option) *Session {
	s := &Session{
		ID:        id.GenerateID(),
		catalog:   questions,
		analyzer:  analyzer,
		telemetry: nopTelemetry{},
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.history = attempt.NewLog(s.clock)
	return s
}

// NextQuestion draws a question uniformly at random from those matching the
// filter. Empty or sentinel values disable a filter. When nothing matches an
// *EmptyFilterError is returned and the current question is kept.
func (s *Session) NextQuestion(topic, difficulty string) (question.Question, error) {
	candidates := catalog.Filter(s.catalog, topic, difficulty)
	if len(candidates) == 0 {
		s.telemetry.RecordEmptyFilter()
		return question.Question{}, &EmptyFilterError{
			Topic:                 topic,
			Difficulty:            difficulty,
			AvailableTopics:       catalog.Topics(s.catalog),
			AvailableDifficulties: catalog.Difficulties(s.catalog),
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q := candidates[s.rng.IntN(len(candidates))]
	s.current = &q
	s.lastFeedback = nil
	return q, nil
}

// Current returns the question on display, if any.
func (s *Session) Current() (question.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return question.Question{}, false
	}
	return *s.current, true
}

// LastFeedback returns the feedback for the current question, if the user
// already answered it.
func (s *Session) LastFeedback() (Feedback, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastFeedback == nil {
		return Feedback{}, false
	}
	return *s.lastFeedback, true
}

// Submit judges answer against the current question and records the
// attempt. The question stays selected until NextQuestion is called again,
// so it may be answered more than once.
func (s *Session) Submit(ctx context.Context, answer string) (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Feedback{}, ErrNoQuestion
	}
	q := *s.current

	verdict := s.analyzer.Analyze(ctx, q.Question, answer, q.CorrectAnswer)
	rec := s.history.Append(q, answer, verdict.IsCorrect)
	s.telemetry.RecordAttempt(q.Topic, verdict.IsCorrect)

	fb := Feedback{Question: q, Verdict: verdict, Record: rec}
	s.lastFeedback = &fb
	return fb, nil
}

// Topics and Difficulties feed the filter controls.
func (s *Session) Topics() []string       { return catalog.Topics(s.catalog) }
func (s *Session) Difficulties() []string { return catalog.Difficulties(s.catalog) }

func (s *Session) History() []attempt.Record {
	return s.history.Records()
}

func (s *Session) Metrics() stats.Metrics {
	return stats.Compute(s.history.Records())
}

func (s *Session) Progress() []stats.ProgressPoint {
	return stats.ProgressSeries(s.history.Records())
}

func (s *Session) TopicBreakdown() []stats.GroupRow {
	return stats.TopicBreakdown(s.history.Records())
}

func (s *Session) DifficultyBreakdown() []stats.GroupRow {
	return stats.DifficultyBreakdown(s.history.Records())
}

func (s *Session) AccuracyDelta() (float64, bool) {
	return stats.AccuracyDelta(s.history.Records())
}

package attempt

import (
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/remaimber-it/sattutor/internal/domain/question"
)

// Record is one submitted answer. Topic and Difficulty are copied from the
// question at submission time so aggregation never needs the catalog.
type Record struct {
	Timestamp     time.Time `json:"timestamp"`
	QuestionID    string    `json:"question_id"`
	Topic         string    `json:"topic"`
	Difficulty    string    `json:"difficulty"`
	Correct       bool      `json:"correct"`
	StudentAnswer string    `json:"student_answer"`
}

// Log is the append-only attempt history of a single session.
type Log struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

// NewLog creates an empty log. A nil clock defaults to time.Now.
func NewLog(clock func() time.Time) *Log {
	if clock == nil {
		clock = time.Now
	}
	return &Log{now: clock}
}

// Append records one attempt and returns it. The student answer is stored as
// given, even when it is not one of the question's options.
func (l *Log) Append(q question.Question, studentAnswer string, correct bool) Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := Record{
		Timestamp:     l.now(),
		QuestionID:    q.ID,
		Topic:         q.Topic,
		Difficulty:    q.Difficulty,
		Correct:       correct,
		StudentAnswer: studentAnswer,
	}
	l.records = append(l.records, rec)
	return rec
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Records returns a copy of the history in insertion order.
func (l *Log) Records() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.records)
}

// All iterates over a snapshot of the history in insertion order.
func (l *Log) All() iter.Seq2[int, Record] {
	return slices.All(l.Records())
}

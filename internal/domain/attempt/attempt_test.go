package attempt_test

import (
	"testing"
	"time"

	"github.com/remaimber-it/sattutor/internal/domain/attempt"
	"github.com/remaimber-it/sattutor/internal/domain/question"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleQuestion(id, topic string) question.Question {
	return question.Question{
		ID:            id,
		Topic:         topic,
		Difficulty:    "Medium",
		Question:      "What is " + id + "?",
		Options:       []string{"a", "b"},
		CorrectAnswer: "a",
	}
}

func TestAppend_CopiesQuestionFields(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	log := attempt.NewLog(fixedClock(now))

	rec := log.Append(sampleQuestion("q1", "Algebra"), "b", false)

	if rec.QuestionID != "q1" || rec.Topic != "Algebra" || rec.Difficulty != "Medium" {
		t.Errorf("unexpected record fields: %+v", rec)
	}
	if !rec.Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, rec.Timestamp)
	}
	if rec.Correct {
		t.Error("expected correct=false")
	}
	if log.Len() != 1 {
		t.Errorf("expected 1 record, got %d", log.Len())
	}
}

func TestAppend_PreservesExistingPrefix(t *testing.T) {
	log := attempt.NewLog(nil)
	log.Append(sampleQuestion("q1", "Algebra"), "a", true)
	log.Append(sampleQuestion("q2", "Geometry"), "b", false)

	before := log.Records()
	log.Append(sampleQuestion("q1", "Algebra"), "a", true)
	after := log.Records()

	if len(after) != len(before)+1 {
		t.Fatalf("expected %d records, got %d", len(before)+1, len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("record %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestAppend_DoesNotDeduplicate(t *testing.T) {
	log := attempt.NewLog(nil)
	q := sampleQuestion("q1", "Algebra")

	log.Append(q, "a", true)
	log.Append(q, "a", true)

	if log.Len() != 2 {
		t.Errorf("expected 2 records, got %d", log.Len())
	}
}

func TestAppend_AcceptsAnswerOutsideOptions(t *testing.T) {
	log := attempt.NewLog(nil)

	rec := log.Append(sampleQuestion("q1", "Algebra"), "not an option", false)

	if rec.StudentAnswer != "not an option" {
		t.Errorf("expected answer to be stored as given, got %q", rec.StudentAnswer)
	}
}

func TestRecords_ReturnsCopy(t *testing.T) {
	log := attempt.NewLog(nil)
	log.Append(sampleQuestion("q1", "Algebra"), "a", true)

	records := log.Records()
	records[0].Correct = false

	if !log.Records()[0].Correct {
		t.Error("expected log to be unaffected by changes to the returned slice")
	}
}

func TestAll_InsertionOrder(t *testing.T) {
	log := attempt.NewLog(nil)
	ids := []string{"q3", "q1", "q2"}
	for _, id := range ids {
		log.Append(sampleQuestion(id, "Algebra"), "a", true)
	}

	for i, rec := range log.All() {
		if rec.QuestionID != ids[i] {
			t.Errorf("position %d: expected %q, got %q", i, ids[i], rec.QuestionID)
		}
	}
}

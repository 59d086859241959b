package question_test

import (
	"errors"
	"testing"

	"github.com/remaimber-it/sattutor/internal/domain/question"
)

func TestNew(t *testing.T) {
	q, err := question.New("q1", "Algebra", "Easy", "2+2=?", []string{"3", "4"}, "4", "Add them.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Topic != "Algebra" {
		t.Errorf("expected topic %q, got %q", "Algebra", q.Topic)
	}
	if len(q.Options) != 2 {
		t.Errorf("expected 2 options, got %d", len(q.Options))
	}
}

func TestNew_CopiesOptions(t *testing.T) {
	options := []string{"3", "4"}
	q, err := question.New("q1", "Algebra", "Easy", "2+2=?", options, "4", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	options[0] = "changed"
	if q.Options[0] != "3" {
		t.Errorf("expected options to be copied, got %q", q.Options[0])
	}
}

func TestNew_CorrectAnswerNotAnOption(t *testing.T) {
	_, err := question.New("q1", "Algebra", "Easy", "2+2=?", []string{"3", "5"}, "4", "")
	if !errors.Is(err, question.ErrCorrectAnswerMissing) {
		t.Errorf("expected ErrCorrectAnswerMissing, got %v", err)
	}
}

func TestNew_NoOptions(t *testing.T) {
	_, err := question.New("q1", "Algebra", "Easy", "2+2=?", nil, "4", "")
	if !errors.Is(err, question.ErrNoOptions) {
		t.Errorf("expected ErrNoOptions, got %v", err)
	}
}

func TestHasOption_ExactMatch(t *testing.T) {
	q := question.Question{Options: []string{"x = 2", "x = 3"}}

	if !q.HasOption("x = 2") {
		t.Error("expected exact option to match")
	}
	if q.HasOption("x=2") {
		t.Error("expected reformatted option not to match")
	}
}

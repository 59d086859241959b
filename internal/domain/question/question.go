package question

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoOptions            = errors.New("question has no options")
	ErrCorrectAnswerMissing = errors.New("correct answer is not one of the options")
)

// Question is one multiple-choice item of the catalog. It is loaded once and
// never mutated afterwards.
type Question struct {
	ID            string   `json:"id" yaml:"id" validate:"required"`
	Topic         string   `json:"topic" yaml:"topic" validate:"required"`
	Difficulty    string   `json:"difficulty" yaml:"difficulty" validate:"required"`
	Question      string   `json:"question" yaml:"question" validate:"required"`
	Options       []string `json:"options" yaml:"options" validate:"required,min=1,dive,required"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer" validate:"required"`
	Solution      string   `json:"solution" yaml:"solution"`
}

// New builds a question and checks that the correct answer is one of its options.
func New(id, topic, difficulty, prompt string, options []string, correctAnswer, solution string) (Question, error) {
	q := Question{
		ID:            id,
		Topic:         topic,
		Difficulty:    difficulty,
		Question:      prompt,
		Options:       slices.Clone(options),
		CorrectAnswer: correctAnswer,
		Solution:      solution,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks the option invariant. Field presence is checked by the
// catalog loader.
func (q Question) Validate() error {
	if len(q.Options) == 0 {
		return fmt.Errorf("question %q: %w", q.ID, ErrNoOptions)
	}
	if !q.HasOption(q.CorrectAnswer) {
		return fmt.Errorf("question %q: %w", q.ID, ErrCorrectAnswerMissing)
	}
	return nil
}

// HasOption reports whether answer is exactly one of the options.
func (q Question) HasOption(answer string) bool {
	return slices.Contains(q.Options, answer)
}

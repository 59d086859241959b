// Package catalog loads the static question bank and answers lookups over it.
package catalog

import (
	"slices"
	"strings"

	"github.com/remaimber-it/sattutor/internal/domain/question"
)

// Sentinel filter values offered by the presentation layers. They behave
// exactly like an empty filter.
const (
	AllTopics       = "All Topics"
	AllDifficulties = "All Difficulties"
)

// Topics returns the distinct topic labels, sorted ascending as stored.
func Topics(questions []question.Question) []string {
	return distinct(questions, func(q question.Question) string { return q.Topic })
}

// Difficulties returns the distinct difficulty labels, sorted ascending as stored.
func Difficulties(questions []question.Question) []string {
	return distinct(questions, func(q question.Question) string { return q.Difficulty })
}

func distinct(questions []question.Question, label func(question.Question) string) []string {
	labels := make([]string, 0, len(questions))
	for _, q := range questions {
		labels = append(labels, label(q))
	}
	slices.Sort(labels)
	return slices.Compact(labels)
}

// Filter returns the questions matching topic and difficulty, compared
// case-insensitively. An empty or sentinel value disables that filter; with
// both disabled the input is returned unchanged. No match yields an empty,
// non-nil slice.
func Filter(questions []question.Question, topic, difficulty string) []question.Question {
	topicSet := !IsAllTopics(topic)
	difficultySet := !IsAllDifficulties(difficulty)
	if !topicSet && !difficultySet {
		return questions
	}

	filtered := make([]question.Question, 0, len(questions))
	for _, q := range questions {
		if topicSet && !strings.EqualFold(q.Topic, topic) {
			continue
		}
		if difficultySet && !strings.EqualFold(q.Difficulty, difficulty) {
			continue
		}
		filtered = append(filtered, q)
	}
	return filtered
}

// IsAllTopics reports whether topic means "no topic filter".
func IsAllTopics(topic string) bool {
	return topic == "" || topic == AllTopics
}

// IsAllDifficulties reports whether difficulty means "no difficulty filter".
func IsAllDifficulties(difficulty string) bool {
	return difficulty == "" || difficulty == AllDifficulties
}

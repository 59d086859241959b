package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remaimber-it/sattutor/internal/catalog"
	"github.com/remaimber-it/sattutor/internal/domain/question"
)

func sampleCatalog() []question.Question {
	return []question.Question{
		{ID: "1", Topic: "Algebra", Difficulty: "Easy", Options: []string{"1"}, CorrectAnswer: "1"},
		{ID: "2", Topic: "Geometry", Difficulty: "Hard", Options: []string{"1"}, CorrectAnswer: "1"},
		{ID: "3", Topic: "Algebra", Difficulty: "Hard", Options: []string{"1"}, CorrectAnswer: "1"},
		{ID: "4", Topic: "algebra", Difficulty: "Medium", Options: []string{"1"}, CorrectAnswer: "1"},
		{ID: "5", Topic: "Data Analysis", Difficulty: "Easy", Options: []string{"1"}, CorrectAnswer: "1"},
	}
}

func ids(questions []question.Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func TestTopics_SortedAndDistinct(t *testing.T) {
	topics := catalog.Topics(sampleCatalog())

	// Case-sensitive as stored: "Algebra" and "algebra" are distinct labels.
	assert.Equal(t, []string{"Algebra", "Data Analysis", "Geometry", "algebra"}, topics)
}

func TestDifficulties_SortedAndDistinct(t *testing.T) {
	assert.Equal(t, []string{"Easy", "Hard", "Medium"}, catalog.Difficulties(sampleCatalog()))
}

func TestTopics_Empty(t *testing.T) {
	assert.Empty(t, catalog.Topics(nil))
	assert.Empty(t, catalog.Difficulties([]question.Question{}))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		topic      string
		difficulty string
		want       []string
	}{
		{"no filters", "", "", []string{"1", "2", "3", "4", "5"}},
		{"sentinels", catalog.AllTopics, catalog.AllDifficulties, []string{"1", "2", "3", "4", "5"}},
		{"topic only", "Algebra", "", []string{"1", "3", "4"}},
		{"topic lower case", "algebra", "", []string{"1", "3", "4"}},
		{"topic upper case", "ALGEBRA", catalog.AllDifficulties, []string{"1", "3", "4"}},
		{"difficulty only", catalog.AllTopics, "hard", []string{"2", "3"}},
		{"both", "algebra", "HARD", []string{"3"}},
		{"no match", "Trigonometry", "", []string{}},
		{"no combined match", "Geometry", "Easy", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(sampleCatalog(), tt.topic, tt.difficulty)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_IdentityWithoutFilters(t *testing.T) {
	questions := sampleCatalog()

	assert.Equal(t, questions, catalog.Filter(questions, "", ""))
}

func TestFilter_CaseInsensitiveResultsIdentical(t *testing.T) {
	questions := sampleCatalog()

	assert.Equal(t,
		catalog.Filter(questions, "Algebra", ""),
		catalog.Filter(questions, "algebra", ""),
	)
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := catalog.Filter(nil, "Algebra", "Easy")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

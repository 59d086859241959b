package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/sattutor/internal/domain/question"
	"github.com/remaimber-it/sattutor/internal/store"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_KeepsImportOrderAndOptions(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	questions := []question.Question{
		{ID: "b", Topic: "Geometry", Difficulty: "Hard", Question: "Angles?", Options: []string{"90", "180"}, CorrectAnswer: "180", Solution: "Straight line."},
		{ID: "a", Topic: "Algebra", Difficulty: "Easy", Question: "x+1=2", Options: []string{"x = 1", "x = 2"}, CorrectAnswer: "x = 1"},
	}
	require.NoError(t, s.SaveQuestions(ctx, questions))

	got, err := s.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, []string{"90", "180"}, got[0].Options)
	assert.Equal(t, "Straight line.", got[0].Solution)
	assert.Equal(t, "a", got[1].ID)
}

func TestSQLiteStore_SaveQuestionsUpserts(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	q := question.Question{ID: "q1", Topic: "Algebra", Difficulty: "Easy", Question: "1+1", Options: []string{"2"}, CorrectAnswer: "2"}
	require.NoError(t, s.SaveQuestions(ctx, []question.Question{q}))

	q.Solution = "Count."
	require.NoError(t, s.SaveQuestions(ctx, []question.Question{q}))

	all, err := s.ListQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Count.", all[0].Solution)
}

func TestSQLiteStore_GetQuestionNotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.GetQuestion(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

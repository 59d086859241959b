package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/sattutor/internal/service"
)

type countingTracker struct{ open int }

func (c *countingTracker) SessionOpened() { c.open++ }
func (c *countingTracker) SessionClosed() { c.open-- }

func TestManager_CreateGetDelete(t *testing.T) {
	tracker := &countingTracker{}
	m := service.NewManager(twoQuestionCatalog(), &fixedAnalyzer{}, discardLogger(), tracker)

	s := m.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, tracker.open)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, m.Delete(s.ID))
	assert.Equal(t, 0, tracker.open)

	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
	assert.ErrorIs(t, m.Delete(s.ID), service.ErrSessionNotFound)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := service.NewManager(twoQuestionCatalog(), &fixedAnalyzer{}, discardLogger(), nil)
	a := m.Create()
	b := m.Create()

	_, err := a.NextQuestion("", "")
	require.NoError(t, err)
	_, err = a.Submit(context.Background(), "x")
	require.NoError(t, err)

	assert.Len(t, a.History(), 1)
	assert.Empty(t, b.History())
	_, ok := b.Current()
	assert.False(t, ok)
	assert.Len(t, m.Catalog(), 2)
}

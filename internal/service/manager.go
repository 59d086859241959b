// internal/service/manager.go
package service

import (
	"log/slog"
	"sync"

	"github.com/remaimber-it/sattutor/internal/domain/question"
)

// SessionTracker is notified when sessions are opened and closed.
type SessionTracker interface {
	SessionOpened()
	SessionClosed()
}

type nopTracker struct{}

func (nopTracker) SessionOpened() {}
func (nopTracker) SessionClosed() {}

// Manager holds the sessions served over HTTP. Sessions share the
// read-only catalog and nothing else.
type Manager struct {
	catalog  []question.Question
	analyzer VerdictAnalyzer
	logger   *slog.Logger
	tracker  SessionTracker
	opts     []Option

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a Manager. opts are applied to every new session.
func NewManager(questions []question.Question, analyzer VerdictAnalyzer, logger *slog.Logger, tracker SessionTracker, opts ...Option) *Manager {
	if tracker == nil {
		tracker = nopTracker{}
	}
	return &Manager{
		catalog:  questions,
		analyzer: analyzer,
		logger:   logger,
		tracker:  tracker,
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new idle session.
func (m *Manager) Create() *Session {
	s := NewSession(m.catalog, m.analyzer, m.opts...)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.tracker.SessionOpened()
	m.logger.Info("session created", "session_id", s.ID)
	return s
}

func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends a session and discards its history.
func (m *Manager) Delete(sessionID string) error {
	m.mu.Lock()
	_, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	m.tracker.SessionClosed()
	m.logger.Info("session ended", "session_id", sessionID)
	return nil
}

func (m *Manager) Catalog() []question.Question {
	return m.catalog
}

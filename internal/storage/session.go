package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// SessionStorage provides in-memory storage for quiz sessions by session ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]entities.QuizSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[string]entities.QuizSession),
	}
}

// Save stores a copy of the session.
func (s *SessionStorage) Save(_ context.Context, session *entities.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = clone(*session)
	return nil
}

// Get returns a copy of the session, so callers cannot mutate stored state without Save.
func (s *SessionStorage) Get(_ context.Context, id string) (*entities.QuizSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	c := clone(session)
	return &c, nil
}

// Delete removes the session with the given ID.
func (s *SessionStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func clone(s entities.QuizSession) entities.QuizSession {
	if s.Question.Options != nil {
		opts := make([]string, len(s.Question.Options))
		copy(opts, s.Question.Options)
		s.Question.Options = opts
	}
	return s
}

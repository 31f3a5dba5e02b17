package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

var ErrEmptySessionID = errors.New("empty session id")

// QuizService runs the quiz operations against sessions kept in a SessionStore.
type QuizService struct {
	controller *Controller
	sessions   SessionStore
}

// NewQuizService creates a new QuizService.
func NewQuizService(controller *Controller, sessions SessionStore) *QuizService {
	return &QuizService{
		controller: controller,
		sessions:   sessions,
	}
}

// Start creates a session with a first question from the characters table.
// An empty id gets a random UUID.
func (s *QuizService) Start(ctx context.Context, id string) (*View, error) {
	if id == "" {
		id = uuid.NewString()
	}

	session := entities.NewQuizSession(id)
	if err := s.controller.NewQuestion(session); err != nil {
		return nil, fmt.Errorf("first question: %w", err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return NewView(session), nil
}

// Get returns the current view of a session.
func (s *QuizService) Get(ctx context.Context, id string) (*View, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewView(session), nil
}

// Submit checks an answer for the current question.
func (s *QuizService) Submit(ctx context.Context, id string, sub Submission) (*View, error) {
	return s.apply(ctx, id, func(session *entities.QuizSession) error {
		s.controller.Check(session, sub)
		return nil
	})
}

// Next moves on to a new question.
func (s *QuizService) Next(ctx context.Context, id string) (*View, error) {
	return s.apply(ctx, id, s.controller.NewQuestion)
}

// SwitchVocabulary changes the direction and granularity of the questions.
func (s *QuizService) SwitchVocabulary(ctx context.Context, id string, reversed, words bool) (*View, error) {
	return s.apply(ctx, id, func(session *entities.QuizSession) error {
		return s.controller.SwitchVocabulary(session, reversed, words)
	})
}

// ToggleFreeText switches between typed answers and options.
func (s *QuizService) ToggleFreeText(ctx context.Context, id string, enabled bool) (*View, error) {
	return s.apply(ctx, id, func(session *entities.QuizSession) error {
		s.controller.ToggleFreeText(session, enabled)
		return nil
	})
}

// ToggleNoMistake switches the no-mistake mode.
func (s *QuizService) ToggleNoMistake(ctx context.Context, id string, enabled bool) (*View, error) {
	return s.apply(ctx, id, func(session *entities.QuizSession) error {
		s.controller.ToggleNoMistake(session, enabled)
		return nil
	})
}

// ResetScore zeroes the running score.
func (s *QuizService) ResetScore(ctx context.Context, id string) (*View, error) {
	return s.apply(ctx, id, func(session *entities.QuizSession) error {
		s.controller.ResetScore(session)
		return nil
	})
}

// End drops a session.
func (s *QuizService) End(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptySessionID
	}
	return s.sessions.Delete(ctx, id)
}

func (s *QuizService) apply(ctx context.Context, id string, fn func(*entities.QuizSession) error) (*View, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return NewView(session), nil
}

func (s *QuizService) load(ctx context.Context, id string) (*entities.QuizSession, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return session, nil
}

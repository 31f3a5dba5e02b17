package service

import (
	"context"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

type VocabularyRepo interface {
	Table(o entities.Orientation) (*entities.Table, error)
}

// SessionStore keeps quiz sessions between interactions.
type SessionStore interface {
	Get(ctx context.Context, id string) (*entities.QuizSession, error)
	Save(ctx context.Context, s *entities.QuizSession) error
	Delete(ctx context.Context, id string) error
}

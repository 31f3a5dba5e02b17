package telegram

import (
	"context"

	"github.com/ironwater12/japanese-learning-app/internal/service"
)

type QuizService interface {
	Start(ctx context.Context, id string) (*service.View, error)
	Get(ctx context.Context, id string) (*service.View, error)
	Submit(ctx context.Context, id string, sub service.Submission) (*service.View, error)
	Next(ctx context.Context, id string) (*service.View, error)
	SwitchVocabulary(ctx context.Context, id string, reversed, words bool) (*service.View, error)
	ToggleFreeText(ctx context.Context, id string, enabled bool) (*service.View, error)
	ToggleNoMistake(ctx context.Context, id string, enabled bool) (*service.View, error)
	ResetScore(ctx context.Context, id string) (*service.View, error)
}

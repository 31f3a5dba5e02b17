package logger

import (
	"go.uber.org/zap"

	"github.com/ironwater12/japanese-learning-app/internal/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.Env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return l.Named("quiz").With(zap.String("env", cfg.Env)), nil
}

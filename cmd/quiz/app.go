package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/ironwater12/japanese-learning-app/internal/config"
	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
	"github.com/ironwater12/japanese-learning-app/internal/infra/postgres"
	pgrepo "github.com/ironwater12/japanese-learning-app/internal/infra/postgres/repository"
	"github.com/ironwater12/japanese-learning-app/internal/infra/redis"
	"github.com/ironwater12/japanese-learning-app/internal/logger"
	"github.com/ironwater12/japanese-learning-app/internal/repository"
	"github.com/ironwater12/japanese-learning-app/internal/service"
	"github.com/ironwater12/japanese-learning-app/internal/storage"
)

// app bundles the wired dependencies shared by every command.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	quiz    *service.QuizService
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	_ = a.logger.Sync()
}

// newApp loads configuration and vocabulary and builds the quiz service.
// An undersized vocabulary table aborts startup.
func newApp(ctx context.Context, forceMemoryStore bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &app{cfg: cfg, logger: log}

	vocab, err := a.loadVocabulary(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := service.ValidateVocabulary(vocab, cfg.Quiz.NumChoices); err != nil {
		a.Close()
		return nil, fmt.Errorf("vocabulary check: %w", err)
	}

	for _, t := range vocab.Tables() {
		log.Info("vocabulary table loaded",
			zap.String("orientation", string(t.Orientation)),
			zap.Int("entries", t.Len()),
		)
	}

	sessions, err := a.sessionStore(ctx, forceMemoryStore)
	if err != nil {
		a.Close()
		return nil, err
	}

	seed := cfg.Quiz.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	controller := service.NewController(
		repository.NewVocabularyRepositoryFrom(vocab),
		service.NewOptionGenerator(rand.New(rand.NewSource(seed))),
		service.NewAnswerChecker(service.NewAnswerValidator()),
		cfg.Quiz.NumChoices,
	)
	a.quiz = service.NewQuizService(controller, sessions)

	return a, nil
}

func (a *app) loadVocabulary(ctx context.Context) (*entities.Vocabulary, error) {
	switch a.cfg.Vocabulary.Source {
	case config.SourcePostgres:
		dsn, err := a.cfg.DB.DSN()
		if err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        a.cfg.DB.MaxConnections,
			MaxConnLifetime: a.cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		// The vocabulary is read once; the pool is not needed afterwards.
		defer pool.Close()

		vocab, err := pgrepo.NewVocabularyRepository(pool).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary from postgres: %w", err)
		}
		return vocab, nil

	default:
		repo, err := repository.NewVocabularyRepository(a.cfg.Vocabulary.Path)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		return repo.Vocabulary(), nil
	}
}

func (a *app) sessionStore(ctx context.Context, forceMemory bool) (service.SessionStore, error) {
	if forceMemory || a.cfg.Session.Store != config.StoreRedis {
		return storage.NewSessionStorage(), nil
	}

	client, err := redis.NewClient(ctx, redis.ClientConfig{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() { _ = client.Close() })

	a.logger.Info("using redis session store",
		zap.String("addr", a.cfg.Redis.Addr),
		zap.Duration("ttl", a.cfg.Session.TTL),
	)
	return redis.NewSessionStorage(client, a.cfg.Session.TTL), nil
}

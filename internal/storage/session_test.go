package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

func TestSessionStorageSaveGet(t *testing.T) {
	s := NewSessionStorage()
	ctx := context.Background()

	session := entities.NewQuizSession("abc")
	session.Question = entities.Question{Term: "ねこ", Options: []string{"chat", "chien"}, CorrectAnswer: "chat"}
	session.Score = entities.Score{Correct: 2, Total: 3, MaxScore: 2}

	if err := s.Save(ctx, session); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Score != session.Score || got.Question.Term != "ねこ" {
		t.Errorf("Expected stored session %+v, got %+v", session, got)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 session, got %d", s.Len())
	}
}

func TestSessionStorageReturnsCopies(t *testing.T) {
	s := NewSessionStorage()
	ctx := context.Background()

	session := entities.NewQuizSession("abc")
	session.Question.Options = []string{"a", "i", "u"}
	if err := s.Save(ctx, session); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Mutating the saved value must not leak into the store.
	session.Question.Options[0] = "x"
	session.Score.Correct = 9

	got, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Question.Options[0] != "a" || got.Score.Correct != 0 {
		t.Errorf("Expected stored session to be isolated, got %+v", got)
	}

	got.Question.Options[1] = "y"
	again, _ := s.Get(ctx, "abc")
	if again.Question.Options[1] != "i" {
		t.Errorf("Expected returned session to be a copy, got options %v", again.Question.Options)
	}
}

func TestSessionStorageNotFound(t *testing.T) {
	s := NewSessionStorage()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}

	if err := s.Save(ctx, entities.NewQuizSession("abc")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := s.Get(ctx, "abc"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
}

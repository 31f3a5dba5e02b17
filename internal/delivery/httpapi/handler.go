// Package httpapi exposes the quiz to browsers as a JSON API.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ironwater12/japanese-learning-app/internal/service"
	"github.com/ironwater12/japanese-learning-app/internal/storage"
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
	End(ctx context.Context, id string) error
}

type vocabularyRequest struct {
	Reversed bool `json:"reversed"`
	Words    bool `json:"words"`
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

type SessionHandler struct {
	quiz   QuizService
	logger *zap.Logger
}

func NewSessionHandler(quiz QuizService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{quiz: quiz, logger: logger}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	view, err := h.quiz.Start(c.Request.Context(), "")
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Debug("quiz session started", zap.String("session_id", view.SessionID))
	c.JSON(http.StatusCreated, view)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	view, err := h.quiz.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.quiz.End(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var sub service.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.quiz.Submit(c.Request.Context(), c.Param("id"), sub)
	h.respond(c, view, err)
}

func (h *SessionHandler) NextQuestion(c *gin.Context) {
	view, err := h.quiz.Next(c.Request.Context(), c.Param("id"))
	h.respond(c, view, err)
}

func (h *SessionHandler) SwitchVocabulary(c *gin.Context) {
	var req vocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.quiz.SwitchVocabulary(c.Request.Context(), c.Param("id"), req.Reversed, req.Words)
	h.respond(c, view, err)
}

func (h *SessionHandler) ToggleFreeText(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.quiz.ToggleFreeText(c.Request.Context(), c.Param("id"), req.Enabled)
	h.respond(c, view, err)
}

func (h *SessionHandler) ToggleNoMistake(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.quiz.ToggleNoMistake(c.Request.Context(), c.Param("id"), req.Enabled)
	h.respond(c, view, err)
}

func (h *SessionHandler) ResetScore(c *gin.Context) {
	view, err := h.quiz.ResetScore(c.Request.Context(), c.Param("id"))
	h.respond(c, view, err)
}

func (h *SessionHandler) respond(c *gin.Context, view *service.View, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SessionHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found", "code": "SESSION_NOT_FOUND"})
	case errors.Is(err, service.ErrEmptySessionID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session id required", "code": "MISSING_SESSION_ID"})
	default:
		h.logger.Error("quiz request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("session_id", c.Param("id")),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error", "code": "INTERNAL"})
	}
}

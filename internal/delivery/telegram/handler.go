package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
	"github.com/ironwater12/japanese-learning-app/internal/service"
	"github.com/ironwater12/japanese-learning-app/internal/storage"
)

type Handler struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
	quiz   QuizService
}

func NewHandler(bot *tgbotapi.BotAPI, logger *zap.Logger, quiz QuizService) *Handler {
	return &Handler{
		bot:    bot,
		logger: logger,
		quiz:   quiz,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		h.handleCommand(ctx, chatID, update.Message.Command())
		return
	}

	_ = h.withErrorHandling(h.textAnswerHandler(update.Message.Text))(ctx, chatID)
}

// textAnswerHandler submits a typed message as the answer to the current question.
func (h *Handler) textAnswerHandler(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, err := h.ensureSession(ctx, chatID); err != nil {
			return err
		}

		view, err := h.quiz.Submit(ctx, sessionID(chatID), service.Submission{Text: text})
		if err != nil {
			return err
		}

		h.sendResult(chatID, view)
		return nil
	}
}

// ensureSession returns the chat's session, starting one on first contact.
func (h *Handler) ensureSession(ctx context.Context, chatID int64) (*service.View, error) {
	view, err := h.quiz.Get(ctx, sessionID(chatID))
	if err == nil {
		return view, nil
	}
	if !errors.Is(err, storage.ErrSessionNotFound) {
		return nil, err
	}

	h.logger.Info("starting quiz session", zap.Int64("chat_id", chatID))
	return h.quiz.Start(ctx, sessionID(chatID))
}

func (h *Handler) sendQuestion(chatID int64, view *service.View) {
	msg := newMessage(chatID, formatQuestion(view))
	if kb := buildOptionsKeyboard(view); kb != nil {
		msg.ReplyMarkup = kb
	}
	h.send(msg)
}

func (h *Handler) sendResult(chatID int64, view *service.View) {
	switch view.Feedback.Kind {
	case entities.FeedbackUnanswered, entities.FeedbackAnswered:
		h.send(newPlainMessage(chatID, view.Feedback.Message))
		return
	}

	msg := newMessage(chatID, formatResult(view))
	msg.ReplyMarkup = buildAnsweredKeyboard()
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

package telegram

import (
	"context"
)

func (h *Handler) handleCommand(ctx context.Context, chatID int64, command string) {
	switch command {
	case "start":
		_ = h.withErrorHandling(h.startHandler())(ctx, chatID)
	case "next":
		_ = h.withErrorHandling(h.nextHandler())(ctx, chatID)
	case "reset":
		_ = h.withErrorHandling(h.resetHandler())(ctx, chatID)
	case "settings":
		_ = h.withErrorHandling(h.settingsHandler())(ctx, chatID)
	case "help":
		h.send(newMessage(chatID, welcomeMarkdownV2()))
	default:
		h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// startHandler begins a fresh session for the chat, dropping any previous one.
func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.quiz.Start(ctx, sessionID(chatID))
		if err != nil {
			return err
		}

		h.send(newMessage(chatID, welcomeMarkdownV2()))
		h.sendQuestion(chatID, view)
		return nil
	}
}

func (h *Handler) nextHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, err := h.ensureSession(ctx, chatID); err != nil {
			return err
		}

		view, err := h.quiz.Next(ctx, sessionID(chatID))
		if err != nil {
			return err
		}

		h.sendQuestion(chatID, view)
		return nil
	}
}

func (h *Handler) resetHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, err := h.ensureSession(ctx, chatID); err != nil {
			return err
		}

		view, err := h.quiz.ResetScore(ctx, sessionID(chatID))
		if err != nil {
			return err
		}

		h.send(newMessage(chatID, formatScore(view)))
		return nil
	}
}

func (h *Handler) settingsHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		view, err := h.ensureSession(ctx, chatID)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, formatSettings(view))
		msg.ReplyMarkup = buildSettingsKeyboard(view)
		h.send(msg)
		return nil
	}
}

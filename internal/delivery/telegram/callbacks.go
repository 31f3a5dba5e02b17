package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
	"github.com/ironwater12/japanese-learning-app/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	cd := decodeCallback(cb.Data)

	var (
		notice string
		err    error
	)

	switch cd.Action {
	case actionAnswer:
		notice, err = h.handleAnswerCallback(ctx, cb, cd)
	case actionNext:
		err = h.nextHandler()(ctx, chatID)
	case actionReset:
		err = h.resetHandler()(ctx, chatID)
	case actionSettings:
		err = h.settingsHandler()(ctx, chatID)
	case actionMode:
		err = h.handleModeCallback(ctx, cb, cd)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
	}

	if err != nil {
		h.logger.Error("callback failed",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		notice = msgInternalError
	}

	// Remove the user's "clock".
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, notice)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

// handleAnswerCallback submits the picked option. It returns a notice for stale keyboards.
func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (string, error) {
	chatID := cb.Message.Chat.ID

	index, term, ok := parseAnswerCallback(cd)
	if !ok {
		return "", fmt.Errorf("invalid answer callback %q", cd.Raw)
	}

	view, err := h.ensureSession(ctx, chatID)
	if err != nil {
		return "", err
	}
	if view.Term != term || view.Phase != entities.PhaseAwaitingAnswer || index >= len(view.Options) {
		return msgQuestionExpired, nil
	}

	view, err = h.quiz.Submit(ctx, sessionID(chatID), service.Submission{Option: view.Options[index]})
	if err != nil {
		return "", err
	}

	h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, cb.Message.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	}))
	h.sendResult(chatID, view)
	return "", nil
}

// handleModeCallback flips one mode and refreshes the settings message.
func (h *Handler) handleModeCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) error {
	chatID := cb.Message.Chat.ID
	id := sessionID(chatID)

	if len(cd.Params) != 1 {
		return fmt.Errorf("invalid mode callback %q", cd.Raw)
	}

	current, err := h.ensureSession(ctx, chatID)
	if err != nil {
		return err
	}
	modes := current.Modes

	var (
		view         *service.View
		showQuestion bool
	)

	switch cd.Params[0] {
	case modeFreeText:
		view, err = h.quiz.ToggleFreeText(ctx, id, !modes.FreeText)
		showQuestion = view != nil && view.Phase == entities.PhaseAwaitingAnswer
	case modeWords:
		view, err = h.quiz.SwitchVocabulary(ctx, id, modes.Reversed, !modes.Words)
		showQuestion = true
	case modeReversed:
		view, err = h.quiz.SwitchVocabulary(ctx, id, !modes.Reversed, modes.Words)
		showQuestion = true
	case modeNoMistake:
		view, err = h.quiz.ToggleNoMistake(ctx, id, !modes.NoMistake)
	default:
		return fmt.Errorf("unknown mode %q", cd.Params[0])
	}
	if err != nil {
		return err
	}

	edit := newEdit(chatID, cb.Message.MessageID, formatSettings(view))
	kb := buildSettingsKeyboard(view)
	edit.ReplyMarkup = &kb
	h.send(edit)

	if showQuestion {
		h.sendQuestion(chatID, view)
	} else {
		h.send(newMessage(chatID, formatScore(view)))
	}
	return nil
}

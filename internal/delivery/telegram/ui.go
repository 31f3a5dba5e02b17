package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ironwater12/japanese-learning-app/internal/service"
)

// buildOptionsKeyboard builds one button per option. Free-text mode has no keyboard.
func buildOptionsKeyboard(v *service.View) *tgbotapi.InlineKeyboardMarkup {
	if v.ShowTextInput || len(v.Options) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Options))
	for i, opt := range v.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt, buildAnswerCallback(i, v.Term)),
		))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildAnsweredKeyboard builds the keyboard shown under a result.
func buildAnsweredKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next", buildNextCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Reset score", buildResetCallback()),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", buildSettingsCallback()),
		),
	)
}

// buildSettingsKeyboard builds mode toggles labelled with their current state.
func buildSettingsKeyboard(v *service.View) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggleLabel("📝 Type your answer", v.Modes.FreeText), buildModeCallback(modeFreeText)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggleLabel("🔡 Full words", v.Modes.Words), buildModeCallback(modeWords)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggleLabel("🔁 Switch language", v.Modes.Reversed), buildModeCallback(modeReversed)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggleLabel("❌ No mistake", v.Modes.NoMistake), buildModeCallback(modeNoMistake)),
		),
	)
}

func toggleLabel(label string, on bool) string {
	if on {
		return "✅ " + label
	}
	return "⬜ " + label
}

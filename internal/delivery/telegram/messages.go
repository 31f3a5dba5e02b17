// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"strings"

	"github.com/ironwater12/japanese-learning-app/internal/service"
)

// Plain text messages.
const (
	msgInternalError   = "Something went wrong. Please try again later."
	msgQuestionExpired = "This question is no longer active."
	msgTypeAnswer      = "✍️ Type your answer in the chat."
	msgUnknownCommand  = "Unknown command. Available commands:\n\n" +
		"/start — start a new quiz\n" +
		"/next — skip to the next question\n" +
		"/reset — reset the score\n" +
		"/settings — change quiz modes\n" +
		"/help — show help"
)

// welcomeMarkdownV2 builds the welcome message safely for MarkdownV2.
func welcomeMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("🏯 Japanese Quiz 🏯"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Learn hiragana and everyday Japanese words with flashcards."))
	sb.WriteString("\n\n")
	sb.WriteString(md("📝 Type your answer — answer in the chat instead of picking an option."))
	sb.WriteString("\n")
	sb.WriteString(md("🔡 Full words — translate words instead of single characters."))
	sb.WriteString("\n")
	sb.WriteString(md("🔁 Switch language — translate from French to Japanese."))
	sb.WriteString("\n")
	sb.WriteString(md("❌ No mistake — one wrong answer resets your score, your best streak is kept."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Use /settings to change modes. Here is your first question:"))

	return sb.String()
}

// formatQuestion renders the prompt, the term and the score banner.
func formatQuestion(v *service.View) string {
	var sb strings.Builder

	if v.Prompt != "" {
		sb.WriteString(md(v.Prompt))
		sb.WriteString("\n\n")
	}
	sb.WriteString(bold(v.Term))
	sb.WriteString("\n\n")

	if v.ShowTextInput {
		sb.WriteString(md(msgTypeAnswer))
		sb.WriteString("\n\n")
	}

	sb.WriteString(formatScore(v))
	return sb.String()
}

// formatResult renders the feedback banner after a submission.
func formatResult(v *service.View) string {
	var sb strings.Builder

	sb.WriteString(md(v.Feedback.Message))
	sb.WriteString("\n\n")
	sb.WriteString(formatScore(v))
	return sb.String()
}

func formatScore(v *service.View) string {
	s := md(v.ScoreText)
	if v.MaxScoreVisible {
		s += "\n" + bold(v.MaxScoreText)
	}
	return s
}

// formatSettings renders the mode overview.
func formatSettings(v *service.View) string {
	var sb strings.Builder

	sb.WriteString(bold("⚙️ Settings"))
	sb.WriteString("\n\n")
	sb.WriteString(md("📝 Type your answer: " + formatBool(v.Modes.FreeText)))
	sb.WriteString("\n")
	sb.WriteString(md("🔡 Full words: " + formatBool(v.Modes.Words)))
	sb.WriteString("\n")
	sb.WriteString(md("🔁 Switch language: " + formatBool(v.Modes.Reversed)))
	sb.WriteString("\n")
	sb.WriteString(md("❌ No mistake: " + formatBool(v.Modes.NoMistake)))

	return sb.String()
}

func formatBool(b bool) string {
	if b {
		return "on ✅"
	}
	return "off ❌"
}

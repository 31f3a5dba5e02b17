package service

import "github.com/ironwater12/japanese-learning-app/internal/domain/entities"

// View is everything a UI needs to re-render after an operation.
type View struct {
	SessionID       string            `json:"session_id"`
	Prompt          string            `json:"prompt"`
	Term            string            `json:"term"`
	Options         []string          `json:"options"`
	Feedback        entities.Feedback `json:"feedback"`
	FeedbackVisible bool              `json:"feedback_visible"`
	Score           entities.Score    `json:"score"`
	ScoreText       string            `json:"score_text"`
	MaxScoreText    string            `json:"max_score_text"`
	MaxScoreVisible bool              `json:"max_score_visible"`
	Modes           entities.Modes    `json:"modes"`
	Phase           entities.Phase    `json:"phase"`
	ShowTextInput   bool              `json:"show_text_input"`
	ShowOptions     bool              `json:"show_options"`
	ValidateEnabled bool              `json:"validate_enabled"`
	NextEnabled     bool              `json:"next_enabled"`
}

// NewView renders session state into a View.
func NewView(s *entities.QuizSession) *View {
	answered := s.Phase == entities.PhaseAnswered

	options := make([]string, len(s.Question.Options))
	copy(options, s.Question.Options)

	return &View{
		SessionID:       s.ID,
		Prompt:          s.Question.Prompt,
		Term:            s.Question.Term,
		Options:         options,
		Feedback:        s.Feedback,
		FeedbackVisible: answered,
		Score:           s.Score,
		ScoreText:       s.Score.Text(),
		MaxScoreText:    s.Score.MaxText(),
		MaxScoreVisible: s.Modes.NoMistake,
		Modes:           s.Modes,
		Phase:           s.Phase,
		ShowTextInput:   s.Modes.FreeText,
		ShowOptions:     !s.Modes.FreeText,
		ValidateEnabled: !answered,
		NextEnabled:     answered,
	}
}

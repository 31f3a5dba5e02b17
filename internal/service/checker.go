package service

import (
	"fmt"
	"strings"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

// Feedback messages.
const (
	msgSelectAnswer    = "Select an answer"
	msgCorrect         = "✅ Correct!"
	msgWrong           = "❌ Wrong, it was: %s"
	msgScoreReset      = "Your score was reset"
	msgAlreadyAnswered = "Already answered, go to the next question"
)

// Submission is what the user sent: a picked option or typed text.
// Which field is read depends on the free-text mode.
type Submission struct {
	Option string `json:"option"`
	Text   string `json:"text"`
}

// value returns the submission relevant for the given mode.
func (s Submission) value(freeText bool) string {
	if freeText {
		return s.Text
	}
	return s.Option
}

// AnswerChecker judges submissions and applies the scoring policy.
type AnswerChecker struct {
	validator *AnswerValidator
}

// NewAnswerChecker creates a new AnswerChecker.
func NewAnswerChecker(validator *AnswerValidator) *AnswerChecker {
	if validator == nil {
		validator = NewAnswerValidator()
	}
	return &AnswerChecker{validator: validator}
}

// Check judges sub against q and returns the feedback, the updated score and the next phase.
// The input score is not modified.
func (c *AnswerChecker) Check(
	sub Submission,
	modes entities.Modes,
	q entities.Question,
	score entities.Score,
) (entities.Feedback, entities.Score, entities.Phase) {
	answer := sub.value(modes.FreeText)
	if strings.TrimSpace(answer) == "" {
		return entities.Feedback{
			Kind:    entities.FeedbackUnanswered,
			Message: msgSelectAnswer,
		}, score, entities.PhaseAwaitingAnswer
	}

	score.Total++

	var correct bool
	if modes.FreeText {
		correct = c.validator.Validate(answer, q.CorrectAnswer)
	} else {
		correct = answer == q.CorrectAnswer
	}

	if correct {
		score.Correct++
		if modes.NoMistake {
			score.RaiseMax()
		}
		return entities.Feedback{
			Kind:    entities.FeedbackCorrect,
			Message: msgCorrect,
		}, score, entities.PhaseAnswered
	}

	fb := entities.Feedback{
		Kind:          entities.FeedbackWrong,
		Message:       fmt.Sprintf(msgWrong, q.CorrectAnswer),
		CorrectAnswer: q.CorrectAnswer,
	}

	if modes.NoMistake {
		// The streak must be recorded before the reset wipes it.
		score.RaiseMax()
		score.Reset()
		fb.ScoreReset = true
		fb.Message += "\n" + msgScoreReset
	}

	return fb, score, entities.PhaseAnswered
}

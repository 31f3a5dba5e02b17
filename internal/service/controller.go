package service

import (
	"fmt"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

// Controller applies quiz operations to a session in place.
// It holds no per-user state, so one Controller serves every session.
type Controller struct {
	vocab      VocabularyRepo
	generator  *OptionGenerator
	checker    *AnswerChecker
	numChoices int
}

// NewController creates a new Controller.
func NewController(
	vocab VocabularyRepo,
	generator *OptionGenerator,
	checker *AnswerChecker,
	numChoices int,
) *Controller {
	if numChoices < 1 {
		numChoices = DefaultNumChoices
	}
	return &Controller{
		vocab:      vocab,
		generator:  generator,
		checker:    checker,
		numChoices: numChoices,
	}
}

// NewQuestion replaces the current question with a fresh one from the active table
// and moves the session back to the awaiting-answer phase.
func (c *Controller) NewQuestion(s *entities.QuizSession) error {
	q, err := c.generate(s.Modes.Orientation())
	if err != nil {
		return err
	}

	s.Question = q
	s.Phase = entities.PhaseAwaitingAnswer
	s.Feedback = entities.Feedback{}
	s.Touch()
	return nil
}

// Check judges a submission. A session that already answered its question is left untouched.
func (c *Controller) Check(s *entities.QuizSession, sub Submission) {
	if s.Phase == entities.PhaseAnswered {
		s.Feedback = entities.Feedback{
			Kind:    entities.FeedbackAnswered,
			Message: msgAlreadyAnswered,
		}
		return
	}

	fb, score, phase := c.checker.Check(sub, s.Modes, s.Question, s.Score)
	s.Feedback = fb
	s.Score = score
	s.Phase = phase
	s.Touch()
}

// SwitchVocabulary selects the table for the given direction and granularity
// and discards the current question in favor of a new one.
func (c *Controller) SwitchVocabulary(s *entities.QuizSession, reversed, words bool) error {
	modes := s.Modes
	modes.Reversed = reversed
	modes.Words = words

	q, err := c.generate(modes.Orientation())
	if err != nil {
		return err
	}

	s.Modes = modes
	s.Question = q
	s.Phase = entities.PhaseAwaitingAnswer
	s.Feedback = entities.Feedback{}
	s.Touch()
	return nil
}

// ToggleFreeText switches between typed answers and option picking.
func (c *Controller) ToggleFreeText(s *entities.QuizSession, enabled bool) {
	s.Modes.FreeText = enabled
	s.Feedback = entities.Feedback{}
	s.Touch()
}

// ToggleNoMistake resets the running counters whatever the new value is.
// MaxScore is kept and only shown while the mode is on.
func (c *Controller) ToggleNoMistake(s *entities.QuizSession, enabled bool) {
	s.Modes.NoMistake = enabled
	s.Score.Reset()
	s.Touch()
}

// ResetScore zeroes the running counters. MaxScore is never touched.
func (c *Controller) ResetScore(s *entities.QuizSession) {
	s.Score.Reset()
	s.Touch()
}

func (c *Controller) generate(o entities.Orientation) (entities.Question, error) {
	table, err := c.vocab.Table(o)
	if err != nil {
		return entities.Question{}, fmt.Errorf("get table %s: %w", o, err)
	}
	return c.generator.Generate(table, table.Prompt, c.numChoices)
}

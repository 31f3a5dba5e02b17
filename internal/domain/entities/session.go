package entities

import "time"

// Phase is the per-question state of a quiz session.
type Phase string

const (
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseAnswered       Phase = "answered"
)

// Modes holds the four independent quiz toggles.
type Modes struct {
	FreeText  bool `json:"free_text"`  // typed answers instead of options
	Words     bool `json:"words"`      // full words instead of single characters
	Reversed  bool `json:"reversed"`   // french -> japanese direction
	NoMistake bool `json:"no_mistake"` // any mistake resets the score
}

// Orientation returns the vocabulary table selected by the modes.
func (m Modes) Orientation() Orientation {
	return OrientationFor(m.Reversed, m.Words)
}

// FeedbackKind classifies the outcome shown after a submission.
type FeedbackKind string

const (
	FeedbackNone       FeedbackKind = ""
	FeedbackUnanswered FeedbackKind = "unanswered"
	FeedbackCorrect    FeedbackKind = "correct"
	FeedbackWrong      FeedbackKind = "wrong"
	FeedbackAnswered   FeedbackKind = "already_answered"
)

// Feedback is the result banner of the last submission.
type Feedback struct {
	Kind          FeedbackKind `json:"kind"`
	Message       string       `json:"message"`
	CorrectAnswer string       `json:"correct_answer,omitempty"` // revealed on a wrong answer
	ScoreReset    bool         `json:"score_reset,omitempty"`
}

// QuizSession is the state owned by a single quiz taker.
type QuizSession struct {
	ID        string    `json:"id"`
	Question  Question  `json:"question"`
	Score     Score     `json:"score"`
	Modes     Modes     `json:"modes"`
	Phase     Phase     `json:"phase"`
	Feedback  Feedback  `json:"feedback"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuizSession creates an empty session in the awaiting-answer phase.
func NewQuizSession(id string) *QuizSession {
	now := time.Now()
	return &QuizSession{
		ID:        id,
		Phase:     PhaseAwaitingAnswer,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification timestamp.
func (s *QuizSession) Touch() {
	s.UpdatedAt = time.Now()
}

package entities

// Question is a single flashcard: a term to translate and the offered options.
type Question struct {
	Prompt        string   `json:"prompt"`         // prompt prefix of the active table
	Term          string   `json:"term"`           // character or word to translate
	Options       []string `json:"options"`        // shuffled, distinct, contains CorrectAnswer
	CorrectAnswer string   `json:"correct_answer"` // may hold several forms separated by "/"
}

// Text returns the full prompt shown to the user.
func (q Question) Text() string {
	if q.Prompt == "" {
		return q.Term
	}
	return q.Prompt + "\n" + q.Term
}

// IsZero reports whether no question has been generated yet.
func (q Question) IsZero() bool {
	return q.Term == "" && len(q.Options) == 0
}

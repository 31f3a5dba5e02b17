package entities

import "fmt"

// Score tracks the running result of a quiz session.
// Correct never exceeds Total. MaxScore is a high-water mark of Correct reached
// in no-mistake mode and is never decreased.
type Score struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	MaxScore int `json:"max_score"`
}

// Reset zeroes the running counters. MaxScore is kept.
func (s *Score) Reset() {
	s.Correct = 0
	s.Total = 0
}

// RaiseMax lifts MaxScore to Correct when Correct is higher.
func (s *Score) RaiseMax() {
	if s.Correct > s.MaxScore {
		s.MaxScore = s.Correct
	}
}

// Text renders the score banner.
func (s Score) Text() string {
	return fmt.Sprintf("Score: %d / %d", s.Correct, s.Total)
}

// MaxText renders the max score banner.
func (s Score) MaxText() string {
	return fmt.Sprintf("🏆 Max score: %d", s.MaxScore)
}

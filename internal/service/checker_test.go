package service

import (
	"strings"
	"testing"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

func catQuestion() entities.Question {
	return entities.Question{
		Prompt:        "Translate:",
		Term:          "猫",
		Options:       []string{"inu", "neko (cat)", "tori", "sakana"},
		CorrectAnswer: "neko (cat)",
	}
}

func TestCheckEmptySubmission(t *testing.T) {
	c := NewAnswerChecker(nil)
	score := entities.Score{Correct: 2, Total: 3, MaxScore: 1}

	testCases := []struct {
		name  string
		sub   Submission
		modes entities.Modes
	}{
		{"no option", Submission{}, entities.Modes{}},
		{"text ignored in option mode", Submission{Text: "neko"}, entities.Modes{}},
		{"blank text", Submission{Text: "   "}, entities.Modes{FreeText: true}},
		{"option ignored in free-text mode", Submission{Option: "neko (cat)"}, entities.Modes{FreeText: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fb, got, phase := c.Check(tc.sub, tc.modes, catQuestion(), score)

			if fb.Kind != entities.FeedbackUnanswered {
				t.Errorf("Expected unanswered feedback, got %q", fb.Kind)
			}
			if got != score {
				t.Errorf("Expected score %+v to stay unchanged, got %+v", score, got)
			}
			if phase != entities.PhaseAwaitingAnswer {
				t.Errorf("Expected phase to stay %q, got %q", entities.PhaseAwaitingAnswer, phase)
			}
		})
	}
}

func TestCheckScoring(t *testing.T) {
	c := NewAnswerChecker(nil)

	testCases := []struct {
		name      string
		sub       Submission
		modes     entities.Modes
		score     entities.Score
		want      entities.Score
		kind      entities.FeedbackKind
		wantReset bool
	}{
		{
			name:  "correct option",
			sub:   Submission{Option: "neko (cat)"},
			score: entities.Score{Correct: 1, Total: 1},
			want:  entities.Score{Correct: 2, Total: 2},
			kind:  entities.FeedbackCorrect,
		},
		{
			name:  "option needs exact match",
			sub:   Submission{Option: "neko"},
			score: entities.Score{},
			want:  entities.Score{Total: 1},
			kind:  entities.FeedbackWrong,
		},
		{
			name:  "correct free text without gloss",
			sub:   Submission{Text: " NEKO "},
			modes: entities.Modes{FreeText: true},
			want:  entities.Score{Correct: 1, Total: 1},
			kind:  entities.FeedbackCorrect,
		},
		{
			name:  "max score untouched outside no-mistake mode",
			sub:   Submission{Option: "neko (cat)"},
			score: entities.Score{Correct: 9, Total: 9, MaxScore: 2},
			want:  entities.Score{Correct: 10, Total: 10, MaxScore: 2},
			kind:  entities.FeedbackCorrect,
		},
		{
			name:  "no-mistake correct raises max",
			sub:   Submission{Option: "neko (cat)"},
			modes: entities.Modes{NoMistake: true},
			score: entities.Score{Correct: 5, Total: 7, MaxScore: 5},
			want:  entities.Score{Correct: 6, Total: 8, MaxScore: 6},
			kind:  entities.FeedbackCorrect,
		},
		{
			name:  "no-mistake correct below max",
			sub:   Submission{Option: "neko (cat)"},
			modes: entities.Modes{NoMistake: true},
			score: entities.Score{Correct: 1, Total: 1, MaxScore: 8},
			want:  entities.Score{Correct: 2, Total: 2, MaxScore: 8},
			kind:  entities.FeedbackCorrect,
		},
		{
			name:      "no-mistake wrong keeps the streak as max",
			sub:       Submission{Option: "inu"},
			modes:     entities.Modes{NoMistake: true},
			score:     entities.Score{Correct: 3, Total: 3, MaxScore: 0},
			want:      entities.Score{Correct: 0, Total: 0, MaxScore: 3},
			kind:      entities.FeedbackWrong,
			wantReset: true,
		},
		{
			name:      "no-mistake wrong never lowers max",
			sub:       Submission{Text: "inu"},
			modes:     entities.Modes{NoMistake: true, FreeText: true},
			score:     entities.Score{Correct: 2, Total: 2, MaxScore: 10},
			want:      entities.Score{Correct: 0, Total: 0, MaxScore: 10},
			kind:      entities.FeedbackWrong,
			wantReset: true,
		},
		{
			name:  "wrong outside no-mistake mode",
			sub:   Submission{Option: "tori"},
			score: entities.Score{Correct: 3, Total: 3, MaxScore: 1},
			want:  entities.Score{Correct: 3, Total: 4, MaxScore: 1},
			kind:  entities.FeedbackWrong,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fb, got, phase := c.Check(tc.sub, tc.modes, catQuestion(), tc.score)

			if got != tc.want {
				t.Errorf("Expected score %+v, got %+v", tc.want, got)
			}
			if got.Correct > got.Total {
				t.Errorf("Correct %d exceeds total %d", got.Correct, got.Total)
			}
			if fb.Kind != tc.kind {
				t.Errorf("Expected feedback %q, got %q", tc.kind, fb.Kind)
			}
			if phase != entities.PhaseAnswered {
				t.Errorf("Expected phase %q, got %q", entities.PhaseAnswered, phase)
			}
			if fb.ScoreReset != tc.wantReset {
				t.Errorf("Expected ScoreReset %v, got %v", tc.wantReset, fb.ScoreReset)
			}
			if tc.wantReset && !strings.Contains(fb.Message, msgScoreReset) {
				t.Errorf("Expected reset notice in %q", fb.Message)
			}
			if fb.Kind == entities.FeedbackWrong {
				if fb.CorrectAnswer != "neko (cat)" || !strings.Contains(fb.Message, "neko (cat)") {
					t.Errorf("Expected the correct answer to be revealed, got %+v", fb)
				}
			}
		})
	}
}

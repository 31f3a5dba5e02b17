package service

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	formSeparator = "/"
	glossOpener   = "("
)

// AnswerValidator matches typed answers against stored translations.
// A stored translation may list several accepted forms ("a/b") and each form may
// carry a gloss suffix ("neko (cat)") that the user is allowed to omit.
type AnswerValidator struct{}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// Validate checks if the user's answer matches any accepted form of correctAnswer.
func (v *AnswerValidator) Validate(userAnswer, correctAnswer string) bool {
	user := v.normalize(userAnswer)
	userBase := v.normalize(stripGloss(userAnswer))

	for _, form := range strings.Split(correctAnswer, formSeparator) {
		if user == v.normalize(form) {
			return true
		}
		if userBase != "" && userBase == v.normalize(stripGloss(form)) {
			return true
		}
	}
	return false
}

// normalize trims and case-folds s. A Caser keeps state, so one is built per call.
func (v *AnswerValidator) normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// stripGloss drops everything from the first "(" on.
func stripGloss(s string) string {
	if i := strings.Index(s, glossOpener); i >= 0 {
		return s[:i]
	}
	return s
}

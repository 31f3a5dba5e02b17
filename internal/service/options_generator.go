package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

// DefaultNumChoices is the number of options offered per question.
const DefaultNumChoices = 4

var ErrInsufficientVocabulary = errors.New("insufficient vocabulary")

// OptionGenerator builds questions with shuffled multiple choice options.
type OptionGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewOptionGenerator creates a generator drawing from rnd.
// A nil rnd falls back to a time-seeded source.
func NewOptionGenerator(rnd *rand.Rand) *OptionGenerator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &OptionGenerator{rnd: rnd}
}

// Generate picks a random term from table and numChoices options including its translation.
func (g *OptionGenerator) Generate(table *entities.Table, prompt string, numChoices int) (entities.Question, error) {
	if table == nil {
		return entities.Question{}, fmt.Errorf("%w: no table", ErrInsufficientVocabulary)
	}
	if numChoices < 1 {
		numChoices = DefaultNumChoices
	}
	if table.Len() < numChoices {
		return entities.Question{}, fmt.Errorf("%w: %s has %d entries, need %d",
			ErrInsufficientVocabulary, table.Orientation, table.Len(), numChoices)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	terms := table.Terms()
	term := terms[g.rnd.Intn(len(terms))]
	correctAnswer, _ := table.Translation(term)

	pool := distractorPool(table, correctAnswer)
	if len(pool) < numChoices-1 {
		return entities.Question{}, fmt.Errorf("%w: %s has %d distinct distractors for %q, need %d",
			ErrInsufficientVocabulary, table.Orientation, len(pool), term, numChoices-1)
	}

	// Partial Fisher-Yates: the first numChoices-1 slots become a uniform sample.
	for i := 0; i < numChoices-1; i++ {
		j := i + g.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	options := make([]string, 0, numChoices)
	options = append(options, correctAnswer)
	options = append(options, pool[:numChoices-1]...)

	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return entities.Question{
		Prompt:        prompt,
		Term:          term,
		Options:       options,
		CorrectAnswer: correctAnswer,
	}, nil
}

// distractorPool collects the distinct translations of the table other than correct.
func distractorPool(table *entities.Table, correct string) []string {
	seen := map[string]bool{correct: true}
	pool := make([]string, 0, table.Len())
	for _, term := range table.Terms() {
		tr, _ := table.Translation(term)
		if seen[tr] {
			continue
		}
		seen[tr] = true
		pool = append(pool, tr)
	}
	return pool
}

// ValidateTable reports ErrInsufficientVocabulary when table can never produce a question.
func ValidateTable(table *entities.Table, numChoices int) error {
	if table == nil {
		return fmt.Errorf("%w: missing table", ErrInsufficientVocabulary)
	}
	if table.Len() < numChoices {
		return fmt.Errorf("%w: %s has %d entries, need %d",
			ErrInsufficientVocabulary, table.Orientation, table.Len(), numChoices)
	}
	if n := table.DistinctTranslations(); n < numChoices {
		return fmt.Errorf("%w: %s has %d distinct translations, need %d",
			ErrInsufficientVocabulary, table.Orientation, n, numChoices)
	}
	return nil
}

// ValidateVocabulary checks every orientation is present and large enough.
func ValidateVocabulary(v *entities.Vocabulary, numChoices int) error {
	for _, o := range entities.Orientations {
		t := v.Table(o)
		if t == nil {
			return fmt.Errorf("%w: table %s is missing", ErrInsufficientVocabulary, o)
		}
		if err := ValidateTable(t, numChoices); err != nil {
			return err
		}
	}
	return nil
}

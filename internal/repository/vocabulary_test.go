package repository

import (
	"errors"
	"strings"
	"testing"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

const sampleVocabulary = `{
  "prompts": {
    "hiragana": "Romaji of:",
    "reverse_hiragana": "Hiragana of:",
    "translation": "French for:",
    "reverse_translation": "Japanese for:"
  },
  "tables": {
    "hiragana": {"あ": "a", "い": "i", "し": "shi/si", "ぢ": "ji", "じ": "ji"},
    "translation": {"いぬ": "chien", "ねこ": "chat (animal)"},
    "reverse_translation": {"chien": "いぬ", "chat": "ねこ"}
  }
}`

func TestParseVocabulary(t *testing.T) {
	vocab, err := ParseVocabulary(strings.NewReader(sampleVocabulary))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(vocab.Tables()) != len(entities.Orientations) {
		t.Fatalf("Expected %d tables, got %d", len(entities.Orientations), len(vocab.Tables()))
	}

	words := vocab.Table(entities.OrientationWords)
	if words.Prompt != "French for:" {
		t.Errorf("Unexpected prompt %q", words.Prompt)
	}
	if tr, ok := words.Translation("ねこ"); !ok || tr != "chat (animal)" {
		t.Errorf("Expected ねこ -> chat (animal), got %q, %v", tr, ok)
	}
}

func TestParseVocabularyDerivesReverseTable(t *testing.T) {
	vocab, err := ParseVocabulary(strings.NewReader(sampleVocabulary))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	reversed := vocab.Table(entities.OrientationCharactersReversed)
	if reversed == nil {
		t.Fatal("Expected derived reverse_hiragana table")
	}
	if reversed.Prompt != "Hiragana of:" {
		t.Errorf("Unexpected prompt %q", reversed.Prompt)
	}

	testCases := map[string]string{
		"a":      "あ",
		"shi/si": "し",
		"ji":     "じ/ぢ",
	}
	for term, want := range testCases {
		got, ok := reversed.Translation(term)
		if !ok || got != want {
			t.Errorf("Expected %q -> %q, got %q (found=%v)", term, want, got, ok)
		}
	}
	if reversed.Len() != 4 {
		t.Errorf("Expected 4 entries after merging duplicates, got %d", reversed.Len())
	}
}

func TestParseVocabularyErrors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "unknown orientation",
			input:   `{"tables": {"katakana": {"ア": "a"}}}`,
			wantErr: ErrUnknownOrientation,
		},
		{
			name:    "missing forward table",
			input:   `{"tables": {"hiragana": {"あ": "a"}}}`,
			wantErr: ErrTableNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseVocabulary(strings.NewReader(tc.input))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if _, err := ParseVocabulary(strings.NewReader("{")); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestVocabularyRepositoryTable(t *testing.T) {
	repo := NewVocabularyRepositoryFrom(entities.NewVocabulary(
		entities.NewTable(entities.OrientationCharacters, "", map[string]string{"あ": "a"}),
	))

	if _, err := repo.Table(entities.OrientationCharacters); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if _, err := repo.Table(entities.OrientationWords); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("Expected ErrTableNotFound, got %v", err)
	}
}

func TestNewVocabularyRepositoryBundledFile(t *testing.T) {
	repo, err := NewVocabularyRepository("../../assets/data/vocabulary.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, o := range entities.Orientations {
		table, err := repo.Table(o)
		if err != nil {
			t.Fatalf("Unexpected error for %s: %v", o, err)
		}
		if table.Prompt == "" {
			t.Errorf("Expected a prompt for %s", o)
		}
		if table.DistinctTranslations() < 4 {
			t.Errorf("Expected at least 4 distinct translations in %s, got %d", o, table.DistinctTranslations())
		}
	}
}

func TestNewVocabularyRepositoryMissingFile(t *testing.T) {
	if _, err := NewVocabularyRepository("does-not-exist.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

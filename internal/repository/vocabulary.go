package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

var (
	ErrTableNotFound      = errors.New("vocabulary table not found")
	ErrUnknownOrientation = errors.New("unknown vocabulary orientation")
)

// VocabularyFile is the on-disk JSON layout of the vocabulary.
// Reverse tables may be omitted; they are then derived from their forward table.
type VocabularyFile struct {
	Prompts map[entities.Orientation]string            `json:"prompts"`
	Tables  map[entities.Orientation]map[string]string `json:"tables"`
}

// VocabularyRepository provides read access to the four static vocabulary tables.
// It is built once at startup and never changes afterwards.
type VocabularyRepository struct {
	vocab *entities.Vocabulary
}

// NewVocabularyRepository loads the vocabulary from a JSON file.
func NewVocabularyRepository(path string) (*VocabularyRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vocab, err := ParseVocabulary(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return NewVocabularyRepositoryFrom(vocab), nil
}

// NewVocabularyRepositoryFrom wraps an already loaded vocabulary.
func NewVocabularyRepositoryFrom(vocab *entities.Vocabulary) *VocabularyRepository {
	return &VocabularyRepository{vocab: vocab}
}

// Table returns the table for orientation o.
func (r *VocabularyRepository) Table(o entities.Orientation) (*entities.Table, error) {
	t := r.vocab.Table(o)
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, o)
	}
	return t, nil
}

// Vocabulary returns the underlying vocabulary.
func (r *VocabularyRepository) Vocabulary() *entities.Vocabulary {
	return r.vocab
}

// ParseVocabulary decodes a VocabularyFile and builds the four tables.
func ParseVocabulary(rd io.Reader) (*entities.Vocabulary, error) {
	var file VocabularyFile
	if err := json.NewDecoder(rd).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vocabulary JSON: %w", err)
	}
	return file.Build()
}

// Build turns the raw file content into a Vocabulary.
func (f VocabularyFile) Build() (*entities.Vocabulary, error) {
	for o := range f.Tables {
		if !o.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOrientation, o)
		}
	}

	reverseOf := map[entities.Orientation]entities.Orientation{
		entities.OrientationCharactersReversed: entities.OrientationCharacters,
		entities.OrientationWordsReversed:      entities.OrientationWords,
	}

	tables := make([]*entities.Table, 0, len(entities.Orientations))
	for _, o := range entities.Orientations {
		entries, ok := f.Tables[o]
		if !ok {
			forward, isReverse := reverseOf[o]
			if !isReverse || f.Tables[forward] == nil {
				return nil, fmt.Errorf("%w: %s", ErrTableNotFound, o)
			}
			entries = Invert(f.Tables[forward])
		}
		tables = append(tables, entities.NewTable(o, f.Prompts[o], entries))
	}

	return entities.NewVocabulary(tables...), nil
}

// Invert swaps terms and translations. Terms sharing a translation are joined with "/".
func Invert(entries map[string]string) map[string]string {
	grouped := make(map[string][]string, len(entries))
	for term, translation := range entries {
		grouped[translation] = append(grouped[translation], term)
	}

	out := make(map[string]string, len(grouped))
	for translation, terms := range grouped {
		sort.Strings(terms)
		out[translation] = strings.Join(terms, "/")
	}
	return out
}

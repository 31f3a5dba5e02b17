package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
	"github.com/ironwater12/japanese-learning-app/internal/infra/postgres"
	"github.com/ironwater12/japanese-learning-app/internal/repository"
)

// VocabularyRepository reads and writes the vocabulary tables in PostgreSQL.
type VocabularyRepository struct {
	db postgres.DBTX
}

// NewVocabularyRepository creates a new VocabularyRepository.
func NewVocabularyRepository(db postgres.DBTX) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

// Load reads every entry and prompt and builds the vocabulary.
func (r *VocabularyRepository) Load(ctx context.Context) (*entities.Vocabulary, error) {
	file := repository.VocabularyFile{
		Prompts: make(map[entities.Orientation]string),
		Tables:  make(map[entities.Orientation]map[string]string),
	}

	rows, err := r.db.Query(ctx, `SELECT orientation, prompt FROM vocabulary_prompts`)
	if err != nil {
		return nil, fmt.Errorf("query prompts: %w", err)
	}
	for rows.Next() {
		var o, prompt string
		if err := rows.Scan(&o, &prompt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		file.Prompts[entities.Orientation(o)] = prompt
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompts: %w", err)
	}

	rows, err = r.db.Query(ctx, `SELECT orientation, term, translation FROM vocabulary_entries`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o, term, translation string
		if err := rows.Scan(&o, &term, &translation); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		orientation := entities.Orientation(o)
		if file.Tables[orientation] == nil {
			file.Tables[orientation] = make(map[string]string)
		}
		file.Tables[orientation][term] = translation
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return file.Build()
}

// Replace overwrites the stored vocabulary and returns the number of copied entries.
// The repository should be built on a transaction so readers never see a partial table.
func (r *VocabularyRepository) Replace(ctx context.Context, vocab *entities.Vocabulary) (int64, error) {
	if _, err := r.db.Exec(ctx, `DELETE FROM vocabulary_entries`); err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM vocabulary_prompts`); err != nil {
		return 0, fmt.Errorf("clear prompts: %w", err)
	}

	var entries [][]any
	for _, t := range vocab.Tables() {
		_, err := r.db.Exec(ctx,
			`INSERT INTO vocabulary_prompts (orientation, prompt) VALUES ($1, $2)`,
			string(t.Orientation), t.Prompt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert prompt %s: %w", t.Orientation, err)
		}

		for _, term := range t.Terms() {
			translation, _ := t.Translation(term)
			entries = append(entries, []any{string(t.Orientation), term, translation})
		}
	}

	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"vocabulary_entries"},
		[]string{"orientation", "term", "translation"},
		pgx.CopyFromRows(entries),
	)
	if err != nil {
		return 0, fmt.Errorf("copy entries: %w", err)
	}

	return n, nil
}

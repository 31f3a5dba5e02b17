package service

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/ironwater12/japanese-learning-app/internal/domain/entities"
)

func animalsTable() *entities.Table {
	return entities.NewTable(entities.OrientationCharacters, "Translate:", map[string]string{
		"犬": "inu",
		"猫": "neko",
		"鳥": "tori",
		"魚": "sakana",
	})
}

func TestGenerateUsesWholeSmallTable(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(1)))
	table := animalsTable()

	for i := 0; i < 50; i++ {
		q, err := gen.Generate(table, table.Prompt, 4)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		got := append([]string(nil), q.Options...)
		sort.Strings(got)
		want := []string{"inu", "neko", "sakana", "tori"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Expected options %v, got %v", want, got)
		}

		tr, ok := table.Translation(q.Term)
		if !ok {
			t.Fatalf("Term %q is not in the table", q.Term)
		}
		if q.CorrectAnswer != tr {
			t.Errorf("Expected correct answer %q for %q, got %q", tr, q.Term, q.CorrectAnswer)
		}
		if q.Prompt != "Translate:" {
			t.Errorf("Expected prompt to be kept, got %q", q.Prompt)
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	entries := map[string]string{}
	for _, kv := range [][2]string{
		{"あ", "a"}, {"い", "i"}, {"う", "u"}, {"え", "e"}, {"お", "o"},
		{"か", "ka"}, {"き", "ki"}, {"く", "ku"}, {"け", "ke"}, {"こ", "ko"},
		// duplicated translation must never show up twice
		{"を", "o"},
	} {
		entries[kv[0]] = kv[1]
	}
	table := entities.NewTable(entities.OrientationCharacters, "", entries)
	gen := NewOptionGenerator(rand.New(rand.NewSource(42)))

	for _, n := range []int{2, 4, 6} {
		for i := 0; i < 200; i++ {
			q, err := gen.Generate(table, "", n)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(q.Options) != n {
				t.Fatalf("Expected %d options, got %d", n, len(q.Options))
			}

			seen := map[string]bool{}
			found := false
			for _, opt := range q.Options {
				if seen[opt] {
					t.Fatalf("Duplicate option %q in %v", opt, q.Options)
				}
				seen[opt] = true
				if opt == q.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Fatalf("Correct answer %q missing from %v", q.CorrectAnswer, q.Options)
			}
		}
	}
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	table := animalsTable()

	a, err := NewOptionGenerator(rand.New(rand.NewSource(7))).Generate(table, "", 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := NewOptionGenerator(rand.New(rand.NewSource(7))).Generate(table, "", 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected same question for same seed, got %+v and %+v", a, b)
	}
}

func TestGenerateCorrectPositionIsSpread(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(3)))
	table := animalsTable()

	positions := make([]int, 4)
	for i := 0; i < 4000; i++ {
		q, err := gen.Generate(table, "", 4)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for idx, opt := range q.Options {
			if opt == q.CorrectAnswer {
				positions[idx]++
			}
		}
	}

	for idx, n := range positions {
		if n < 800 || n > 1200 {
			t.Errorf("Correct answer landed at position %d %d times out of 4000", idx, n)
		}
	}
}

func TestGenerateInsufficientVocabulary(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(1)))

	testCases := []struct {
		name    string
		entries map[string]string
	}{
		{"too few entries", map[string]string{"a": "1", "b": "2", "c": "3"}},
		{"too few distinct translations", map[string]string{"a": "1", "b": "1", "c": "1", "d": "1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := entities.NewTable(entities.OrientationWords, "", tc.entries)
			_, err := gen.Generate(table, "", 4)
			if !errors.Is(err, ErrInsufficientVocabulary) {
				t.Errorf("Expected ErrInsufficientVocabulary, got %v", err)
			}
			if err := ValidateTable(table, 4); !errors.Is(err, ErrInsufficientVocabulary) {
				t.Errorf("Expected ValidateTable to fail, got %v", err)
			}
		})
	}
}

func TestGenerateDoesNotMutateTable(t *testing.T) {
	table := animalsTable()
	before := table.Entries()

	gen := NewOptionGenerator(rand.New(rand.NewSource(5)))
	for i := 0; i < 20; i++ {
		if _, err := gen.Generate(table, "", 4); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if !reflect.DeepEqual(before, table.Entries()) {
		t.Error("Expected table entries to stay unchanged")
	}
	if !sort.StringsAreSorted(table.Terms()) {
		t.Error("Expected terms to stay sorted")
	}
}

func TestValidateVocabularyMissingTable(t *testing.T) {
	vocab := entities.NewVocabulary(animalsTable())
	if err := ValidateVocabulary(vocab, 4); !errors.Is(err, ErrInsufficientVocabulary) {
		t.Errorf("Expected ErrInsufficientVocabulary for missing tables, got %v", err)
	}
}

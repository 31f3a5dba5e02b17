// Package entities contains domain entities used across the application.
package entities

import (
	"fmt"
	"sort"
)

// Orientation identifies one of the four vocabulary tables.
type Orientation string

const (
	OrientationCharacters         Orientation = "hiragana"            // hiragana -> romaji
	OrientationCharactersReversed Orientation = "reverse_hiragana"    // romaji -> hiragana
	OrientationWords              Orientation = "translation"         // japanese word -> french
	OrientationWordsReversed      Orientation = "reverse_translation" // french -> japanese word
)

// Orientations lists every orientation in a stable order.
var Orientations = []Orientation{
	OrientationCharacters,
	OrientationCharactersReversed,
	OrientationWords,
	OrientationWordsReversed,
}

// OrientationFor selects the table for a {direction}x{granularity} combination.
func OrientationFor(reversed, words bool) Orientation {
	switch {
	case reversed && words:
		return OrientationWordsReversed
	case reversed:
		return OrientationCharactersReversed
	case words:
		return OrientationWords
	default:
		return OrientationCharacters
	}
}

// Valid reports whether o is one of the known orientations.
func (o Orientation) Valid() bool {
	for _, known := range Orientations {
		if o == known {
			return true
		}
	}
	return false
}

// Table is an immutable term -> translation mapping.
// Terms are kept sorted so that a seeded random source always sees the same order.
type Table struct {
	Orientation Orientation
	Prompt      string // text shown above the term, e.g. "Give the romaji of:"

	entries map[string]string
	terms   []string
}

// NewTable copies entries into a new Table.
func NewTable(orientation Orientation, prompt string, entries map[string]string) *Table {
	t := &Table{
		Orientation: orientation,
		Prompt:      prompt,
		entries:     make(map[string]string, len(entries)),
		terms:       make([]string, 0, len(entries)),
	}
	for term, translation := range entries {
		t.entries[term] = translation
		t.terms = append(t.terms, term)
	}
	sort.Strings(t.terms)
	return t
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.terms)
}

// Terms returns the sorted terms. The slice must not be modified.
func (t *Table) Terms() []string {
	return t.terms
}

// Translation returns the translation of term.
func (t *Table) Translation(term string) (string, bool) {
	tr, ok := t.entries[term]
	return tr, ok
}

// DistinctTranslations counts unique translation values.
func (t *Table) DistinctTranslations() int {
	seen := make(map[string]struct{}, len(t.entries))
	for _, tr := range t.entries {
		seen[tr] = struct{}{}
	}
	return len(seen)
}

// Entries returns a copy of the underlying mapping.
func (t *Table) Entries() map[string]string {
	out := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

func (t *Table) String() string {
	return fmt.Sprintf("%s(%d entries)", t.Orientation, t.Len())
}

// Vocabulary holds the four static tables.
type Vocabulary struct {
	tables map[Orientation]*Table
}

// NewVocabulary builds a Vocabulary from tables keyed by their orientation.
func NewVocabulary(tables ...*Table) *Vocabulary {
	v := &Vocabulary{tables: make(map[Orientation]*Table, len(tables))}
	for _, t := range tables {
		v.tables[t.Orientation] = t
	}
	return v
}

// Table returns the table for orientation o, or nil.
func (v *Vocabulary) Table(o Orientation) *Table {
	return v.tables[o]
}

// Tables returns the tables in Orientations order, skipping missing ones.
func (v *Vocabulary) Tables() []*Table {
	out := make([]*Table, 0, len(v.tables))
	for _, o := range Orientations {
		if t, ok := v.tables[o]; ok {
			out = append(out, t)
		}
	}
	return out
}

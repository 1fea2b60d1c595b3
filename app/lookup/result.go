package lookup

import (
	"context"
	"errors"
	"strings"

	"github.com/rbhz/word-lookup/app/clients/dictionaryapi"
)

// audioScanLimit is how many leading phonetics are checked for an audio URL
const audioScanLimit = 5

// ErrEmptyWord is returned for blank input
var ErrEmptyWord = errors.New("word is empty")

// Fetcher loads dictionary entries for a word
type Fetcher interface {
	Get(ctx context.Context, word string) ([]dictionaryapi.WordResponse, error)
}

// Result holds one successful lookup. It is never modified after creation.
type Result struct {
	// Word as it was submitted
	Word    string
	Entries []dictionaryapi.WordResponse
	// Audio is the pronunciation source, empty when none of the entries has one
	Audio string
}

// NewResult creates Result and derives its pronunciation audio
func NewResult(word string, entries []dictionaryapi.WordResponse) *Result {
	result := &Result{Word: word, Entries: entries}
	if len(entries) > 0 {
		result.Audio, _ = FirstNonEmpty(entries[0].Phonetics, audioScanLimit, func(p dictionaryapi.Phonetic) string {
			return p.Audio
		})
	}
	return result
}

// FirstNonEmpty returns the first non-empty value extracted from the leading
// limit items. A non-positive limit scans every item.
func FirstNonEmpty[T any](items []T, limit int, extract func(T) string) (string, bool) {
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	for _, item := range items[:limit] {
		if value := extract(item); value != "" {
			return value, true
		}
	}
	return "", false
}

// Lookup fetches the word and builds Result without touching any state
func Lookup(ctx context.Context, f Fetcher, word string) (*Result, error) {
	query := strings.TrimSpace(word)
	if query == "" {
		return nil, ErrEmptyWord
	}
	entries, err := f.Get(ctx, query)
	if err != nil {
		return nil, err
	}
	return NewResult(word, entries), nil
}

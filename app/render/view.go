// Package render derives display data from lookup state and formats it
// for the web page, Telegram messages and the terminal.
package render

import (
	"errors"

	"github.com/rbhz/word-lookup/app/clients/dictionaryapi"
	"github.com/rbhz/word-lookup/app/lookup"
)

// phoneticScanLimit is how many leading phonetics are checked for text
const phoneticScanLimit = 3

// Mode is what the results area shows
type Mode string

// display modes
const (
	ModePrompt  Mode = "prompt"
	ModeLoading Mode = "loading"
	ModeResult  Mode = "result"
)

// View holds everything needed to display a lookup
type View struct {
	Mode     Mode      `json:"mode"`
	Word     string    `json:"word,omitempty"`
	Phonetic string    `json:"phonetic,omitempty"`
	Audio    string    `json:"audio,omitempty"`
	Meanings []Meaning `json:"meanings,omitempty"`
	Source   string    `json:"source,omitempty"`

	Failure lookup.Kind `json:"failure,omitempty"`
	// Detail is the explanation sent by the API for unknown words
	Detail string `json:"detail,omitempty"`
}

// Meaning is a part of speech with its numbered definitions
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a numbered definition, numbers start at 1
type Definition struct {
	Number   int      `json:"number"`
	Text     string   `json:"definition"`
	Example  string   `json:"example,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
	Antonyms []string `json:"antonyms,omitempty"`
}

// NotFound reports whether the last lookup found nothing
func (v View) NotFound() bool {
	return v.Failure == lookup.KindNotFound
}

// Failed reports whether the last lookup failed for any other reason
func (v View) Failed() bool {
	return v.Failure != lookup.KindNone && v.Failure != lookup.KindNotFound
}

// Derive builds View from the controller state
func Derive(s lookup.State) View {
	if s.Loading {
		return View{Mode: ModeLoading, Word: s.Word}
	}
	if s.Result == nil {
		v := View{Mode: ModePrompt, Failure: s.Failure()}
		var notFound *dictionaryapi.NotFoundError
		if errors.As(s.Err, &notFound) {
			v.Detail = notFound.Message
		}
		return v
	}

	result := s.Result
	v := View{
		Mode:     ModeResult,
		Word:     result.Word,
		Phonetic: phoneticText(result.Entries),
		Audio:    result.Audio,
	}
	for _, entry := range result.Entries {
		for _, m := range entry.Meanings {
			meaning := Meaning{PartOfSpeech: m.PartOfSpeech}
			for idx, d := range m.Definitions {
				meaning.Definitions = append(meaning.Definitions, Definition{
					Number:   idx + 1,
					Text:     d.Definition,
					Example:  d.Example,
					Synonyms: nonEmpty(d.Synonyms),
					Antonyms: nonEmpty(d.Antonyms),
				})
			}
			v.Meanings = append(v.Meanings, meaning)
		}
	}
	if len(result.Entries) > 0 && len(result.Entries[0].SourceURLs) > 0 {
		v.Source = result.Entries[0].SourceURLs[0]
	}
	return v
}

// phoneticText picks the first phonetic text of the first entry,
// falling back to the entry's own phonetic
func phoneticText(entries []dictionaryapi.WordResponse) string {
	if len(entries) == 0 {
		return ""
	}
	text, ok := lookup.FirstNonEmpty(entries[0].Phonetics, phoneticScanLimit, func(p dictionaryapi.Phonetic) string {
		return p.Text
	})
	if ok {
		return text
	}
	return entries[0].Phonetic
}

func nonEmpty(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	return items
}

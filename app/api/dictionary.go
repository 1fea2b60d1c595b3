package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rbhz/word-lookup/app/lookup"
	"github.com/rbhz/word-lookup/app/render"
	"github.com/rs/zerolog/log"
)

// dictionaryService implements methods for dictionary API
type dictionaryService struct {
	fetcher lookup.Fetcher
}

// GetWord looks a single word up and returns its view
func (d dictionaryService) GetWord(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	result, err := lookup.Lookup(r.Context(), d.fetcher, word)
	if errors.Is(err, lookup.ErrEmptyWord) {
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte(`{"error":"word is required"}`)); err != nil {
			log.Warn().Err(err).Msg("failed to write response")
		}
		return
	}
	view := render.Derive(lookup.State{Word: word, Result: result, Err: err})
	response, jerr := json.Marshal(view)
	if jerr != nil {
		log.Error().Err(jerr).Str("word", word).Msg("failed to marshal view")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	switch view.Failure {
	case lookup.KindNone:
	case lookup.KindNotFound:
		status = http.StatusNotFound
	default:
		log.Error().Err(err).Str("word", word).Stringer("kind", view.Failure).Msg("failed to look word up")
		status = http.StatusBadGateway
	}
	w.WriteHeader(status)
	if _, err := w.Write(response); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

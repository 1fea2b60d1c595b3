package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rbhz/word-lookup/app/lookup"
	"github.com/rbhz/word-lookup/app/render"
	"github.com/rs/zerolog/log"
)

// pageService implements the single page UI
type pageService struct {
	controller *lookup.Controller
	authorURL  string
}

// Index renders the page for the current controller state
func (p pageService) Index(w http.ResponseWriter, r *http.Request) {
	view := render.Derive(p.controller.State())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if view.Mode == render.ModeLoading {
		w.Header().Set("Cache-Control", "no-store")
	}
	if err := render.HTMLPage(w, render.Page{View: view, AuthorURL: p.authorURL}); err != nil {
		log.Error().Err(err).Msg("failed to render page")
	}
}

// Search starts a lookup and redirects back to the page
func (p pageService) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte("invalid form")); err != nil {
			log.Warn().Err(err).Msg("failed to write response")
		}
		return
	}
	// the lookup outlives this request
	ctx := context.WithoutCancel(r.Context())
	if _, err := p.controller.Start(ctx, r.PostFormValue("word")); err != nil {
		if errors.Is(err, lookup.ErrEmptyWord) {
			w.WriteHeader(http.StatusBadRequest)
			if _, err := w.Write([]byte("word is required")); err != nil {
				log.Warn().Err(err).Msg("failed to write response")
			}
			return
		}
		log.Error().Err(err).Msg("failed to start lookup")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// State returns the current view as JSON
func (p pageService) State(w http.ResponseWriter, r *http.Request) {
	response, err := json.Marshal(render.Derive(p.controller.State()))
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal view")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if _, err := w.Write(response); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

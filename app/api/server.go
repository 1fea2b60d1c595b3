package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rbhz/word-lookup/app/lookup"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// Server serves the web UI and the JSON API
type Server struct {
	router chi.Router
}

// Run listens on the port until ctx is cancelled
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown web server")
		}
	}()
	log.Info().Int("port", port).Msg("web server started")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) setJsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// NewServer creates Server. The page and /api/v1/state share one controller,
// /api/v1/entries looks words up with the fetcher directly.
func NewServer(fetcher lookup.Fetcher, authorURL string) *Server {
	s := &Server{}
	pages := pageService{controller: lookup.NewController(fetcher), authorURL: authorURL}
	dict := dictionaryService{fetcher: fetcher}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", pages.Index)
	r.Post("/search", pages.Search)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.setJsonContentType)
		r.Get("/state", pages.State)
		r.Get("/entries/{word}", dict.GetWord)
	})

	s.router = r
	return s
}

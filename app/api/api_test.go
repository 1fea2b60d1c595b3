package api

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/rbhz/word-lookup/app/clients/dictionaryapi"
	"github.com/rbhz/word-lookup/app/lookup"
)

const testAuthorURL = "http://github.com/Xeven777"

// fetcherFunc is a dummy fetcher for testing
type fetcherFunc func(ctx context.Context, word string) ([]dictionaryapi.WordResponse, error)

func (f fetcherFunc) Get(ctx context.Context, word string) ([]dictionaryapi.WordResponse, error) {
	return f(ctx, word)
}

// helloFetcher returns a single entry for any word
var helloFetcher = fetcherFunc(func(ctx context.Context, word string) ([]dictionaryapi.WordResponse, error) {
	return []dictionaryapi.WordResponse{
		{
			Word: word,
			Phonetics: []dictionaryapi.Phonetic{
				{Text: "/həˈloʊ/"},
				{Audio: "https://api.dictionaryapi.dev/media/pronunciations/en/hello-us.mp3"},
			},
			Meanings: []dictionaryapi.Meaning{
				{
					PartOfSpeech: "noun",
					Definitions:  []dictionaryapi.Definition{{Definition: "a greeting"}},
				},
			},
		},
	}, nil
})

// getTestServer returns a test server.
func getTestServer(fetcher lookup.Fetcher) (*httptest.Server, func()) {
	if fetcher == nil {
		fetcher = helloFetcher
	}
	server := NewServer(fetcher, testAuthorURL)
	srv := httptest.NewServer(server.router)
	return srv, srv.Close
}

// noRedirectClient returns redirects to the caller instead of following them
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

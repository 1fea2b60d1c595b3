package dictionaryapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleResponse = `[
	{
		"word": "hello",
		"phonetic": "həˈləʊ",
		"phonetics": [
		{
			"text": "həˈləʊ",
			"audio": "//ssl.gstatic.com/dictionary/static/sounds/20200429/hello--_gb_1.mp3"
		},
		{
			"text": "hɛˈləʊ"
		}
		],
		"origin": "early 19th century: variant of earlier hollo ; related to holla.",
		"meanings": [
		{
			"partOfSpeech": "exclamation",
			"definitions": [
			{
				"definition": "used as a greeting or to begin a phone conversation.",
				"example": "hello there, Katie!",
				"synonyms": ["syn1", "syn2"],
				"antonyms": ["an1", "an2"]
			}
			]
		},
		{
			"partOfSpeech": "verb",
			"definitions": [
			{
				"definition": "say or shout ‘hello’.",
				"example": "I pressed the phone button and helloed",
				"synonyms": [],
				"antonyms": []
			}
			]
		}
		],
		"sourceUrls": ["https://en.wiktionary.org/wiki/hello"]
	}
]
`

const notFoundResponse = `{
	"title": "No Definitions Found",
	"message": "Sorry pal, we couldn't find definitions for the word you were looking for.",
	"resolution": "You can try the search again at later time or head to the web instead."
}`

type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testClient(t *testing.T, expectedURL string, status int, body string) *Client {
	t.Helper()
	httpClient := &http.Client{
		Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, expectedURL, req.URL.String())
			assert.Equal(t, http.MethodGet, req.Method)
			return &http.Response{
				StatusCode: status,
				Status:     http.StatusText(status),
				Body:       io.NopCloser(bytes.NewBufferString(body)),
				Header:     make(http.Header),
			}, nil
		}),
	}
	return &Client{client: httpClient, baseURL: DefaultBaseURL}
}

func TestGet(t *testing.T) {
	validURL := "https://api.dictionaryapi.dev/api/v2/entries/en/hello"
	word := "hello"
	t.Run("success", func(t *testing.T) {
		client := testClient(t, validURL, http.StatusOK, exampleResponse)
		items, err := client.Get(context.TODO(), word)
		assert.NoError(t, err)
		expected := []WordResponse{
			{
				Word:     "hello",
				Phonetic: "həˈləʊ",
				Phonetics: []Phonetic{
					{
						Text:  "həˈləʊ",
						Audio: "//ssl.gstatic.com/dictionary/static/sounds/20200429/hello--_gb_1.mp3",
					},
					{Text: "hɛˈləʊ"},
				},
				Origin: "early 19th century: variant of earlier hollo ; related to holla.",
				Meanings: []Meaning{
					{
						PartOfSpeech: "exclamation",
						Definitions: []Definition{
							{
								Definition: "used as a greeting or to begin a phone conversation.",
								Example:    "hello there, Katie!",
								Synonyms:   []string{"syn1", "syn2"},
								Antonyms:   []string{"an1", "an2"},
							},
						},
					},
					{
						PartOfSpeech: "verb",
						Definitions: []Definition{
							{
								Definition: "say or shout ‘hello’.",
								Example:    "I pressed the phone button and helloed",
								Synonyms:   []string{},
								Antonyms:   []string{},
							},
						},
					},
				},
				SourceURLs: []string{"https://en.wiktionary.org/wiki/hello"},
			},
		}
		assert.Equal(t, expected, items)
	})
	t.Run("request error", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, validURL, req.URL.String())
				return nil, http.ErrServerClosed
			}),
		}
		client := Client{client: httpClient, baseURL: DefaultBaseURL}
		items, err := client.Get(context.TODO(), word)
		assert.ErrorIs(t, err, http.ErrServerClosed)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Nil(t, items)
	})
	t.Run("invalid response", func(t *testing.T) {
		client := testClient(t, validURL, http.StatusOK, "Invalid JSON")
		items, err := client.Get(context.TODO(), word)
		assert.ErrorIs(t, err, ErrDecode)
		assert.Nil(t, items)
	})
	t.Run("object without title", func(t *testing.T) {
		client := testClient(t, validURL, http.StatusOK, `{"word": "hello"}`)
		items, err := client.Get(context.TODO(), word)
		assert.ErrorIs(t, err, ErrDecode)
		assert.Nil(t, items)
	})
	t.Run("error status", func(t *testing.T) {
		client := testClient(t, validURL, http.StatusBadRequest, `{"status": "ERROR"}`)
		items, err := client.Get(context.TODO(), word)
		assert.ErrorIs(t, err, ErrUpstream)
		assert.Nil(t, items)
	})
	t.Run("error status 404", func(t *testing.T) {
		client := testClient(t, validURL, http.StatusNotFound, notFoundResponse)
		items, err := client.Get(context.TODO(), word)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, items)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "No Definitions Found", notFound.Title)
		assert.Contains(t, notFound.Message, "couldn't find definitions")
		assert.Contains(t, notFound.Resolution, "search again")
	})
	t.Run("404 with unreadable body", func(t *testing.T) {
		client := testClient(t, validURL, http.StatusNotFound, "<html>")
		_, err := client.Get(context.TODO(), word)
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("not found object with 200", func(t *testing.T) {
		client := testClient(t, validURL, http.StatusOK, notFoundResponse)
		items, err := client.Get(context.TODO(), word)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, items)
	})
	t.Run("empty list", func(t *testing.T) {
		client := testClient(t, validURL, http.StatusOK, `[]`)
		items, err := client.Get(context.TODO(), word)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, items)
	})
	t.Run("escaped word", func(t *testing.T) {
		client := testClient(t, DefaultBaseURL+"/ice%20cream", http.StatusOK, exampleResponse)
		_, err := client.Get(context.TODO(), "ice cream")
		assert.NoError(t, err)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client := NewClient("", 0)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Zero(t, client.client.Timeout)
	})
	t.Run("custom", func(t *testing.T) {
		client := NewClient(" http://localhost:8080/entries/ ", 3*time.Second)
		assert.Equal(t, "http://localhost:8080/entries", client.baseURL)
		assert.Equal(t, 3*time.Second, client.client.Timeout)
	})
}

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/rbhz/word-lookup/app/clients/dictionaryapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWord(t *testing.T) {
	const path = "/api/v1/entries"
	t.Run("success", func(t *testing.T) {
		ts, cancel := getTestServer(nil)
		defer cancel()
		r, err := http.Get(ts.URL + path + "/hello")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, r.StatusCode)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		expected := `{"mode":"result","word":"hello","phonetic":"/həˈloʊ/",` +
			`"audio":"https://api.dictionaryapi.dev/media/pronunciations/en/hello-us.mp3",` +
			`"meanings":[{"partOfSpeech":"noun","definitions":[{"number":1,"definition":"a greeting"}]}]}`
		assert.JSONEq(t, expected, string(body))
	})
	t.Run("not found", func(t *testing.T) {
		ts, cancel := getTestServer(fetcherFunc(func(ctx context.Context, word string) ([]dictionaryapi.WordResponse, error) {
			return nil, &dictionaryapi.NotFoundError{Title: "No Definitions Found", Message: "Sorry pal"}
		}))
		defer cancel()
		r, err := http.Get(ts.URL + path + "/zzzxcv")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, r.StatusCode)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"mode":"prompt","failure":"not_found","detail":"Sorry pal"}`, string(body))
	})
	t.Run("upstream error", func(t *testing.T) {
		ts, cancel := getTestServer(fetcherFunc(func(ctx context.Context, word string) ([]dictionaryapi.WordResponse, error) {
			return nil, dictionaryapi.ErrDecode
		}))
		defer cancel()
		r, err := http.Get(ts.URL + path + "/hello")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, r.StatusCode)
		var view map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&view))
		assert.Equal(t, "decode", view["failure"])
	})
	t.Run("blank word", func(t *testing.T) {
		ts, cancel := getTestServer(nil)
		defer cancel()
		r, err := http.Get(ts.URL + path + "/%20")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, r.StatusCode)
	})
	t.Run("does not touch page state", func(t *testing.T) {
		ts, cancel := getTestServer(nil)
		defer cancel()
		_, err := http.Get(ts.URL + path + "/hello")
		require.NoError(t, err)
		assert.Equal(t, "prompt", string(getState(t, ts.URL).Mode))
	})
}

package dictionaryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the English entries endpoint of dictionaryapi.dev
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

var (
	// ErrNotFound is returned when the API has no entries for a word
	ErrNotFound = errors.New("word not found")
	// ErrDecode is returned when the response body is not a valid entries list
	ErrDecode = errors.New("malformed response")
	// ErrUpstream is returned for unexpected response statuses
	ErrUpstream = errors.New("unsuccessful API response")
)

// NotFoundError carries the explanation the API returns for unknown words
type NotFoundError struct {
	Title      string
	Message    string
	Resolution string
}

func (e *NotFoundError) Error() string {
	if e.Title == "" {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Title)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Client implements integration with DictionaryAPI
// docs: https://dictionaryapi.dev/
type Client struct {
	client  *http.Client
	baseURL string
}

// Get fetches all entries for the word
func (c *Client) Get(ctx context.Context, word string) ([]WordResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(word), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionaryapi.dev: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, parseNotFound(body)
		}
		log.Error().
			Str("status", resp.Status).
			Str("body", string(body)).
			Msg("unsuccessful response from dictionaryapi")
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	// the API answers with an object instead of a list for unknown words
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '{' {
		var apiErr errorResponse
		if err := json.Unmarshal(trimmed, &apiErr); err == nil && apiErr.Title != "" {
			return nil, parseNotFound(trimmed)
		}
	}

	var items []WordResponse
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(items) == 0 {
		return nil, &NotFoundError{}
	}
	return items, nil
}

// parseNotFound builds NotFoundError from the body, ignoring bodies it can't read
func parseNotFound(body []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return &NotFoundError{}
	}
	return &NotFoundError{
		Title:      strings.TrimSpace(apiErr.Title),
		Message:    strings.TrimSpace(apiErr.Message),
		Resolution: strings.TrimSpace(apiErr.Resolution),
	}
}

// NewClient creates Client for the base URL with a request timeout.
// An empty base URL uses DefaultBaseURL, a zero timeout disables it.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{client: &http.Client{Timeout: timeout}, baseURL: baseURL}
}

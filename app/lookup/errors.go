package lookup

import (
	"errors"

	"github.com/rbhz/word-lookup/app/clients/dictionaryapi"
)

// Kind classifies lookup failures
type Kind int

// kinds of lookup failures
const (
	KindNone Kind = iota
	KindTransport
	KindDecode
	KindNotFound
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	}
	return "unknown"
}

// MarshalText encodes Kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Classify maps an error returned by Fetcher to its Kind
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, dictionaryapi.ErrNotFound):
		return KindNotFound
	case errors.Is(err, dictionaryapi.ErrDecode):
		return KindDecode
	case errors.Is(err, dictionaryapi.ErrUpstream):
		return KindUpstream
	}
	return KindTransport
}

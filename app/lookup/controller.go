package lookup

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrSuperseded is returned by Submit when a newer submission took over
var ErrSuperseded = errors.New("lookup superseded by a newer submission")

// State is a snapshot of the controller
type State struct {
	Word     string
	LookupID string
	Loading  bool
	// Result is nil before the first search and after a failed one
	Result *Result
	// Err is the failure of the last finished lookup
	Err error
}

// Failure returns the kind of the last failure
func (s State) Failure() Kind {
	return Classify(s.Err)
}

// Outcome is delivered when a submission resolves
type Outcome struct {
	State State
	// Superseded is set when a newer submission started before this one resolved;
	// State then reflects the newer submission
	Superseded bool
}

// Controller owns the search term, loading flag and last result
type Controller struct {
	fetcher    Fetcher
	state      State
	generation uint64
	mx         sync.RWMutex
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.state
}

// Start marks the controller as loading and fetches the word in background.
// The returned channel receives exactly one Outcome.
func (c *Controller) Start(ctx context.Context, word string) (<-chan Outcome, error) {
	if strings.TrimSpace(word) == "" {
		return nil, ErrEmptyWord
	}
	lookupID := uuid.NewString()

	c.mx.Lock()
	c.generation++
	generation := c.generation
	c.state = State{Word: word, LookupID: lookupID, Loading: true}
	c.mx.Unlock()

	log.Debug().Str("word", word).Str("lookup", lookupID).Msg("lookup started")
	done := make(chan Outcome, 1)
	go func() {
		defer close(done)
		result, err := Lookup(ctx, c.fetcher, word)
		done <- c.complete(generation, lookupID, result, err)
	}()
	return done, nil
}

// Submit looks the word up and waits until it resolves
func (c *Controller) Submit(ctx context.Context, word string) (State, error) {
	done, err := c.Start(ctx, word)
	if err != nil {
		return c.State(), err
	}
	outcome := <-done
	if outcome.Superseded {
		return outcome.State, ErrSuperseded
	}
	return outcome.State, outcome.State.Err
}

func (c *Controller) complete(generation uint64, lookupID string, result *Result, err error) Outcome {
	c.mx.Lock()
	defer c.mx.Unlock()
	if generation != c.generation {
		log.Debug().Str("lookup", lookupID).Msg("discarding superseded lookup")
		return Outcome{State: c.state, Superseded: true}
	}
	c.state.Loading = false
	if err != nil {
		log.Error().
			Err(err).
			Str("word", c.state.Word).
			Str("lookup", lookupID).
			Stringer("kind", Classify(err)).
			Msg("lookup failed")
		c.state.Result = nil
		c.state.Err = err
	} else {
		c.state.Result = result
		c.state.Err = nil
	}
	return Outcome{State: c.state}
}

// NewController creates Controller with empty state
func NewController(f Fetcher) *Controller {
	return &Controller{fetcher: f}
}

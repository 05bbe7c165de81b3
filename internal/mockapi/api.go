// Package mockapi implements the in-process entity APIs that simulate a
// remote backend: CRUD over the store with referential-integrity
// maintenance, a uniform success/error envelope, and artificial network
// latency so UI loading states stay meaningful.
package mockapi

import (
	"context"
	"time"

	"cardvault/internal/store"
)

// Simulated latency per operation, matching the backend being modeled.
const (
	delayListGames   = 300 * time.Millisecond
	delayGetGame     = 200 * time.Millisecond
	delayCreateGame  = 500 * time.Millisecond
	delayUpdateGame  = 300 * time.Millisecond
	delayDeleteGame  = 400 * time.Millisecond
	delayListCards   = 400 * time.Millisecond
	delayGetCard     = 200 * time.Millisecond
	delayCreateCard  = 500 * time.Millisecond
	delayUpdateCard  = 300 * time.Millisecond
	delayDeleteCard  = 300 * time.Millisecond
	delayDeleteCards = 500 * time.Millisecond
	delayListDecks   = 300 * time.Millisecond
	delayGetDeck     = 200 * time.Millisecond
	delayCreateDeck  = 400 * time.Millisecond
	delayUpdateDeck  = 300 * time.Millisecond
	delayDeleteDeck  = 300 * time.Millisecond
	delayExportDeck  = 200 * time.Millisecond
	delayImportDeck  = 500 * time.Millisecond
)

// defaultCreatorID stands in for the authenticated user; there is no
// user model in this system.
const defaultCreatorID = "user_001"

// Sleeper waits out the simulated latency. The context only cuts the
// cosmetic delay short; operations themselves have no cancellation
// semantics.
type Sleeper func(ctx context.Context, d time.Duration)

func sleepFor(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

type options struct {
	sleep Sleeper
}

// Option configures an API instance.
type Option func(*options)

// WithSleeper replaces the latency function. Tests pass a no-op.
func WithSleeper(s Sleeper) Option {
	return func(o *options) { o.sleep = s }
}

func buildOptions(opts []Option) options {
	o := options{sleep: sleepFor}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// API bundles the three entity APIs over one store.
type API struct {
	Games *GameAPI
	Cards *CardAPI
	Decks *DeckAPI
}

// New creates the three entity APIs sharing one store handle.
func New(st *store.Store, opts ...Option) *API {
	return &API{
		Games: NewGameAPI(st, opts...),
		Cards: NewCardAPI(st, opts...),
		Decks: NewDeckAPI(st, opts...),
	}
}

package mockapi

import (
	"context"
	"time"

	"cardvault/internal/core"
	"cardvault/internal/store"
)

// newTestAPI builds the entity APIs over a fresh seed store with the
// latency simulation disabled.
func newTestAPI() (*API, *store.Store) {
	st := store.New()
	a := New(st, WithSleeper(func(ctx context.Context, d time.Duration) {}))
	return a, st
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// dataGame extracts the Game payload of a success envelope.
func dataGame(resp *core.Response) (core.Game, bool) {
	g, ok := resp.Data.(core.Game)
	return g, ok
}

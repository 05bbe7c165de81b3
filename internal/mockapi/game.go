package mockapi

import (
	"context"
	"time"

	"cardvault/internal/core"
	"cardvault/internal/store"
)

// GameAPI exposes CRUD over the game table. Deleting a game cascades to
// its cards and decks before the game row itself is removed.
type GameAPI struct {
	store *store.Store
	sleep Sleeper
}

func NewGameAPI(st *store.Store, opts ...Option) *GameAPI {
	o := buildOptions(opts)
	return &GameAPI{store: st, sleep: o.sleep}
}

// ListGames returns every game. The dashboard scale does not warrant
// pagination here.
func (a *GameAPI) ListGames(ctx context.Context) *core.Response {
	a.sleep(ctx, delayListGames)
	a.store.Lock()
	defer a.store.Unlock()

	games := make([]core.Game, len(a.store.Games))
	copy(games, a.store.Games)
	return core.OK(games)
}

// GetGame returns a single game by ID.
func (a *GameAPI) GetGame(ctx context.Context, gameID string) *core.Response {
	a.sleep(ctx, delayGetGame)
	a.store.Lock()
	defer a.store.Unlock()

	g := a.store.FindGame(gameID)
	if g == nil {
		return core.Fail(core.ErrGameNotFound, "Game not found")
	}
	game := *g
	return core.OK(game)
}

// CreateGame creates a game with a server-assigned ID and timestamps.
// Counts start at zero; the creator is fixed since there is no user
// model.
func (a *GameAPI) CreateGame(ctx context.Context, in core.GameInput) *core.Response {
	a.sleep(ctx, delayCreateGame)
	a.store.Lock()
	defer a.store.Unlock()

	now := time.Now().UTC()
	game := core.Game{
		ID:          core.NewID("game"),
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		CreatorID:   defaultCreatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	a.store.Games = append(a.store.Games, game)
	return core.OK(game)
}

// UpdateGame merges the provided fields onto the existing game and
// refreshes updatedAt. ID, creator, and counts are not client-settable.
func (a *GameAPI) UpdateGame(ctx context.Context, gameID string, in core.GameUpdate) *core.Response {
	a.sleep(ctx, delayUpdateGame)
	a.store.Lock()
	defer a.store.Unlock()

	g := a.store.FindGame(gameID)
	if g == nil {
		return core.Fail(core.ErrGameNotFound, "Game not found")
	}
	if in.Title != nil {
		g.Title = *in.Title
	}
	if in.Description != nil {
		g.Description = *in.Description
	}
	if in.Icon != nil {
		g.Icon = *in.Icon
	}
	g.UpdatedAt = time.Now().UTC()
	game := *g
	return core.OK(game)
}

// DeleteGame removes the game and all of its cards and decks. Children
// go first so no card or deck row ever outlives its parent reference.
func (a *GameAPI) DeleteGame(ctx context.Context, gameID string) *core.Response {
	a.sleep(ctx, delayDeleteGame)
	a.store.Lock()
	defer a.store.Unlock()

	if a.store.FindGame(gameID) == nil {
		return core.Fail(core.ErrGameNotFound, "Game not found")
	}

	a.store.CleanupDeletedGame(gameID)

	games := a.store.Games[:0]
	for _, g := range a.store.Games {
		if g.ID != gameID {
			games = append(games, g)
		}
	}
	a.store.Games = games

	return core.OK(core.DeleteResult{Message: "Game deleted successfully"})
}

// Package service presents one stable async surface per operation
// regardless of backing implementation. Mock mode delegates to the
// in-process entity APIs; live mode issues HTTP calls and maps any
// transport failure into the same error envelope, so callers never
// branch on environment.
package service

import (
	"context"
	"encoding/json"

	"cardvault/internal/client/api"
	"cardvault/internal/core"
	"cardvault/internal/mockapi"
	"cardvault/internal/store"
)

// Games is the game half of the boundary surface.
type Games interface {
	GetGames(ctx context.Context) *core.Response
	GetGame(ctx context.Context, gameID string) *core.Response
	CreateGame(ctx context.Context, in core.GameInput) *core.Response
	UpdateGame(ctx context.Context, gameID string, in core.GameUpdate) *core.Response
	DeleteGame(ctx context.Context, gameID string) *core.Response
}

// Cards is the card half of the boundary surface.
type Cards interface {
	GetCards(ctx context.Context, gameID string, params core.CardListParams) *core.Response
	GetCard(ctx context.Context, cardID string) *core.Response
	CreateCard(ctx context.Context, gameID string, in core.CardInput) *core.Response
	UpdateCard(ctx context.Context, cardID string, in core.CardUpdate) *core.Response
	DeleteCard(ctx context.Context, cardID string) *core.Response
	DeleteCards(ctx context.Context, cardIDs []string) *core.Response
}

// Decks is the deck half of the boundary surface.
type Decks interface {
	GetDecks(ctx context.Context, gameID string, params core.DeckListParams) *core.Response
	GetDeck(ctx context.Context, deckID string) *core.Response
	CreateDeck(ctx context.Context, gameID string, in core.DeckInput) *core.Response
	UpdateDeck(ctx context.Context, deckID string, in core.DeckUpdate) *core.Response
	DeleteDeck(ctx context.Context, deckID string) *core.Response
	ExportDeck(ctx context.Context, deckID, format string) *core.Response
	ImportDeck(ctx context.Context, gameID string, payload json.RawMessage) *core.Response
}

// Services bundles the three entity services.
type Services struct {
	Games Games
	Cards Cards
	Decks Decks
}

// New wires the services per config. Mock mode requires a store; live
// mode ignores it.
func New(cfg Config, st *store.Store) Services {
	if cfg.Mode == ModeLive {
		return NewLive(api.New(cfg.APIBaseURL))
	}
	return NewMock(st)
}

// NewMock wires the services to the in-process entity APIs.
func NewMock(st *store.Store, opts ...mockapi.Option) Services {
	a := mockapi.New(st, opts...)
	return Services{
		Games: mockGames{a.Games},
		Cards: mockCards{a.Cards},
		Decks: mockDecks{a.Decks},
	}
}

// NewLive wires the services to an HTTP client.
func NewLive(c *api.Client) Services {
	return Services{
		Games: liveGames{c},
		Cards: liveCards{c},
		Decks: liveDecks{c},
	}
}

// Mock implementations: pass-throughs returning the API envelope
// unchanged.

type mockGames struct{ api *mockapi.GameAPI }

func (s mockGames) GetGames(ctx context.Context) *core.Response {
	return s.api.ListGames(ctx)
}

func (s mockGames) GetGame(ctx context.Context, gameID string) *core.Response {
	return s.api.GetGame(ctx, gameID)
}

func (s mockGames) CreateGame(ctx context.Context, in core.GameInput) *core.Response {
	return s.api.CreateGame(ctx, in)
}

func (s mockGames) UpdateGame(ctx context.Context, gameID string, in core.GameUpdate) *core.Response {
	return s.api.UpdateGame(ctx, gameID, in)
}

func (s mockGames) DeleteGame(ctx context.Context, gameID string) *core.Response {
	return s.api.DeleteGame(ctx, gameID)
}

type mockCards struct{ api *mockapi.CardAPI }

func (s mockCards) GetCards(ctx context.Context, gameID string, params core.CardListParams) *core.Response {
	return s.api.ListCards(ctx, gameID, params)
}

func (s mockCards) GetCard(ctx context.Context, cardID string) *core.Response {
	return s.api.GetCard(ctx, cardID)
}

func (s mockCards) CreateCard(ctx context.Context, gameID string, in core.CardInput) *core.Response {
	return s.api.CreateCard(ctx, gameID, in)
}

func (s mockCards) UpdateCard(ctx context.Context, cardID string, in core.CardUpdate) *core.Response {
	return s.api.UpdateCard(ctx, cardID, in)
}

func (s mockCards) DeleteCard(ctx context.Context, cardID string) *core.Response {
	return s.api.DeleteCard(ctx, cardID)
}

func (s mockCards) DeleteCards(ctx context.Context, cardIDs []string) *core.Response {
	return s.api.DeleteCards(ctx, cardIDs)
}

type mockDecks struct{ api *mockapi.DeckAPI }

func (s mockDecks) GetDecks(ctx context.Context, gameID string, params core.DeckListParams) *core.Response {
	return s.api.ListDecks(ctx, gameID, params)
}

func (s mockDecks) GetDeck(ctx context.Context, deckID string) *core.Response {
	return s.api.GetDeck(ctx, deckID)
}

func (s mockDecks) CreateDeck(ctx context.Context, gameID string, in core.DeckInput) *core.Response {
	return s.api.CreateDeck(ctx, gameID, in)
}

func (s mockDecks) UpdateDeck(ctx context.Context, deckID string, in core.DeckUpdate) *core.Response {
	return s.api.UpdateDeck(ctx, deckID, in)
}

func (s mockDecks) DeleteDeck(ctx context.Context, deckID string) *core.Response {
	return s.api.DeleteDeck(ctx, deckID)
}

func (s mockDecks) ExportDeck(ctx context.Context, deckID, format string) *core.Response {
	return s.api.ExportDeck(ctx, deckID, format)
}

func (s mockDecks) ImportDeck(ctx context.Context, gameID string, payload json.RawMessage) *core.Response {
	return s.api.ImportDeck(ctx, gameID, payload)
}

// Live implementations: envelope bodies pass through verbatim;
// transport failures become error envelopes.

type liveGames struct{ client *api.Client }

func (s liveGames) GetGames(ctx context.Context) *core.Response {
	return wrap(s.client.ListGames(ctx))
}

func (s liveGames) GetGame(ctx context.Context, gameID string) *core.Response {
	return wrap(s.client.GetGame(ctx, gameID))
}

func (s liveGames) CreateGame(ctx context.Context, in core.GameInput) *core.Response {
	return wrap(s.client.CreateGame(ctx, in))
}

func (s liveGames) UpdateGame(ctx context.Context, gameID string, in core.GameUpdate) *core.Response {
	return wrap(s.client.UpdateGame(ctx, gameID, in))
}

func (s liveGames) DeleteGame(ctx context.Context, gameID string) *core.Response {
	return wrap(s.client.DeleteGame(ctx, gameID))
}

type liveCards struct{ client *api.Client }

func (s liveCards) GetCards(ctx context.Context, gameID string, params core.CardListParams) *core.Response {
	return wrap(s.client.ListCards(ctx, gameID, params))
}

func (s liveCards) GetCard(ctx context.Context, cardID string) *core.Response {
	return wrap(s.client.GetCard(ctx, cardID))
}

func (s liveCards) CreateCard(ctx context.Context, gameID string, in core.CardInput) *core.Response {
	return wrap(s.client.CreateCard(ctx, gameID, in))
}

func (s liveCards) UpdateCard(ctx context.Context, cardID string, in core.CardUpdate) *core.Response {
	return wrap(s.client.UpdateCard(ctx, cardID, in))
}

func (s liveCards) DeleteCard(ctx context.Context, cardID string) *core.Response {
	return wrap(s.client.DeleteCard(ctx, cardID))
}

func (s liveCards) DeleteCards(ctx context.Context, cardIDs []string) *core.Response {
	return wrap(s.client.DeleteCards(ctx, cardIDs))
}

type liveDecks struct{ client *api.Client }

func (s liveDecks) GetDecks(ctx context.Context, gameID string, params core.DeckListParams) *core.Response {
	return wrap(s.client.ListDecks(ctx, gameID, params))
}

func (s liveDecks) GetDeck(ctx context.Context, deckID string) *core.Response {
	return wrap(s.client.GetDeck(ctx, deckID))
}

func (s liveDecks) CreateDeck(ctx context.Context, gameID string, in core.DeckInput) *core.Response {
	return wrap(s.client.CreateDeck(ctx, gameID, in))
}

func (s liveDecks) UpdateDeck(ctx context.Context, deckID string, in core.DeckUpdate) *core.Response {
	return wrap(s.client.UpdateDeck(ctx, deckID, in))
}

func (s liveDecks) DeleteDeck(ctx context.Context, deckID string) *core.Response {
	return wrap(s.client.DeleteDeck(ctx, deckID))
}

func (s liveDecks) ExportDeck(ctx context.Context, deckID, format string) *core.Response {
	return wrap(s.client.ExportDeck(ctx, deckID, format))
}

func (s liveDecks) ImportDeck(ctx context.Context, gameID string, payload json.RawMessage) *core.Response {
	return wrap(s.client.ImportDeck(ctx, gameID, payload))
}

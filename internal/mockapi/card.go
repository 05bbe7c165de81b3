package mockapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cardvault/internal/core"
	"cardvault/internal/store"
)

const defaultCardPageSize = 20

// CardAPI exposes CRUD over the card table. Card deletion cascades into
// decks before the row is removed and recomputes the owning game's
// derived card count afterwards.
type CardAPI struct {
	store *store.Store
	sleep Sleeper
}

func NewCardAPI(st *store.Store, opts ...Option) *CardAPI {
	o := buildOptions(opts)
	return &CardAPI{store: st, sleep: o.sleep}
}

// ListCards returns one page of a game's cards. Search matches name or
// description case-insensitively; type and rarity are exact matches.
// All filtering runs before pagination.
func (a *CardAPI) ListCards(ctx context.Context, gameID string, params core.CardListParams) *core.Response {
	a.sleep(ctx, delayListCards)
	a.store.Lock()
	defer a.store.Unlock()

	if gameID == "" || a.store.FindGame(gameID) == nil {
		return core.Fail(core.ErrGameNotFound, "Game not found")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultCardPageSize
	}

	var filtered []core.Card
	search := strings.ToLower(params.Search)
	for _, c := range a.store.Cards {
		if c.GameID != gameID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}
		if params.Type != "" && c.Type != params.Type {
			continue
		}
		if params.Rarity != "" && c.Rarity != params.Rarity {
			continue
		}
		filtered = append(filtered, c)
	}

	pageItems, pagination := paginate(filtered, page, limit)
	return core.OKPaged(pageItems, pagination)
}

// GetCard returns a single card by ID.
func (a *CardAPI) GetCard(ctx context.Context, cardID string) *core.Response {
	a.sleep(ctx, delayGetCard)
	a.store.Lock()
	defer a.store.Unlock()

	c := a.store.FindCard(cardID)
	if c == nil {
		return core.Fail(core.ErrCardNotFound, "Card not found")
	}
	card := *c
	return core.OK(card)
}

// CreateCard creates a card under the given game. The path gameID wins
// over anything in the body; ID and timestamps are server-assigned.
func (a *CardAPI) CreateCard(ctx context.Context, gameID string, in core.CardInput) *core.Response {
	a.sleep(ctx, delayCreateCard)
	a.store.Lock()
	defer a.store.Unlock()

	if gameID == "" || a.store.FindGame(gameID) == nil {
		return core.Fail(core.ErrGameNotFound, "Game not found")
	}

	now := time.Now().UTC()
	card := core.Card{
		ID:          core.NewID("card"),
		GameID:      gameID,
		Name:        in.Name,
		Type:        in.Type,
		Rarity:      in.Rarity,
		Image:       in.Image,
		Description: in.Description,
		Attributes:  in.Attributes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	a.store.Cards = append(a.store.Cards, card)
	a.store.UpdateGameCardCount(gameID)
	return core.OK(card)
}

// UpdateCard merges the provided fields onto the existing card. The
// gameId stays pinned to its pre-update value; updatedAt is refreshed.
func (a *CardAPI) UpdateCard(ctx context.Context, cardID string, in core.CardUpdate) *core.Response {
	a.sleep(ctx, delayUpdateCard)
	a.store.Lock()
	defer a.store.Unlock()

	c := a.store.FindCard(cardID)
	if c == nil {
		return core.Fail(core.ErrCardNotFound, "Card not found")
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Type != nil {
		c.Type = *in.Type
	}
	if in.Rarity != nil {
		c.Rarity = *in.Rarity
	}
	if in.Image != nil {
		c.Image = in.Image
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Attributes != nil {
		c.Attributes = in.Attributes
	}
	c.UpdatedAt = time.Now().UTC()
	card := *c
	return core.OK(card)
}

// DeleteCard removes one card: decks referencing it are pruned first,
// then the row goes, then the owning game's card count is recomputed.
func (a *CardAPI) DeleteCard(ctx context.Context, cardID string) *core.Response {
	a.sleep(ctx, delayDeleteCard)
	a.store.Lock()
	defer a.store.Unlock()

	c := a.store.FindCard(cardID)
	if c == nil {
		return core.Fail(core.ErrCardNotFound, "Card not found")
	}
	gameID := c.GameID

	a.store.RemoveDeletedCardFromDecks(cardID)
	a.removeCards(map[string]bool{cardID: true})
	a.store.UpdateGameCardCount(gameID)

	return core.OK(core.DeleteResult{Message: "Card deleted successfully"})
}

// DeleteCards removes a batch of cards. The subset that exists is
// deleted with the same cascade as a single delete; each affected
// game's card count is recomputed once, not once per card.
func (a *CardAPI) DeleteCards(ctx context.Context, cardIDs []string) *core.Response {
	a.sleep(ctx, delayDeleteCards)
	a.store.Lock()
	defer a.store.Unlock()

	if len(cardIDs) == 0 {
		return core.Fail(core.ErrInvalidRequest, "No cards specified for deletion")
	}

	requested := make(map[string]bool, len(cardIDs))
	for _, id := range cardIDs {
		requested[id] = true
	}

	affectedGames := make(map[string]bool)
	deleting := make(map[string]bool)
	for _, c := range a.store.Cards {
		if requested[c.ID] {
			deleting[c.ID] = true
			affectedGames[c.GameID] = true
		}
	}
	if len(deleting) == 0 {
		return core.Fail(core.ErrCardsNotFound, "None of the specified cards were found")
	}

	for id := range deleting {
		a.store.RemoveDeletedCardFromDecks(id)
	}
	a.removeCards(deleting)
	for gameID := range affectedGames {
		a.store.UpdateGameCardCount(gameID)
	}

	return core.OK(core.BulkDeleteResult{
		Message: fmt.Sprintf("Successfully deleted %d cards", len(deleting)),
		Deleted: len(deleting),
	})
}

// removeCards rewrites the card table without the given IDs. Callers
// must hold the lock.
func (a *CardAPI) removeCards(ids map[string]bool) {
	cards := a.store.Cards[:0]
	for _, c := range a.store.Cards {
		if !ids[c.ID] {
			cards = append(cards, c)
		}
	}
	a.store.Cards = cards
}

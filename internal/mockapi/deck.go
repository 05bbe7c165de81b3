package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cardvault/internal/core"
	"cardvault/internal/store"
)

const defaultDeckPageSize = 10

// DeckAPI exposes CRUD plus export/import over the deck table. Reads
// sanitize decks against the live card table; create and update are
// all-or-nothing on card validity, import is partial-success.
type DeckAPI struct {
	store *store.Store
	sleep Sleeper
}

func NewDeckAPI(st *store.Store, opts ...Option) *DeckAPI {
	o := buildOptions(opts)
	return &DeckAPI{store: st, sleep: o.sleep}
}

// sanitizeDeck drops entries whose card no longer exists and recomputes
// the cardCount from the survivors. This is a read-time self-healing
// pass over a copy; the stored row is untouched. Callers must hold the
// lock.
func (a *DeckAPI) sanitizeDeck(d core.Deck) core.Deck {
	valid := make([]core.DeckCardRef, 0, len(d.Cards))
	count := 0
	for _, ref := range d.Cards {
		if a.store.FindCard(ref.CardID) == nil {
			continue
		}
		valid = append(valid, ref)
		count += ref.Quantity
	}
	d.Cards = valid
	d.CardCount = count
	return d
}

// invalidCardIDs returns the referenced IDs missing from the card
// table. Callers must hold the lock.
func (a *DeckAPI) invalidCardIDs(refs []core.DeckCardRef) []string {
	var invalid []string
	for _, ref := range refs {
		if a.store.FindCard(ref.CardID) == nil {
			invalid = append(invalid, ref.CardID)
		}
	}
	return invalid
}

func sumQuantities(refs []core.DeckCardRef) int {
	n := 0
	for _, ref := range refs {
		n += ref.Quantity
	}
	return n
}

// ListDecks returns one page of a game's decks, each sanitized against
// the live card table.
func (a *DeckAPI) ListDecks(ctx context.Context, gameID string, params core.DeckListParams) *core.Response {
	a.sleep(ctx, delayListDecks)
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
		limit = defaultDeckPageSize
	}

	var decks []core.Deck
	for _, d := range a.store.Decks {
		if d.GameID == gameID {
			decks = append(decks, a.sanitizeDeck(d))
		}
	}

	pageItems, pagination := paginate(decks, page, limit)
	return core.OKPaged(pageItems, pagination)
}

// GetDeck returns a single deck, sanitized, with each entry expanded by
// a denormalized copy of the referenced card for rendering.
func (a *DeckAPI) GetDeck(ctx context.Context, deckID string) *core.Response {
	a.sleep(ctx, delayGetDeck)
	a.store.Lock()
	defer a.store.Unlock()

	d := a.store.FindDeck(deckID)
	if d == nil {
		return core.Fail(core.ErrDeckNotFound, "Deck not found")
	}

	deck := a.sanitizeDeck(*d)
	expanded := make([]core.ExpandedDeckCard, 0, len(deck.Cards))
	for _, ref := range deck.Cards {
		var card *core.Card
		if c := a.store.FindCard(ref.CardID); c != nil {
			cc := *c
			card = &cc
		}
		expanded = append(expanded, core.ExpandedDeckCard{
			CardID:   ref.CardID,
			Quantity: ref.Quantity,
			Card:     card,
		})
	}

	return core.OK(core.DeckDetail{Deck: deck, ExpandedCards: expanded})
}

// CreateDeck creates a deck under the given game. Every referenced card
// must exist, otherwise the whole operation fails with INVALID_CARDS
// and nothing is written.
func (a *DeckAPI) CreateDeck(ctx context.Context, gameID string, in core.DeckInput) *core.Response {
	a.sleep(ctx, delayCreateDeck)
	a.store.Lock()
	defer a.store.Unlock()

	if gameID == "" || a.store.FindGame(gameID) == nil {
		return core.Fail(core.ErrGameNotFound, "Game not found")
	}

	if len(in.Cards) > 0 {
		if invalid := a.invalidCardIDs(in.Cards); len(invalid) > 0 {
			return core.FailDetails(core.ErrInvalidCards, "Some cards in the deck do not exist",
				map[string]any{"invalidCardIds": invalid})
		}
	}

	name := in.Name
	if name == "" {
		name = "New Deck"
	}
	cards := in.Cards
	if cards == nil {
		cards = []core.DeckCardRef{}
	}

	now := time.Now().UTC()
	deck := core.Deck{
		ID:          core.NewID("deck"),
		GameID:      gameID,
		CreatorID:   defaultCreatorID,
		Name:        name,
		Description: in.Description,
		Cards:       cards,
		CardCount:   sumQuantities(cards),
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	a.store.Decks = append(a.store.Decks, deck)
	a.store.UpdateGameDeckCount(gameID)
	return core.OK(deck)
}

// UpdateDeck merges the provided fields onto the existing deck. GameID
// and creatorId stay pinned to their pre-update values; a provided card
// list is validated all-or-nothing and recomputes the cardCount.
func (a *DeckAPI) UpdateDeck(ctx context.Context, deckID string, in core.DeckUpdate) *core.Response {
	a.sleep(ctx, delayUpdateDeck)
	a.store.Lock()
	defer a.store.Unlock()

	d := a.store.FindDeck(deckID)
	if d == nil {
		return core.Fail(core.ErrDeckNotFound, "Deck not found")
	}

	if len(in.Cards) > 0 {
		if invalid := a.invalidCardIDs(in.Cards); len(invalid) > 0 {
			return core.FailDetails(core.ErrInvalidCards, "Some cards in the deck do not exist",
				map[string]any{"invalidCardIds": invalid})
		}
	}

	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.IsPublic != nil {
		d.IsPublic = *in.IsPublic
	}
	if in.Cards != nil {
		d.Cards = in.Cards
		d.CardCount = sumQuantities(in.Cards)
	}
	d.UpdatedAt = time.Now().UTC()
	deck := *d
	return core.OK(deck)
}

// DeleteDeck removes the deck and recomputes the owning game's deck
// count.
func (a *DeckAPI) DeleteDeck(ctx context.Context, deckID string) *core.Response {
	a.sleep(ctx, delayDeleteDeck)
	a.store.Lock()
	defer a.store.Unlock()

	d := a.store.FindDeck(deckID)
	if d == nil {
		return core.Fail(core.ErrDeckNotFound, "Deck not found")
	}
	gameID := d.GameID

	decks := a.store.Decks[:0]
	for _, dd := range a.store.Decks {
		if dd.ID != deckID {
			decks = append(decks, dd)
		}
	}
	a.store.Decks = decks
	a.store.UpdateGameDeckCount(gameID)

	return core.OK(core.DeleteResult{Message: "Deck deleted successfully"})
}

// ExportDeck renders the deck, sanitized, either as a structured object
// or as a line-oriented text list usable in tabletop tooling. Any
// format other than "text" yields the structured form.
func (a *DeckAPI) ExportDeck(ctx context.Context, deckID, format string) *core.Response {
	a.sleep(ctx, delayExportDeck)
	a.store.Lock()
	defer a.store.Unlock()

	d := a.store.FindDeck(deckID)
	if d == nil {
		return core.Fail(core.ErrDeckNotFound, "Deck not found")
	}

	deck := a.sanitizeDeck(*d)

	gameTitle := "Unknown Game"
	if g := a.store.FindGame(deck.GameID); g != nil {
		gameTitle = g.Title
	}

	export := core.DeckExport{
		Name:  deck.Name,
		Game:  gameTitle,
		Cards: make([]core.DeckExportCard, 0, len(deck.Cards)),
	}
	for _, ref := range deck.Cards {
		name, cardType := "Unknown Card", "Unknown"
		if c := a.store.FindCard(ref.CardID); c != nil {
			name, cardType = c.Name, c.Type
		}
		export.Cards = append(export.Cards, core.DeckExportCard{
			ID:       ref.CardID,
			Name:     name,
			Type:     cardType,
			Quantity: ref.Quantity,
		})
	}

	if format == "text" {
		var b strings.Builder
		fmt.Fprintf(&b, "# %s - %s\n\n", export.Name, export.Game)
		for i, c := range export.Cards {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%dx %s (%s)", c.Quantity, c.Name, c.Type)
		}
		return core.OK(core.ExportResult{Format: "text", Content: b.String()})
	}

	return core.OK(core.ExportResult{Format: "json", Content: &export})
}

// ImportDeck creates a deck from an export-like payload. Entries are
// either id-keyed or name-keyed (decided by the first entry, matching
// the export formats); names resolve case-insensitively within the
// target game. Unresolvable entries are excluded and reported in the
// import summary rather than failing the operation.
func (a *DeckAPI) ImportDeck(ctx context.Context, gameID string, raw []byte) *core.Response {
	a.sleep(ctx, delayImportDeck)
	a.store.Lock()
	defer a.store.Unlock()

	if gameID == "" || a.store.FindGame(gameID) == nil {
		return core.Fail(core.ErrGameNotFound, "Game not found")
	}

	var payload core.DeckImportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return core.FailDetails(core.ErrImportError, "Failed to process import data",
			map[string]any{"error": err.Error()})
	}

	if payload.Name == "" {
		return core.Fail(core.ErrInvalidImport, "Import data must include a deck name")
	}

	gameCardByID := make(map[string]*core.Card)
	gameCardByName := make(map[string]*core.Card)
	for i := range a.store.Cards {
		c := &a.store.Cards[i]
		if c.GameID != gameID {
			continue
		}
		gameCardByID[c.ID] = c
		gameCardByName[strings.ToLower(c.Name)] = c
	}

	var validCards []core.DeckCardRef
	var invalidCards []core.DeckImportCard
	if len(payload.Cards) > 0 {
		switch {
		case payload.Cards[0].CardID != "":
			for _, entry := range payload.Cards {
				if _, ok := gameCardByID[entry.CardID]; ok {
					validCards = append(validCards, core.DeckCardRef{CardID: entry.CardID, Quantity: entry.Quantity})
				} else {
					invalidCards = append(invalidCards, entry)
				}
			}
		case payload.Cards[0].Name != "":
			for _, entry := range payload.Cards {
				match, ok := gameCardByName[strings.ToLower(entry.Name)]
				if !ok {
					invalidCards = append(invalidCards, entry)
					continue
				}
				qty := entry.Quantity
				if qty == 0 {
					qty = 1
				}
				validCards = append(validCards, core.DeckCardRef{CardID: match.ID, Quantity: qty})
			}
		}
	}

	description := payload.Description
	if description == "" {
		description = "Imported deck: " + payload.Name
	}
	if validCards == nil {
		validCards = []core.DeckCardRef{}
	}

	now := time.Now().UTC()
	deck := core.Deck{
		ID:          core.NewID("deck"),
		GameID:      gameID,
		CreatorID:   defaultCreatorID,
		Name:        payload.Name,
		Description: description,
		Cards:       validCards,
		CardCount:   sumQuantities(validCards),
		IsPublic:    payload.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	a.store.Decks = append(a.store.Decks, deck)
	a.store.UpdateGameDeckCount(gameID)

	details := make([]any, 0, len(invalidCards))
	for _, entry := range invalidCards {
		details = append(details, entry)
	}
	return core.OK(core.ImportResult{
		Deck: &deck,
		ImportSummary: core.ImportSummary{
			TotalCards:        len(validCards) + len(invalidCards),
			ValidCards:        len(validCards),
			InvalidCards:      len(invalidCards),
			InvalidCardDetail: details,
		},
	})
}
